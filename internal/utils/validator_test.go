package utils

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"
)

var pngBytes = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, // signature
	0x00, 0x00, 0x00, 0x0D, // IHDR length
	0x49, 0x48, 0x44, 0x52, // IHDR
	0x00, 0x00, 0x00, 0x01, // width=1
	0x00, 0x00, 0x00, 0x01, // height=1
	0x08, 0x02, 0x00, 0x00, 0x00, // bit depth/color type/etc
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{name: "too_short", password: "abc12", wantOK: false},
		{name: "min_length", password: "secret", wantOK: true},
		{name: "spec_example", password: "secret1", wantOK: true},
		{name: "too_long", password: string(bytes.Repeat([]byte("a"), 73)), wantOK: false},
		{name: "max_length", password: string(bytes.Repeat([]byte("a"), 72)), wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, _ := ValidatePassword(tt.password)
			if ok != tt.wantOK {
				t.Fatalf("ValidatePassword(%q) ok=%v want=%v", tt.password, ok, tt.wantOK)
			}
		})
	}
}

func TestValidateImageContent(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		ext    string
		wantOK bool
	}{
		{name: "png_ok", data: pngBytes, ext: ".png", wantOK: true},
		{name: "png_mismatch_ext", data: pngBytes, ext: ".jpg", wantOK: false},
		{name: "unsupported", data: []byte("not an image"), ext: ".png", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bytes.NewReader(tt.data)
			ok, _ := ValidateImageContent(r, tt.ext)
			if ok != tt.wantOK {
				t.Fatalf("ValidateImageContent ok=%v want=%v", ok, tt.wantOK)
			}

			// Ensure ValidateImageContent resets the reader position on success or failure.
			if _, err := r.Read(make([]byte, 1)); err != nil && err != io.EOF {
				t.Fatalf("reader should still be readable after ValidateImageContent: %v", err)
			}
		})
	}
}

func fileHeader(t *testing.T, filename string, data []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	_, _ = part.Write(data)
	_ = w.Close()

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}
	return req.MultipartForm.File["image"][0]
}

func TestValidateImageFile(t *testing.T) {
	const exts = ".jpg,.jpeg,.png"

	tests := []struct {
		name     string
		filename string
		data     []byte
		maxMB    int
		wantExt  string
		wantErr  bool
	}{
		{name: "ok", filename: "Cat.PNG", data: pngBytes, maxMB: 1, wantExt: ".png"},
		{name: "no_ext", filename: "cat", data: pngBytes, maxMB: 1, wantErr: true},
		{name: "ext_not_allowed", filename: "cat.gif", data: pngBytes, maxMB: 1, wantErr: true},
		{name: "fake_content", filename: "cat.png", data: []byte("hello world"), maxMB: 1, wantErr: true},
		{name: "too_large", filename: "cat.png", data: append(pngBytes, make([]byte, 1<<20)...), maxMB: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, err := ValidateImageFile(fileHeader(t, tt.filename, tt.data), tt.maxMB, exts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateImageFile err=%v wantErr=%v", err, tt.wantErr)
			}
			if !tt.wantErr && ext != tt.wantExt {
				t.Fatalf("期望扩展名 %s，实际为 %s", tt.wantExt, ext)
			}
		})
	}

	if _, err := ValidateImageFile(nil, 1, exts); err == nil {
		t.Fatalf("期望 nil 文件返回错误")
	}
}

func TestContentTypeForExt(t *testing.T) {
	if got := ContentTypeForExt(".JPG"); got != "image/jpeg" {
		t.Fatalf("unexpected %s", got)
	}
	if got := ContentTypeForExt(".txt"); got != "application/octet-stream" {
		t.Fatalf("unexpected %s", got)
	}
}
