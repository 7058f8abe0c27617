package utils

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

const (
	PasswordMinLength = 6
	// bcrypt 只处理前 72 字节
	PasswordMaxLength = 72
)

// ValidatePassword checks if the password meets the requirements.
// Returns true if valid, otherwise false and an error message.
func ValidatePassword(password string) (bool, string) {
	if len(password) < PasswordMinLength {
		return false, fmt.Sprintf("密码最少%d位", PasswordMinLength)
	}
	if len(password) > PasswordMaxLength {
		return false, fmt.Sprintf("密码最多%d字节", PasswordMaxLength)
	}
	return true, ""
}

// ValidateImageContent checks if the file content matches the extension.
func ValidateImageContent(reader io.ReadSeeker, ext string) (bool, string) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return false, "读取文件内容失败"
	}

	// 重置读取位置
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return false, "重置文件读取位置失败"
	}

	contentType := http.DetectContentType(buffer[:n])

	allowedTypes := map[string]map[string]bool{
		"image/jpeg":     {".jpg": true, ".jpeg": true},
		"image/png":      {".png": true},
		"image/gif":      {".gif": true},
		"image/webp":     {".webp": true},
		"image/bmp":      {".bmp": true},
		"image/x-ms-bmp": {".bmp": true},
	}

	if exts, ok := allowedTypes[contentType]; ok {
		if exts[ext] {
			return true, ""
		}
	}

	return false, "文件真实类型(" + contentType + ")与扩展名(" + ext + ")不匹配或不支持"
}

// ValidateImageFile 验证上传的图片文件（大小、后缀、内容），返回小写扩展名（如 .jpg）
func ValidateImageFile(file *multipart.FileHeader, maxSizeMB int, allowedExts string) (string, error) {
	if file == nil {
		return "", errors.New("缺少图片文件")
	}
	if file.Size <= 0 {
		return "", errors.New("图片文件为空")
	}
	if maxSizeMB > 0 && file.Size > int64(maxSizeMB)*1024*1024 {
		return "", fmt.Errorf("文件大小不能超过 %dMB", maxSizeMB)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		return "", errors.New("无法识别文件类型")
	}

	allowed := false
	for _, allowExt := range strings.Split(allowedExts, ",") {
		if strings.TrimSpace(strings.ToLower(allowExt)) == ext {
			allowed = true
			break
		}
	}
	if !allowed {
		return ext, fmt.Errorf("不支持的文件类型: %s", ext)
	}

	// 检查文件内容 (Magic Bytes)
	src, err := file.Open()
	if err != nil {
		return ext, errors.New("无法打开上传的文件")
	}
	defer func() { _ = src.Close() }()

	if valid, msg := ValidateImageContent(src, ext); !valid {
		return ext, errors.New(msg)
	}

	return ext, nil
}

// ContentTypeForExt 返回扩展名对应的图片 MIME 类型
func ContentTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".bmp":
		return "image/bmp"
	default:
		return "application/octet-stream"
	}
}
