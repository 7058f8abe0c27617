package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackdo69/photo-sharing-server/internal/model"
	moduledto "github.com/jackdo69/photo-sharing-server/internal/modules/user/dto"
	platformservice "github.com/jackdo69/photo-sharing-server/internal/platform/service"
	"github.com/jackdo69/photo-sharing-server/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	MessageInvalidInputs      = "Invalid inputs, please try again!"
	MessageUserExists         = "User existed already"
	MessageSignupFailed       = "Signing up failed, please try again later."
	MessageUploadFailed       = "Unable to upload image, something went wrong"
	MessageInvalidCredentials = "Invalid credentials, could not log you in."
	MessageLoginFailed        = "Logging in failed, please try again later."
)

// Signup 注册新用户：校验、查重、哈希密码、上传头像、落库并签发令牌。
func (s *Service) Signup(ctx context.Context, in moduledto.SignupInput) (*moduledto.AuthResult, error) {
	cfg := s.Config()

	in.Name = strings.TrimSpace(in.Name)
	in.Introduction = strings.TrimSpace(in.Introduction)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" || in.Introduction == "" || in.Email == "" {
		return nil, platformservice.NewValidationError(MessageInvalidInputs)
	}
	if ok, _ := utils.ValidatePassword(in.Password); !ok {
		return nil, platformservice.NewValidationError(MessageInvalidInputs)
	}
	ext, err := utils.ValidateImageFile(in.Image, cfg.Upload.MaxSizeMB, cfg.Upload.AllowedExtensions)
	if err != nil {
		s.Logger().Debug("头像校验失败", "error", err)
		return nil, platformservice.NewValidationError(MessageInvalidInputs)
	}

	exists, err := s.userStore.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, platformservice.WrapInternal(MessageSignupFailed, err)
	}
	if exists {
		return nil, platformservice.NewConflictError(MessageUserExists)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), cfg.Security.BcryptCost)
	if err != nil {
		return nil, platformservice.WrapInternal(MessageSignupFailed, err)
	}

	imageURL, err := s.uploadAvatar(ctx, in, ext)
	if err != nil {
		return nil, platformservice.WrapInternal(MessageUploadFailed, err)
	}

	user := &model.User{
		Name:         in.Name,
		Introduction: in.Introduction,
		Email:        in.Email,
		Password:     string(hashed),
		Image:        imageURL,
	}
	if err := s.userStore.Create(ctx, user); err != nil {
		s.removeBlob(imageURL)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, platformservice.NewConflictError(MessageUserExists)
		}
		return nil, platformservice.WrapInternal(MessageSignupFailed, err)
	}

	return s.issue(user)
}

// Login 校验邮箱与密码，成功后签发令牌
func (s *Service) Login(ctx context.Context, email, password string) (*moduledto.AuthResult, error) {
	user, err := s.userStore.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewUnauthorizedError(MessageInvalidCredentials)
		}
		return nil, platformservice.WrapInternal(MessageLoginFailed, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, platformservice.NewUnauthorizedError(MessageInvalidCredentials)
	}

	return s.issue(user)
}

func (s *Service) issue(user *model.User) (*moduledto.AuthResult, error) {
	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, platformservice.WrapInternal(MessageLoginFailed, err)
	}
	return &moduledto.AuthResult{UserID: user.ID, Email: user.Email, Token: token}, nil
}

func (s *Service) uploadAvatar(ctx context.Context, in moduledto.SignupInput, ext string) (string, error) {
	src, err := in.Image.Open()
	if err != nil {
		return "", err
	}
	defer func() { _ = src.Close() }()

	return s.storage.Upload(ctx, in.Image.Filename, src, in.Image.Size, utils.ContentTypeForExt(ext))
}

// removeBlob 尽力删除已上传的对象，失败只记录日志
func (s *Service) removeBlob(url string) {
	if err := s.storage.Delete(context.Background(), url); err != nil {
		s.Logger().Warn("⚠️ 清理已上传头像失败", "url", url, "error", err)
	}
}
