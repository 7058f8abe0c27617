package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试内容：验证包装后的业务错误仍可被识别，且保留底层原因。
func TestAsServiceError_Wrapped(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("outer: %w", WrapInternal("Could not save photo.", cause))

	serviceErr, ok := AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, ErrorCodeInternal, serviceErr.Code)
	assert.Equal(t, "Could not save photo.", serviceErr.Error())
	assert.ErrorIs(t, err, cause)
}

// 测试内容：验证普通错误不会被识别为业务错误。
func TestAsServiceError_PlainError(t *testing.T) {
	_, ok := AsServiceError(errors.New("x"))
	assert.False(t, ok)
	assert.False(t, HasCode(nil, ErrorCodeNotFound))
}

// 测试内容：验证各构造函数对应的错误码。
func TestConstructors(t *testing.T) {
	cases := map[ErrorCode]error{
		ErrorCodeValidation:   NewValidationError("v"),
		ErrorCodeUnauthorized: NewUnauthorizedError("u"),
		ErrorCodeForbidden:    NewForbiddenError("f"),
		ErrorCodeConflict:     NewConflictError("c"),
		ErrorCodeNotFound:     NewNotFoundError("n"),
		ErrorCodeInternal:     NewInternalError("i"),
	}
	for code, err := range cases {
		assert.True(t, HasCode(err, code), code)
	}
}
