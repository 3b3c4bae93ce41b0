package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateRecordNotFound(t *testing.T) {
	appErr := Translate(gorm.ErrRecordNotFound)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
	assert.Equal(t, CodeNotFound, appErr.Code)
}

func TestTranslateDuplicatedKey(t *testing.T) {
	appErr := Translate(gorm.ErrDuplicatedKey)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
	assert.Equal(t, CodeAlreadyExists, appErr.Code)
}

func TestTranslateExpiredToken(t *testing.T) {
	appErr := Translate(jwt.ErrTokenExpired)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode)
	assert.Equal(t, CodeTokenExpired, appErr.Code)
}

func TestTranslatePassesThroughAppError(t *testing.T) {
	appErr := Translate(ErrAlreadyApplied)
	assert.Same(t, ErrAlreadyApplied, appErr)
}

func TestTranslateWrappedAppError(t *testing.T) {
	wrapped := Wrap(ErrJobNotFound, CodeNotFound, "job", "outer", http.StatusNotFound)
	appErr := Translate(wrapped)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}

func TestTranslateUnknownError(t *testing.T) {
	appErr := Translate(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
	assert.Equal(t, CodeInternalError, appErr.Code)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.False(t, IsUniqueViolation(gorm.ErrRecordNotFound))
	assert.False(t, IsUniqueViolation(nil))
}
