package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whisperboard/config"
	"whisperboard/internal/dto"
)

func newTeacherService() TeacherService {
	return NewTeacherService(&config.Config{DemoTeacherPassword: "teacher123"})
}

func TestLoginSuccess(t *testing.T) {
	svc := newTeacherService()

	login, err := svc.Login(dto.LoginRequest{Username: "teacher", Password: "teacher123"})
	require.NoError(t, err)
	assert.Equal(t, "teacher", login.Username)
	assert.Equal(t, "teacher", login.Role)
	assert.True(t, strings.HasPrefix(login.Token, "demo-token-"))
}

func TestLoginTokenDiffersBetweenCalls(t *testing.T) {
	svc := newTeacherService()

	first, err := svc.Login(dto.LoginRequest{Username: "teacher", Password: "teacher123"})
	require.NoError(t, err)
	second, err := svc.Login(dto.LoginRequest{Username: "teacher", Password: "teacher123"})
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestLoginMissingFields(t *testing.T) {
	svc := newTeacherService()

	_, err := svc.Login(dto.LoginRequest{Username: "teacher"})
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.Login(dto.LoginRequest{Password: "teacher123"})
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := newTeacherService()

	_, err := svc.Login(dto.LoginRequest{Username: "teacher", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(dto.LoginRequest{Username: "student", Password: "teacher123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUsesConfiguredPassword(t *testing.T) {
	svc := NewTeacherService(&config.Config{DemoTeacherPassword: "override-secret"})

	_, err := svc.Login(dto.LoginRequest{Username: "teacher", Password: "teacher123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	login, err := svc.Login(dto.LoginRequest{Username: "teacher", Password: "override-secret"})
	require.NoError(t, err)
	assert.Equal(t, "teacher", login.Username)
}

func TestProfile(t *testing.T) {
	svc := newTeacherService()

	profile := svc.Profile()
	assert.Equal(t, dto.ProfileResponse{
		Username: "teacher",
		Role:     "teacher",
		Email:    "teacher@whisperboard.com",
	}, profile)
}
