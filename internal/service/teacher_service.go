package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"whisperboard/config"
	"whisperboard/internal/dto"
)

const (
	demoUsername = "teacher"
	teacherRole  = "teacher"
	teacherEmail = "teacher@whisperboard.com"
)

var (
	// ErrMissingCredentials means one or both login fields were empty.
	ErrMissingCredentials = errors.New("username and password are required")
	// ErrInvalidCredentials deliberately does not say which field was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type TeacherService interface {
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	Profile() dto.ProfileResponse
}

type teacherService struct {
	password string
}

func NewTeacherService(cfg *config.Config) TeacherService {
	return &teacherService{password: cfg.DemoTeacherPassword}
}

// Login compares against the single demo credential pair. The returned token
// is a timestamp string, never verified afterwards; it exists only so the
// dashboard has something to hold on to.
func (s *teacherService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ErrMissingCredentials
	}

	if req.Username != demoUsername || req.Password != s.password {
		log.Warn().Str("username", req.Username).Msg("Rejected teacher login attempt")
		return nil, ErrInvalidCredentials
	}

	return &dto.LoginResponse{
		Username: req.Username,
		Role:     teacherRole,
		Token:    "demo-token-" + strconv.FormatInt(time.Now().UnixNano(), 10),
	}, nil
}

func (s *teacherService) Profile() dto.ProfileResponse {
	return dto.ProfileResponse{
		Username: demoUsername,
		Role:     teacherRole,
		Email:    teacherEmail,
	}
}
