package service

import (
	"errors"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"whisperboard/internal/dto"
	"whisperboard/internal/model"
	"whisperboard/internal/repository"
)

// ErrDoubtNotFound reports a point lookup that matched nothing.
var ErrDoubtNotFound = errors.New("doubt not found")

// AlreadyAnsweredError rejects a second answer attempt. Existing carries the
// record as it stands so the caller can return it unchanged.
type AlreadyAnsweredError struct {
	Existing dto.DoubtResponse
}

func (e *AlreadyAnsweredError) Error() string {
	return "doubt already answered"
}

type DoubtService interface {
	SubmitDoubt(req dto.SubmitDoubtRequest) (*dto.DoubtResponse, error)
	GetAllDoubts(teacher *string) ([]dto.DoubtResponse, error)
	GetDoubt(id uint) (*dto.DoubtResponse, error)
	SubmitAnswer(id uint, req dto.SubmitAnswerRequest) (*dto.DoubtResponse, error)
	GetStats() (*dto.StatsResponse, error)
}

type doubtService struct {
	repo repository.DoubtRepository
}

func NewDoubtService(repo repository.DoubtRepository) DoubtService {
	return &doubtService{repo: repo}
}

// SubmitDoubt trims every text field, upper-cases the course code and stores
// the doubt as Pending. Input is assumed to have passed validation.
func (s *doubtService) SubmitDoubt(req dto.SubmitDoubtRequest) (*dto.DoubtResponse, error) {
	doubt := model.Doubt{
		Subject:    strings.TrimSpace(req.Subject),
		CourseCode: strings.ToUpper(strings.TrimSpace(req.CourseCode)),
		Teacher:    strings.TrimSpace(req.Teacher),
		Question:   strings.TrimSpace(req.Question),
		Status:     model.StatusPending,
	}

	if err := s.repo.Create(&doubt); err != nil {
		log.Error().Err(err).Msg("Failed to create doubt")
		return nil, err
	}

	var resp dto.DoubtResponse
	copier.Copy(&resp, &doubt)
	return &resp, nil
}

func (s *doubtService) GetAllDoubts(teacher *string) ([]dto.DoubtResponse, error) {
	if teacher != nil {
		trimmed := strings.TrimSpace(*teacher)
		teacher = &trimmed
	}

	doubts, err := s.repo.FindAll(teacher)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch doubts")
		return nil, err
	}

	resp := make([]dto.DoubtResponse, 0, len(doubts))
	copier.Copy(&resp, &doubts)
	return resp, nil
}

func (s *doubtService) GetDoubt(id uint) (*dto.DoubtResponse, error) {
	doubt, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDoubtNotFound
		}
		log.Error().Err(err).Uint("doubtID", id).Msg("Failed to fetch doubt")
		return nil, err
	}

	var resp dto.DoubtResponse
	copier.Copy(&resp, doubt)
	return &resp, nil
}

// SubmitAnswer performs the single state transition in the system. The write
// itself is a conditional update guarded on the Pending status, so a
// concurrent answer to the same doubt makes exactly one caller win; the loser
// is told the doubt was already answered and sees the winner's record.
func (s *doubtService) SubmitAnswer(id uint, req dto.SubmitAnswerRequest) (*dto.DoubtResponse, error) {
	existing, err := s.GetDoubt(id)
	if err != nil {
		return nil, err
	}
	if existing.Status == model.StatusAnswered {
		return nil, &AlreadyAnsweredError{Existing: *existing}
	}

	won, err := s.repo.Answer(id, strings.TrimSpace(req.Answer), time.Now().UTC())
	if err != nil {
		log.Error().Err(err).Uint("doubtID", id).Msg("Failed to submit answer")
		return nil, err
	}

	updated, err := s.GetDoubt(id)
	if err != nil {
		return nil, err
	}
	if !won {
		// Lost the race to a concurrent answer.
		return nil, &AlreadyAnsweredError{Existing: *updated}
	}
	return updated, nil
}

func (s *doubtService) GetStats() (*dto.StatsResponse, error) {
	total, pending, answered, err := s.repo.CountByStatus()
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute doubt statistics")
		return nil, err
	}
	return &dto.StatsResponse{Total: total, Pending: pending, Answered: answered}, nil
}
