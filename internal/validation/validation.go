// Package validation holds the input rules for doubt and answer submission.
// Every rule runs even after an earlier one fails, so one bad request reports
// all of its problems in a single response.
package validation

import (
	"strings"
	"unicode/utf8"

	"whisperboard/internal/dto"
)

const (
	QuestionMinLen = 10
	QuestionMaxLen = 5000
	AnswerMinLen   = 10
	AnswerMaxLen   = 10000
)

// ValidateDoubtSubmission returns every violated rule, in order. An empty
// slice means the request may proceed to the store.
func ValidateDoubtSubmission(req dto.SubmitDoubtRequest) []string {
	var errs []string

	if strings.TrimSpace(req.Subject) == "" {
		errs = append(errs, "Subject is required")
	}
	if strings.TrimSpace(req.CourseCode) == "" {
		errs = append(errs, "Course code is required")
	}
	if strings.TrimSpace(req.Teacher) == "" {
		errs = append(errs, "Teacher name is required")
	}

	// Bounds count characters, not bytes; multi-byte text must not hit the
	// maximum early or slip under the minimum.
	question := strings.TrimSpace(req.Question)
	if question == "" {
		errs = append(errs, "Question is required")
	}
	if question != "" && utf8.RuneCountInString(question) < QuestionMinLen {
		errs = append(errs, "Question must be at least 10 characters long")
	}
	if utf8.RuneCountInString(question) > QuestionMaxLen {
		errs = append(errs, "Question must not exceed 5000 characters")
	}

	return errs
}

// ValidateAnswerSubmission applies the answer rules, same contract as above.
func ValidateAnswerSubmission(req dto.SubmitAnswerRequest) []string {
	var errs []string

	answer := strings.TrimSpace(req.Answer)
	if answer == "" {
		errs = append(errs, "Answer is required")
	}
	if answer != "" && utf8.RuneCountInString(answer) < AnswerMinLen {
		errs = append(errs, "Answer must be at least 10 characters long")
	}
	if utf8.RuneCountInString(answer) > AnswerMaxLen {
		errs = append(errs, "Answer must not exceed 10000 characters")
	}

	return errs
}
