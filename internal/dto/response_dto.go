package dto

import "time"

// DoubtResponse is the canonical wire shape of a doubt. Timestamps marshal as
// RFC 3339; Answer/AnsweredAt are omitted until the doubt is answered.
type DoubtResponse struct {
	ID         uint       `json:"id"`
	Subject    string     `json:"subject"`
	CourseCode string     `json:"courseCode"`
	Teacher    string     `json:"teacher"`
	Question   string     `json:"question"`
	Answer     *string    `json:"answer,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	AnsweredAt *time.Time `json:"answeredAt,omitempty"`
}

type StatsResponse struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Answered int64 `json:"answered"`
}

type LoginResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

type ProfileResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

// SuccessResponse is the uniform success envelope.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ListResponse keeps Data and Count non-optional so an empty result still
// serializes as data: [] with count: 0.
type ListResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    []DoubtResponse `json:"data"`
	Count   int             `json:"count"`
}

// ErrorResponse is the uniform failure envelope. ID echoes the requested
// identifier on not-found responses; Data carries the existing record on
// already-answered conflicts.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
	ID      string   `json:"id,omitempty"`
	Data    any      `json:"data,omitempty"`
}
