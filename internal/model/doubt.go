package model

import (
	"time"
)

const (
	StatusPending  = "Pending"
	StatusAnswered = "Answered"
)

// Doubt is an anonymous student question addressed to a teacher.
// Answer and AnsweredAt stay nil until the teacher responds; Status mirrors
// their presence and transitions Pending -> Answered exactly once.
type Doubt struct {
	ID         uint       `gorm:"primarykey" json:"id"`
	Subject    string     `gorm:"not null" json:"subject"`
	CourseCode string     `gorm:"not null" json:"courseCode"`
	Teacher    string     `gorm:"not null;index" json:"teacher"`
	Question   string     `gorm:"type:text;not null" json:"question"`
	Answer     *string    `gorm:"type:text" json:"answer,omitempty"`
	Status     string     `gorm:"not null;default:'Pending';index" json:"status"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	AnsweredAt *time.Time `json:"answeredAt,omitempty"`
}
