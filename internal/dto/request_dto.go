package dto

// SubmitDoubtRequest carries the four fields a student fills in.
// Validation (including the collect-all error list) happens in
// internal/validation, not via binding tags, so a single bad request can
// report every violated rule at once.
type SubmitDoubtRequest struct {
	Subject    string `json:"subject"`
	CourseCode string `json:"courseCode"`
	Teacher    string `json:"teacher"`
	Question   string `json:"question"`
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
