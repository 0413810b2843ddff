package requests

type SubmittedAnswer struct {
	QuestionNumber int    `json:"questionNumber" validate:"required,gte=1"`
	Answer         string `json:"answer" validate:"required"`
}

type SubmitDetection struct {
	SubjectID string            `json:"-"`
	Responses []SubmittedAnswer `json:"responses" validate:"dive"`
}
