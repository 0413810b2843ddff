package models

import "time"

type DetectionResponse struct {
	QuestionNumber int    `bson:"questionNumber"`
	QuestionText   string `bson:"questionText"`
	Answer         string `bson:"answer"`
}

// DetectionRecord is written exactly once per successful submission, after
// the prediction call, and never mutated afterwards. Records are exclusively
// owned by the subject that created them.
type DetectionRecord struct {
	ID          string              `bson:"_id,omitempty"`
	SubjectID   string              `bson:"subjectId"`
	Responses   []DetectionResponse `bson:"responses"`
	Result      int                 `bson:"result"`
	SubmittedAt time.Time           `bson:"submittedAt"`
}
