package models

import "time"

type TimeModel struct {
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// SymptomQuestion is immutable reference data: seeded once by cmd/migration,
// never mutated by the pipeline. The Arabic fields are display variants the
// pipeline itself does not interpret.
type SymptomQuestion struct {
	ID                string   `bson:"_id,omitempty"`
	QuestionNumber    int      `bson:"questionNumber"`
	QuestionText      string   `bson:"questionText"`
	QuestionTextArabic string  `bson:"questionTextArabic"`
	Options           []string `bson:"options"`
	OptionsArabic     []string `bson:"optionsArabic"`
	Explanation       string   `bson:"explanation"`
	ExplanationArabic string   `bson:"explanationArabic"`
	TimeModel         `bson:",inline"`
}

// HasOption reports whether the canonical token belongs to the question's
// option set.
func (q *SymptomQuestion) HasOption(canonicalAnswer string) bool {
	for _, option := range q.Options {
		if option == canonicalAnswer {
			return true
		}
	}
	return false
}
