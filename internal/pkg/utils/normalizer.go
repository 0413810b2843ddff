package utils

import (
	"lupira-service/internal/pkg/constvars"
	"strings"
)

// answerTranslations folds the Arabic option variants served alongside the
// catalog onto the canonical English tokens the pipeline compares against.
// Keys cover the spellings with and without hamza that callers actually send.
var answerTranslations = map[string]string{
	"نعم": constvars.AnswerYes,
	"لا":  constvars.AnswerNo,

	"إيجابي": constvars.AnswerPositive,
	"ايجابي": constvars.AnswerPositive,
	"سلبي":   constvars.AnswerNegative,

	"منخفض": constvars.AnswerLow,
	"مرتفع": constvars.AnswerHigh,
	"طبيعي": constvars.AnswerNormal,

	"الفئة 2": constvars.AnswerClass2,
	"الفئة 3": constvars.AnswerClass3,
	"الفئة 4": constvars.AnswerClass4,
	"الفئة 5": constvars.AnswerClass5,
}

// NormalizeAnswer maps any accepted raw answer token to its canonical token.
// It is total: unmapped input passes through unchanged, so callers already
// using canonical tokens are unaffected. Rejecting tokens outside a question's
// option set is the validator's job, not this function's.
func NormalizeAnswer(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if canonical, ok := answerTranslations[trimmed]; ok {
		return canonical
	}
	return trimmed
}
