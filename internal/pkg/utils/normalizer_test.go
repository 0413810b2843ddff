package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAnswer(t *testing.T) {
	t.Run("Arabic Tokens Map To Canonical", func(t *testing.T) {
		assert.Equal(t, "Yes", NormalizeAnswer("نعم"))
		assert.Equal(t, "No", NormalizeAnswer("لا"))
		assert.Equal(t, "Positive", NormalizeAnswer("إيجابي"))
		assert.Equal(t, "Positive", NormalizeAnswer("ايجابي"), "spelling without hamza should map too")
		assert.Equal(t, "Negative", NormalizeAnswer("سلبي"))
		assert.Equal(t, "Low", NormalizeAnswer("منخفض"))
		assert.Equal(t, "High", NormalizeAnswer("مرتفع"))
		assert.Equal(t, "Normal", NormalizeAnswer("طبيعي"))
		assert.Equal(t, "Class 4", NormalizeAnswer("الفئة 4"))
	})

	t.Run("Canonical Tokens Pass Through", func(t *testing.T) {
		for _, token := range []string{"Yes", "No", "Positive", "Negative", "Low", "High", "Normal", "Class 2", "Class 5"} {
			assert.Equal(t, token, NormalizeAnswer(token))
		}
	})

	t.Run("Unmapped Input Passes Through Unchanged", func(t *testing.T) {
		assert.Equal(t, "Maybe", NormalizeAnswer("Maybe"))
		assert.Equal(t, "", NormalizeAnswer(""))
	})

	t.Run("Surrounding Whitespace Is Trimmed", func(t *testing.T) {
		assert.Equal(t, "Yes", NormalizeAnswer("  نعم "))
		assert.Equal(t, "Yes", NormalizeAnswer(" Yes "))
	})

	t.Run("Idempotent", func(t *testing.T) {
		inputs := []string{"نعم", "لا", "إيجابي", "منخفض", "الفئة 3", "Yes", "Maybe", "  High "}
		for _, input := range inputs {
			once := NormalizeAnswer(input)
			assert.Equal(t, once, NormalizeAnswer(once), "normalize(normalize(%q)) should equal normalize(%q)", input, input)
		}
	})
}
