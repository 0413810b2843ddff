package detections

import (
	"lupira-service/internal/app/models"
	"lupira-service/internal/pkg/constvars"
	"lupira-service/internal/pkg/dto/requests"
	"lupira-service/internal/pkg/exceptions"
	"lupira-service/internal/pkg/utils"
)

// ValidateSubmission checks a raw submission against the question catalog and
// returns the normalized answer map keyed by question number, plus the
// responses in submission order with the catalog's question text attached.
//
// Validation is fail-fast: the first violation wins and nothing is
// accumulated. Order of checks follows the submission contract: empty
// submission, missing required, missing conditional, then per-entry unknown
// question and out-of-domain answer.
func ValidateSubmission(
	submitted []requests.SubmittedAnswer,
	catalog map[int]models.SymptomQuestion,
	strictMode bool,
) (map[int]string, []models.DetectionResponse, error) {
	if len(submitted) == 0 {
		return nil, nil, exceptions.ErrNoResponsesSubmitted()
	}

	answerMap := make(map[int]string, len(submitted))
	for _, entry := range submitted {
		normalized := utils.NormalizeAnswer(entry.Answer)
		if _, exists := answerMap[entry.QuestionNumber]; exists && strictMode {
			return nil, nil, exceptions.ErrDuplicateQuestionNumber(entry.QuestionNumber)
		}
		answerMap[entry.QuestionNumber] = normalized
	}

	for questionNumber := 1; questionNumber <= constvars.TotalQuestionCount; questionNumber++ {
		if questionNumber == constvars.BiopsyClassQuestionNumber {
			continue
		}
		if _, present := answerMap[questionNumber]; !present {
			return nil, nil, exceptions.ErrQuestionRequired(questionNumber)
		}
	}

	if answerMap[constvars.RenalBiopsyQuestionNumber] == constvars.AnswerYes {
		if _, present := answerMap[constvars.BiopsyClassQuestionNumber]; !present {
			return nil, nil, exceptions.ErrConditionalQuestionRequired(
				constvars.BiopsyClassQuestionNumber,
				constvars.RenalBiopsyQuestionNumber,
			)
		}
	}

	responses := make([]models.DetectionResponse, 0, len(submitted))
	for _, entry := range submitted {
		question, known := catalog[entry.QuestionNumber]
		if !known {
			return nil, nil, exceptions.ErrUnknownQuestionNumber(entry.QuestionNumber)
		}

		normalized := utils.NormalizeAnswer(entry.Answer)
		if !question.HasOption(normalized) {
			return nil, nil, exceptions.ErrInvalidAnswer(entry.QuestionNumber, question.QuestionText, entry.Answer)
		}

		responses = append(responses, models.DetectionResponse{
			QuestionNumber: question.QuestionNumber,
			QuestionText:   question.QuestionText,
			Answer:         normalized,
		})
	}

	return answerMap, responses, nil
}
