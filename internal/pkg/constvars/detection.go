package constvars

// Fixed questionnaire shape. Question 20 (renal biopsy class) is only
// required when question 19 (renal biopsy) is answered "Yes".
const (
	TotalQuestionCount        = 27
	RenalBiopsyQuestionNumber = 19
	BiopsyClassQuestionNumber = 20
)

// Canonical answer tokens. All internal comparisons run against these;
// alternate-language spellings are folded onto them by utils.NormalizeAnswer.
const (
	AnswerYes      = "Yes"
	AnswerNo       = "No"
	AnswerPositive = "Positive"
	AnswerNegative = "Negative"
	AnswerLow      = "Low"
	AnswerHigh     = "High"
	AnswerNormal   = "Normal"

	AnswerClass2 = "Class 2"
	AnswerClass3 = "Class 3"
	AnswerClass4 = "Class 4"
	AnswerClass5 = "Class 5"
)

// Detection result codes as returned by the classifier.
const (
	DetectionResultNegative = 0
	DetectionResultPositive = 1
)

const (
	DetectionResultPositiveMessage = "Our analysis indicates a potential presence of lupus"
	DetectionResultNegativeMessage = "You're all clear! No signs of lupus are detected."

	DetectionLabelPositive = "Likely Lupus"
	DetectionLabelNegative = "Not Likely Lupus"
)

const (
	PredictionEndpointPath = "/predict"
)
