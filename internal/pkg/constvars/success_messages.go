package constvars

const (
	ResponseUnknown = "unknown"

	GetQuestionsSuccessMessage           = "questions fetched successfully"
	SubmitDetectionSuccessMessage        = "diagnosis completed and saved"
	GetDetectionHistorySuccessMessage    = "detection history fetched successfully"
	DeleteDetectionSuccessMessage        = "detection record deleted successfully"
	DeleteDetectionHistorySuccessMessage = "detection history deleted successfully"
)
