package constvars

// Client messages are safe to surface to the caller; dev messages carry the
// detail that ends up in logs only.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"

	ErrClientNoResponsesSubmitted    = "no responses submitted"
	ErrClientQuestionRequired        = "question %d is required"
	ErrClientConditionalRequired     = "question %d is required when question %d is answered '%s'"
	ErrClientUnknownQuestionNumber   = "unknown question number: %d"
	ErrClientInvalidAnswer           = "invalid answer for question: %s"
	ErrClientDuplicateQuestionNumber = "question %d was submitted more than once"
	ErrClientDetectionRecordNotFound = "detection record not found"
	ErrClientPredictionUnavailable   = "lupus detection service is currently unavailable, please try again later"
)

const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevValidationFailed       = "request validation failed"
	ErrDevCannotParseJSON        = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON      = "cannot convert struct or other data types to JSON"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevDecodeResponse         = "failed to decode %s response body"
	ErrDevMissingRequestID       = "request ID not found in request context"
	ErrDevMissingSubjectID       = "subject ID not resolved by upstream auth layer"
	ErrDevServerDeadlineExceeded = "server deadline exceeded while processing request"
	ErrDevURLParamIDValidation   = "URL parameter %s failed validation"

	ErrDevNoResponsesSubmitted    = "submission contains no responses"
	ErrDevQuestionRequired        = "required question %d missing from submission"
	ErrDevConditionalRequired     = "conditional question %d missing while trigger question %d is affirmative"
	ErrDevUnknownQuestionNumber   = "submission references unknown question number %d"
	ErrDevInvalidAnswer           = "answer %q is not in the option set of question %d"
	ErrDevDuplicateQuestion       = "strict mode rejected duplicate submission of question %d"
	ErrDevDetectionRecordNotFound = "detection record not found for this subject"
	ErrDevPredictionExhausted     = "prediction service call failed after %d attempts"
	ErrDevPredictionBadStatus     = "prediction service responded with status %d"
)

const (
	ErrDevMongoDBInsertDocument = "failed to insert document to mongo database"
	ErrDevMongoDBFindDocument   = "failed to find document in mongo database"
	ErrDevMongoDBDeleteDocument = "failed to delete document from mongo database"
	ErrDevMongoDBNotObjectID    = "given ID is not a valid mongo ObjectID"
	ErrDevRedisGet              = "failed to get value from redis"
	ErrDevRedisSet              = "failed to set value to redis"
	ErrDevRedisDelete           = "failed to delete value from redis"
)
