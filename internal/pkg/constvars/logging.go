package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingSubjectIDKey  = "subject_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingAttemptKey    = "attempt"
	LoggingRecordIDKey   = "record_id"
)
