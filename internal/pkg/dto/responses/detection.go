package responses

import "time"

type DetectionResult struct {
	Result string `json:"result"`
	Code   int    `json:"code"`
}

type AnsweredQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type DetectionHistoryEntry struct {
	RecordID    string             `json:"recordId"`
	Date        time.Time          `json:"date"`
	Result      int                `json:"result"`
	ResultLabel string             `json:"resultLabel"`
	Responses   []AnsweredQuestion `json:"responses"`
}

type DeleteDetection struct {
	Deleted bool `json:"deleted"`
}

type DeleteDetectionHistory struct {
	DeletedCount int64 `json:"deletedCount"`
}
