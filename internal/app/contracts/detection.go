package contracts

import (
	"context"
	"lupira-service/internal/app/models"
	"lupira-service/internal/pkg/dto/requests"
	"lupira-service/internal/pkg/dto/responses"
)

type DetectionRepository interface {
	Insert(ctx context.Context, record *models.DetectionRecord) (string, error)
	FindBySubjectID(ctx context.Context, subjectID string) ([]models.DetectionRecord, error)
	DeleteByID(ctx context.Context, subjectID, recordID string) (bool, error)
	DeleteBySubjectID(ctx context.Context, subjectID string) (int64, error)
}

type DetectionUsecase interface {
	SubmitDetection(ctx context.Context, request *requests.SubmitDetection) (*responses.DetectionResult, error)
	GetDetectionHistory(ctx context.Context, subjectID string) ([]responses.DetectionHistoryEntry, error)
	DeleteDetectionByID(ctx context.Context, subjectID, recordID string) (*responses.DeleteDetection, error)
	DeleteDetectionHistory(ctx context.Context, subjectID string) (*responses.DeleteDetectionHistory, error)
}
