package detections

import (
	"context"
	"lupira-service/internal/app/config"
	"lupira-service/internal/app/contracts"
	"lupira-service/internal/app/models"
	"lupira-service/internal/pkg/constvars"
	"lupira-service/internal/pkg/dto/requests"
	"lupira-service/internal/pkg/dto/responses"
	"sync"
	"time"

	"go.uber.org/zap"
)

type detectionUsecase struct {
	DetectionRepository contracts.DetectionRepository
	QuestionUsecase     contracts.QuestionUsecase
	PredictionClient    contracts.PredictionClient
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

var (
	detectionUsecaseInstance contracts.DetectionUsecase
	onceDetectionUsecase     sync.Once
)

func NewDetectionUsecase(
	detectionRepository contracts.DetectionRepository,
	questionUsecase contracts.QuestionUsecase,
	predictionClient contracts.PredictionClient,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DetectionUsecase {
	onceDetectionUsecase.Do(func() {
		instance := &detectionUsecase{
			DetectionRepository: detectionRepository,
			QuestionUsecase:     questionUsecase,
			PredictionClient:    predictionClient,
			InternalConfig:      internalConfig,
			Log:                 logger,
		}
		detectionUsecaseInstance = instance
	})
	return detectionUsecaseInstance
}

// SubmitDetection runs the full pipeline: validate and normalize the
// submission, encode the feature payload, call the classifier, then persist
// the record. The record is written exactly once, only after a successful
// prediction; every failure path leaves the store untouched.
func (uc *detectionUsecase) SubmitDetection(ctx context.Context, request *requests.SubmitDetection) (*responses.DetectionResult, error) {
	catalog, err := uc.QuestionUsecase.QuestionCatalog(ctx)
	if err != nil {
		return nil, err
	}

	answerMap, detectionResponses, err := ValidateSubmission(request.Responses, catalog, uc.InternalConfig.Detection.StrictMode)
	if err != nil {
		return nil, err
	}

	features := EncodeFeatures(answerMap)

	result, err := uc.PredictionClient.Predict(ctx, features)
	if err != nil {
		return nil, err
	}

	record := &models.DetectionRecord{
		SubjectID:   request.SubjectID,
		Responses:   detectionResponses,
		Result:      result,
		SubmittedAt: time.Now(),
	}
	if _, err := uc.DetectionRepository.Insert(ctx, record); err != nil {
		return nil, err
	}

	uc.Log.Info("detectionUsecase.SubmitDetection completed",
		zap.String(constvars.LoggingSubjectIDKey, request.SubjectID),
		zap.Int("result", result),
	)

	return &responses.DetectionResult{
		Result: resultMessage(result),
		Code:   result,
	}, nil
}

func (uc *detectionUsecase) GetDetectionHistory(ctx context.Context, subjectID string) ([]responses.DetectionHistoryEntry, error) {
	records, err := uc.DetectionRepository.FindBySubjectID(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	history := make([]responses.DetectionHistoryEntry, 0, len(records))
	for _, record := range records {
		answered := make([]responses.AnsweredQuestion, 0, len(record.Responses))
		for _, response := range record.Responses {
			answered = append(answered, responses.AnsweredQuestion{
				Question: response.QuestionText,
				Answer:   response.Answer,
			})
		}
		history = append(history, responses.DetectionHistoryEntry{
			RecordID:    record.ID,
			Date:        record.SubmittedAt,
			Result:      record.Result,
			ResultLabel: resultLabel(record.Result),
			Responses:   answered,
		})
	}
	return history, nil
}

func (uc *detectionUsecase) DeleteDetectionByID(ctx context.Context, subjectID, recordID string) (*responses.DeleteDetection, error) {
	deleted, err := uc.DetectionRepository.DeleteByID(ctx, subjectID, recordID)
	if err != nil {
		return nil, err
	}
	return &responses.DeleteDetection{Deleted: deleted}, nil
}

func (uc *detectionUsecase) DeleteDetectionHistory(ctx context.Context, subjectID string) (*responses.DeleteDetectionHistory, error) {
	deletedCount, err := uc.DetectionRepository.DeleteBySubjectID(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	return &responses.DeleteDetectionHistory{DeletedCount: deletedCount}, nil
}

func resultMessage(result int) string {
	if result == constvars.DetectionResultPositive {
		return constvars.DetectionResultPositiveMessage
	}
	return constvars.DetectionResultNegativeMessage
}

func resultLabel(result int) string {
	if result == constvars.DetectionResultPositive {
		return constvars.DetectionLabelPositive
	}
	return constvars.DetectionLabelNegative
}
