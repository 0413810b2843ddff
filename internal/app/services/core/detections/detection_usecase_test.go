package detections

import (
	"context"
	"lupira-service/internal/app/config"
	"lupira-service/internal/app/models"
	"lupira-service/internal/pkg/constvars"
	"lupira-service/internal/pkg/dto/requests"
	"lupira-service/internal/pkg/dto/responses"
	"lupira-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockDetectionRepository struct {
	mock.Mock
}

func (m *MockDetectionRepository) Insert(ctx context.Context, record *models.DetectionRecord) (string, error) {
	args := m.Called(ctx, record)
	return args.String(0), args.Error(1)
}

func (m *MockDetectionRepository) FindBySubjectID(ctx context.Context, subjectID string) ([]models.DetectionRecord, error) {
	args := m.Called(ctx, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DetectionRecord), args.Error(1)
}

func (m *MockDetectionRepository) DeleteByID(ctx context.Context, subjectID, recordID string) (bool, error) {
	args := m.Called(ctx, subjectID, recordID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDetectionRepository) DeleteBySubjectID(ctx context.Context, subjectID string) (int64, error) {
	args := m.Called(ctx, subjectID)
	return args.Get(0).(int64), args.Error(1)
}

type MockQuestionUsecase struct {
	mock.Mock
}

func (m *MockQuestionUsecase) ListQuestions(ctx context.Context) ([]responses.SymptomQuestion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.SymptomQuestion), args.Error(1)
}

func (m *MockQuestionUsecase) QuestionCatalog(ctx context.Context) (map[int]models.SymptomQuestion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]models.SymptomQuestion), args.Error(1)
}

type MockPredictionClient struct {
	mock.Mock
}

func (m *MockPredictionClient) Predict(ctx context.Context, features *requests.LupusFeatures) (int, error) {
	args := m.Called(ctx, features)
	return args.Int(0), args.Error(1)
}

func newTestDetectionUsecase(
	repository *MockDetectionRepository,
	questionUsecase *MockQuestionUsecase,
	predictionClient *MockPredictionClient,
) *detectionUsecase {
	return &detectionUsecase{
		DetectionRepository: repository,
		QuestionUsecase:     questionUsecase,
		PredictionClient:    predictionClient,
		InternalConfig:      &config.InternalConfig{},
		Log:                 zap.NewNop(),
	}
}

func TestDetectionUsecase_SubmitDetection(t *testing.T) {
	catalog := testCatalog()

	t.Run("Full Pipeline Persists Record After Prediction", func(t *testing.T) {
		mockRepository := new(MockDetectionRepository)
		mockQuestions := new(MockQuestionUsecase)
		mockPrediction := new(MockPredictionClient)
		usecase := newTestDetectionUsecase(mockRepository, mockQuestions, mockPrediction)

		mockQuestions.On("QuestionCatalog", mock.Anything).Return(catalog, nil)
		mockPrediction.On("Predict", mock.Anything, mock.AnythingOfType("*requests.LupusFeatures")).Return(1, nil)
		mockRepository.On("Insert", mock.Anything, mock.AnythingOfType("*models.DetectionRecord")).Return("record-id-1", nil)

		result, err := usecase.SubmitDetection(context.Background(), &requests.SubmitDetection{
			SubjectID: "subject-1",
			Responses: completeSubmission(),
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Code)
		assert.Equal(t, constvars.DetectionResultPositiveMessage, result.Result)

		mockRepository.AssertCalled(t, "Insert", mock.Anything, mock.MatchedBy(func(record *models.DetectionRecord) bool {
			return record.SubjectID == "subject-1" &&
				record.Result == 1 &&
				len(record.Responses) == constvars.TotalQuestionCount-1 &&
				!record.SubmittedAt.IsZero()
		}))
	})

	t.Run("Negative Prediction Maps To All Clear Message", func(t *testing.T) {
		mockRepository := new(MockDetectionRepository)
		mockQuestions := new(MockQuestionUsecase)
		mockPrediction := new(MockPredictionClient)
		usecase := newTestDetectionUsecase(mockRepository, mockQuestions, mockPrediction)

		mockQuestions.On("QuestionCatalog", mock.Anything).Return(catalog, nil)
		mockPrediction.On("Predict", mock.Anything, mock.Anything).Return(0, nil)
		mockRepository.On("Insert", mock.Anything, mock.Anything).Return("record-id-2", nil)

		result, err := usecase.SubmitDetection(context.Background(), &requests.SubmitDetection{
			SubjectID: "subject-1",
			Responses: completeSubmission(),
		})

		assert.NoError(t, err)
		assert.Equal(t, 0, result.Code)
		assert.Equal(t, constvars.DetectionResultNegativeMessage, result.Result)
	})

	t.Run("Validation Failure Skips Prediction And Persistence", func(t *testing.T) {
		mockRepository := new(MockDetectionRepository)
		mockQuestions := new(MockQuestionUsecase)
		mockPrediction := new(MockPredictionClient)
		usecase := newTestDetectionUsecase(mockRepository, mockQuestions, mockPrediction)

		mockQuestions.On("QuestionCatalog", mock.Anything).Return(catalog, nil)

		_, err := usecase.SubmitDetection(context.Background(), &requests.SubmitDetection{
			SubjectID: "subject-1",
			Responses: withoutQuestion(completeSubmission(), 5),
		})

		assert.Error(t, err)
		mockPrediction.AssertNotCalled(t, "Predict", mock.Anything, mock.Anything)
		mockRepository.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Prediction Failure Leaves Store Untouched", func(t *testing.T) {
		mockRepository := new(MockDetectionRepository)
		mockQuestions := new(MockQuestionUsecase)
		mockPrediction := new(MockPredictionClient)
		usecase := newTestDetectionUsecase(mockRepository, mockQuestions, mockPrediction)

		mockQuestions.On("QuestionCatalog", mock.Anything).Return(catalog, nil)
		mockPrediction.On("Predict", mock.Anything, mock.Anything).
			Return(0, exceptions.ErrPredictionUnavailable(nil, 3))

		_, err := usecase.SubmitDetection(context.Background(), &requests.SubmitDetection{
			SubjectID: "subject-1",
			Responses: completeSubmission(),
		})

		assertCustomError(t, err, constvars.StatusServiceUnavailable, constvars.ErrClientPredictionUnavailable)
		mockRepository.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestDetectionUsecase_GetDetectionHistory(t *testing.T) {
	t.Run("Records Map To History Entries With Labels", func(t *testing.T) {
		mockRepository := new(MockDetectionRepository)
		usecase := newTestDetectionUsecase(mockRepository, new(MockQuestionUsecase), new(MockPredictionClient))

		submittedAt := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
		mockRepository.On("FindBySubjectID", mock.Anything, "subject-1").Return([]models.DetectionRecord{
			{
				ID:        "record-1",
				SubjectID: "subject-1",
				Responses: []models.DetectionResponse{
					{QuestionNumber: 2, QuestionText: "fever question", Answer: constvars.AnswerYes},
				},
				Result:      1,
				SubmittedAt: submittedAt,
			},
			{
				ID:          "record-2",
				SubjectID:   "subject-1",
				Result:      0,
				SubmittedAt: submittedAt.Add(time.Hour),
			},
		}, nil)

		history, err := usecase.GetDetectionHistory(context.Background(), "subject-1")
		assert.NoError(t, err)
		assert.Len(t, history, 2)

		assert.Equal(t, "record-1", history[0].RecordID)
		assert.Equal(t, constvars.DetectionLabelPositive, history[0].ResultLabel)
		assert.Len(t, history[0].Responses, 1)
		assert.Equal(t, "fever question", history[0].Responses[0].Question)

		assert.Equal(t, constvars.DetectionLabelNegative, history[1].ResultLabel)
		assert.Empty(t, history[1].Responses)
	})

	t.Run("Empty History Returns Empty Slice", func(t *testing.T) {
		mockRepository := new(MockDetectionRepository)
		usecase := newTestDetectionUsecase(mockRepository, new(MockQuestionUsecase), new(MockPredictionClient))

		mockRepository.On("FindBySubjectID", mock.Anything, "subject-2").Return([]models.DetectionRecord{}, nil)

		history, err := usecase.GetDetectionHistory(context.Background(), "subject-2")
		assert.NoError(t, err)
		assert.NotNil(t, history)
		assert.Empty(t, history)
	})
}

func TestDetectionUsecase_Delete(t *testing.T) {
	t.Run("Delete By ID Reports Outcome", func(t *testing.T) {
		mockRepository := new(MockDetectionRepository)
		usecase := newTestDetectionUsecase(mockRepository, new(MockQuestionUsecase), new(MockPredictionClient))

		mockRepository.On("DeleteByID", mock.Anything, "subject-1", "record-1").Return(true, nil)

		response, err := usecase.DeleteDetectionByID(context.Background(), "subject-1", "record-1")
		assert.NoError(t, err)
		assert.True(t, response.Deleted)
	})

	t.Run("Delete History Reports Count", func(t *testing.T) {
		mockRepository := new(MockDetectionRepository)
		usecase := newTestDetectionUsecase(mockRepository, new(MockQuestionUsecase), new(MockPredictionClient))

		mockRepository.On("DeleteBySubjectID", mock.Anything, "subject-1").Return(int64(4), nil)

		response, err := usecase.DeleteDetectionHistory(context.Background(), "subject-1")
		assert.NoError(t, err)
		assert.Equal(t, int64(4), response.DeletedCount)
	})
}
