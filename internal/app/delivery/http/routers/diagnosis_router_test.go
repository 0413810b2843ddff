package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"lupira-service/internal/app/config"
	"lupira-service/internal/app/delivery/http/controllers"
	"lupira-service/internal/app/delivery/http/middlewares"
	"lupira-service/internal/app/models"
	"lupira-service/internal/pkg/constvars"
	"lupira-service/internal/pkg/dto/requests"
	"lupira-service/internal/pkg/dto/responses"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockDetectionUsecase struct {
	mock.Mock
}

func (m *MockDetectionUsecase) SubmitDetection(ctx context.Context, request *requests.SubmitDetection) (*responses.DetectionResult, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.DetectionResult), args.Error(1)
}

func (m *MockDetectionUsecase) GetDetectionHistory(ctx context.Context, subjectID string) ([]responses.DetectionHistoryEntry, error) {
	args := m.Called(ctx, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.DetectionHistoryEntry), args.Error(1)
}

func (m *MockDetectionUsecase) DeleteDetectionByID(ctx context.Context, subjectID, recordID string) (*responses.DeleteDetection, error) {
	args := m.Called(ctx, subjectID, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.DeleteDetection), args.Error(1)
}

func (m *MockDetectionUsecase) DeleteDetectionHistory(ctx context.Context, subjectID string) (*responses.DeleteDetectionHistory, error) {
	args := m.Called(ctx, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.DeleteDetectionHistory), args.Error(1)
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

func TestDiagnosisRoutes(t *testing.T) {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{}

	mockDetectionUsecase := new(MockDetectionUsecase)
	mockQuestionUsecase := new(MockQuestionUsecase)

	detectionController := controllers.NewDetectionController(logger, mockDetectionUsecase, 10*time.Second)
	questionController := controllers.NewQuestionController(logger, mockQuestionUsecase, 10*time.Second)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	router.Use(middlewareInstance.RequestIDMiddleware)
	attachDiagnosisRoutes(router, middlewareInstance, questionController, detectionController)

	t.Run("Submit Detection Returns Created", func(t *testing.T) {
		mockDetectionUsecase.On("SubmitDetection", mock.Anything, mock.MatchedBy(func(request *requests.SubmitDetection) bool {
			return request.SubjectID == "subject-1" && len(request.Responses) == 1
		})).Return(&responses.DetectionResult{
			Result: constvars.DetectionResultPositiveMessage,
			Code:   constvars.DetectionResultPositive,
		}, nil).Once()

		requestBody := requests.SubmitDetection{
			Responses: []requests.SubmittedAnswer{
				{QuestionNumber: 1, Answer: constvars.AnswerPositive},
			},
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/detection", bytes.NewBuffer(jsonBody))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		req.Header.Set(constvars.HeaderXSubjectID, "subject-1")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var response responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.True(t, response.Success)
		assert.Equal(t, constvars.SubmitDetectionSuccessMessage, response.Message)
	})

	t.Run("Submit Detection Without Subject Header Is Unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/detection", bytes.NewBufferString(`{"responses":[]}`))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Submit Detection With Malformed JSON Is Bad Request", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/detection", bytes.NewBufferString(`{broken`))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		req.Header.Set(constvars.HeaderXSubjectID, "subject-1")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Get Questions Returns Catalog", func(t *testing.T) {
		mockQuestionUsecase.On("ListQuestions", mock.Anything).Return([]responses.SymptomQuestion{
			{Number: 1, Text: "ANA result?"},
		}, nil).Once()

		req := httptest.NewRequest("GET", "/questions", nil)
		req.Header.Set(constvars.HeaderXSubjectID, "subject-1")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.True(t, response.Success)
		assert.Equal(t, constvars.GetQuestionsSuccessMessage, response.Message)
	})

	t.Run("Get History Is Subject Scoped", func(t *testing.T) {
		mockDetectionUsecase.On("GetDetectionHistory", mock.Anything, "subject-2").
			Return([]responses.DetectionHistoryEntry{}, nil).Once()

		req := httptest.NewRequest("GET", "/history", nil)
		req.Header.Set(constvars.HeaderXSubjectID, "subject-2")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockDetectionUsecase.AssertCalled(t, "GetDetectionHistory", mock.Anything, "subject-2")
	})

	t.Run("Delete Single Record", func(t *testing.T) {
		mockDetectionUsecase.On("DeleteDetectionByID", mock.Anything, "subject-1", "record-9").
			Return(&responses.DeleteDetection{Deleted: true}, nil).Once()

		req := httptest.NewRequest("DELETE", "/history/record-9", nil)
		req.Header.Set(constvars.HeaderXSubjectID, "subject-1")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, constvars.DeleteDetectionSuccessMessage, response.Message)
	})

	t.Run("Delete Whole History", func(t *testing.T) {
		mockDetectionUsecase.On("DeleteDetectionHistory", mock.Anything, "subject-1").
			Return(&responses.DeleteDetectionHistory{DeletedCount: 3}, nil).Once()

		req := httptest.NewRequest("DELETE", "/history", nil)
		req.Header.Set(constvars.HeaderXSubjectID, "subject-1")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockDetectionUsecase.AssertCalled(t, "DeleteDetectionHistory", mock.Anything, "subject-1")
	})
}
