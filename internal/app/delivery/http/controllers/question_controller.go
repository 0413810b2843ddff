package controllers

import (
	"context"
	"lupira-service/internal/app/contracts"
	"lupira-service/internal/pkg/constvars"
	"lupira-service/internal/pkg/exceptions"
	"lupira-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

type QuestionController struct {
	Log             *zap.Logger
	QuestionUsecase contracts.QuestionUsecase
	RequestTimeout  time.Duration
}

var (
	questionControllerInstance *QuestionController
	onceQuestionController     sync.Once
)

func NewQuestionController(logger *zap.Logger, questionUsecase contracts.QuestionUsecase, requestTimeout time.Duration) *QuestionController {
	onceQuestionController.Do(func() {
		instance := &QuestionController{
			Log:             logger,
			QuestionUsecase: questionUsecase,
			RequestTimeout:  requestTimeout,
		}
		questionControllerInstance = instance
	})
	return questionControllerInstance
}

func (ctrl *QuestionController) GetAllQuestions(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("QuestionController.GetAllQuestions requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("QuestionController.GetAllQuestions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.QuestionUsecase.ListQuestions(ctx)
	if err != nil {
		ctrl.Log.Error("QuestionController.GetAllQuestions error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetQuestionsSuccessMessage, response)
}
