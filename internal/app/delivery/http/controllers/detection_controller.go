package controllers

import (
	"context"
	"encoding/json"
	"lupira-service/internal/app/contracts"
	"lupira-service/internal/pkg/constvars"
	"lupira-service/internal/pkg/dto/requests"
	"lupira-service/internal/pkg/exceptions"
	"lupira-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DetectionController struct {
	Log              *zap.Logger
	DetectionUsecase contracts.DetectionUsecase
	RequestTimeout   time.Duration
}

var (
	detectionControllerInstance *DetectionController
	onceDetectionController     sync.Once
)

func NewDetectionController(logger *zap.Logger, detectionUsecase contracts.DetectionUsecase, requestTimeout time.Duration) *DetectionController {
	onceDetectionController.Do(func() {
		instance := &DetectionController{
			Log:              logger,
			DetectionUsecase: detectionUsecase,
			RequestTimeout:   requestTimeout,
		}
		detectionControllerInstance = instance
	})
	return detectionControllerInstance
}

func (ctrl *DetectionController) requestScope(r *http.Request) (requestID, subjectID string, err error) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		return "", "", exceptions.ErrMissingRequestID(nil)
	}
	subjectID, ok = r.Context().Value(constvars.CONTEXT_SUBJECT_ID_KEY).(string)
	if !ok || subjectID == "" {
		return "", "", exceptions.ErrMissingSubjectID(nil)
	}
	return requestID, subjectID, nil
}

func (ctrl *DetectionController) SubmitDetection(w http.ResponseWriter, r *http.Request) {
	requestID, subjectID, err := ctrl.requestScope(r)
	if err != nil {
		ctrl.Log.Error("DetectionController.SubmitDetection request scope incomplete", zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("DetectionController.SubmitDetection called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubjectIDKey, subjectID),
	)

	request := new(requests.SubmitDetection)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("DetectionController.SubmitDetection error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.SubjectID = subjectID

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("DetectionController.SubmitDetection validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.DetectionUsecase.SubmitDetection(ctx, request)
	if err != nil {
		ctrl.Log.Error("DetectionController.SubmitDetection error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("DetectionController.SubmitDetection succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitDetectionSuccessMessage, response)
}

func (ctrl *DetectionController) GetDetectionHistory(w http.ResponseWriter, r *http.Request) {
	requestID, subjectID, err := ctrl.requestScope(r)
	if err != nil {
		ctrl.Log.Error("DetectionController.GetDetectionHistory request scope incomplete", zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("DetectionController.GetDetectionHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubjectIDKey, subjectID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.DetectionUsecase.GetDetectionHistory(ctx, subjectID)
	if err != nil {
		ctrl.Log.Error("DetectionController.GetDetectionHistory error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDetectionHistorySuccessMessage, response)
}

func (ctrl *DetectionController) DeleteDetectionByID(w http.ResponseWriter, r *http.Request) {
	requestID, subjectID, err := ctrl.requestScope(r)
	if err != nil {
		ctrl.Log.Error("DetectionController.DeleteDetectionByID request scope incomplete", zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	recordID := chi.URLParam(r, "record_id")
	if recordID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "record_id"))
		return
	}
	ctrl.Log.Info("DetectionController.DeleteDetectionByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubjectIDKey, subjectID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.DetectionUsecase.DeleteDetectionByID(ctx, subjectID, recordID)
	if err != nil {
		ctrl.Log.Error("DetectionController.DeleteDetectionByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteDetectionSuccessMessage, response)
}

func (ctrl *DetectionController) DeleteDetectionHistory(w http.ResponseWriter, r *http.Request) {
	requestID, subjectID, err := ctrl.requestScope(r)
	if err != nil {
		ctrl.Log.Error("DetectionController.DeleteDetectionHistory request scope incomplete", zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("DetectionController.DeleteDetectionHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubjectIDKey, subjectID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.DetectionUsecase.DeleteDetectionHistory(ctx, subjectID)
	if err != nil {
		ctrl.Log.Error("DetectionController.DeleteDetectionHistory error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteDetectionHistorySuccessMessage, response)
}
