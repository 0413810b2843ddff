package routers

import (
	"lupira-service/internal/app/delivery/http/controllers"
	"lupira-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDiagnosisRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	questionController *controllers.QuestionController,
	detectionController *controllers.DetectionController,
) {
	router.With(middlewares.RequireSubject).Get("/questions", questionController.GetAllQuestions)
	router.With(middlewares.RequireSubject).Post("/detection", detectionController.SubmitDetection)
	router.With(middlewares.RequireSubject).Get("/history", detectionController.GetDetectionHistory)
	router.With(middlewares.RequireSubject).Delete("/history/{record_id}", detectionController.DeleteDetectionByID)
	router.With(middlewares.RequireSubject).Delete("/history", detectionController.DeleteDetectionHistory)
}
