package main

import (
	"context"
	"lupira-service/internal/app/config"
	"lupira-service/internal/app/delivery/http/controllers"
	"lupira-service/internal/app/delivery/http/middlewares"
	"lupira-service/internal/app/delivery/http/routers"
	"lupira-service/internal/app/drivers/database"
	"lupira-service/internal/app/drivers/logger"
	"lupira-service/internal/app/services/core/detections"
	"lupira-service/internal/app/services/core/questions"
	"lupira-service/internal/app/services/shared/prediction"
	sharedredis "lupira-service/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLog := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLog.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Log:            log,
		ZapLog:         zapLog,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	requestTimeout := time.Duration(bootstrap.InternalConfig.App.RequestTimeoutInSeconds) * time.Second

	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	predictionClient := prediction.NewPredictionHTTPClient(
		bootstrap.InternalConfig.Prediction.BaseUrl,
		time.Duration(bootstrap.InternalConfig.Prediction.TimeoutInSeconds)*time.Second,
		bootstrap.ZapLog,
	)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.ZapLog, bootstrap.InternalConfig)

	// Question catalog
	questionMongoRepository := questions.NewQuestionMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	questionUsecase := questions.NewQuestionUsecase(
		questionMongoRepository,
		redisRepository,
		bootstrap.InternalConfig,
		bootstrap.ZapLog,
	)
	questionController := controllers.NewQuestionController(bootstrap.ZapLog, questionUsecase, requestTimeout)

	// Detection pipeline
	detectionMongoRepository := detections.NewDetectionMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	detectionUsecase := detections.NewDetectionUsecase(
		detectionMongoRepository,
		questionUsecase,
		predictionClient,
		bootstrap.InternalConfig,
		bootstrap.ZapLog,
	)
	detectionController := controllers.NewDetectionController(bootstrap.ZapLog, detectionUsecase, requestTimeout)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, questionController, detectionController)
}
