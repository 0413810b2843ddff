package main

import (
	"context"
	"log"
	"lupira-service/internal/app/config"
	"lupira-service/internal/app/drivers/database"
	"lupira-service/internal/app/services/core/questions"
	"time"
)

// Seeds the fixed symptom question catalog. Safe to re-run: the catalog is
// wiped and re-inserted as a whole.
func main() {
	driverConfig := config.NewDriverConfig()

	mongoDB := database.NewMongoDB(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	questionRepository := questions.NewQuestionMongoRepository(mongoDB, driverConfig.MongoDB.DbName)
	if err := questions.Seed(ctx, questionRepository); err != nil {
		log.Fatalf("Failed to seed symptom questions: %v", err)
	}

	log.Println("Detection questions seeded!")
}
