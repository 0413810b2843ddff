package contracts

import (
	"context"
	"lupira-service/internal/app/models"
	"lupira-service/internal/pkg/dto/responses"
)

type QuestionRepository interface {
	FindAll(ctx context.Context) ([]models.SymptomQuestion, error)
	FindByNumber(ctx context.Context, questionNumber int) (*models.SymptomQuestion, error)
	ReplaceAll(ctx context.Context, questions []models.SymptomQuestion) error
}

type QuestionUsecase interface {
	ListQuestions(ctx context.Context) ([]responses.SymptomQuestion, error)
	QuestionCatalog(ctx context.Context) (map[int]models.SymptomQuestion, error)
}
