package questions

import (
	"context"
	"lupira-service/internal/app/config"
	"lupira-service/internal/app/contracts"
	"lupira-service/internal/app/models"
	"lupira-service/internal/pkg/dto/responses"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const questionCatalogCacheKey = "lupira:questions"

type questionUsecase struct {
	QuestionRepository contracts.QuestionRepository
	RedisRepository    contracts.RedisRepository
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

var (
	questionUsecaseInstance contracts.QuestionUsecase
	onceQuestionUsecase     sync.Once
)

func NewQuestionUsecase(
	questionRepository contracts.QuestionRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.QuestionUsecase {
	onceQuestionUsecase.Do(func() {
		instance := &questionUsecase{
			QuestionRepository: questionRepository,
			RedisRepository:    redisRepository,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
		questionUsecaseInstance = instance
	})
	return questionUsecaseInstance
}

func (uc *questionUsecase) ListQuestions(ctx context.Context) ([]responses.SymptomQuestion, error) {
	questions, err := uc.allQuestions(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.SymptomQuestion, 0, len(questions))
	for _, question := range questions {
		result = append(result, responses.SymptomQuestion{
			Number:        question.QuestionNumber,
			Text:          question.QuestionText,
			TextArabic:    question.QuestionTextArabic,
			Options:       question.Options,
			OptionsArabic: question.OptionsArabic,
			Explanation:   question.Explanation,
		})
	}
	return result, nil
}

func (uc *questionUsecase) QuestionCatalog(ctx context.Context) (map[int]models.SymptomQuestion, error) {
	questions, err := uc.allQuestions(ctx)
	if err != nil {
		return nil, err
	}

	catalog := make(map[int]models.SymptomQuestion, len(questions))
	for _, question := range questions {
		catalog[question.QuestionNumber] = question
	}
	return catalog, nil
}

// allQuestions reads the catalog through the redis cache. The catalog is
// immutable reference data, so a stale miss only costs one mongo round trip.
func (uc *questionUsecase) allQuestions(ctx context.Context) ([]models.SymptomQuestion, error) {
	cached, err := uc.RedisRepository.Get(ctx, questionCatalogCacheKey)
	if err == nil && cached != "" {
		var questions []models.SymptomQuestion
		if unmarshalErr := json.Unmarshal([]byte(cached), &questions); unmarshalErr == nil {
			return questions, nil
		}
		uc.Log.Warn("questionUsecase.allQuestions cached catalog is corrupt, refetching")
	}

	questions, err := uc.QuestionRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(questions)
	if err == nil {
		ttl := time.Duration(uc.InternalConfig.App.QuestionCacheTTLInMinutes) * time.Minute
		if cacheErr := uc.RedisRepository.Set(ctx, questionCatalogCacheKey, string(payload), ttl); cacheErr != nil {
			uc.Log.Warn("questionUsecase.allQuestions failed to cache catalog", zap.Error(cacheErr))
		}
	}
	return questions, nil
}
