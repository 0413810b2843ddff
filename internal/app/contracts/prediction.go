package contracts

import (
	"context"
	"lupira-service/internal/pkg/dto/requests"
)

type PredictionClient interface {
	Predict(ctx context.Context, features *requests.LupusFeatures) (int, error)
}
