package prediction

import (
	"bytes"
	"context"
	"fmt"
	"lupira-service/internal/app/contracts"
	"lupira-service/internal/pkg/constvars"
	"lupira-service/internal/pkg/dto/requests"
	"lupira-service/internal/pkg/exceptions"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// maxAttempts is the total attempt budget per prediction, retries included.
// Attempts run back to back with no delay; the caller observes a single
// outcome after at most maxAttempts round trips.
const maxAttempts = 3

const predictionResource = "prediction"

type predictionResponse struct {
	Prediction int `json:"prediction"`
}

type predictionHTTPClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewPredictionHTTPClient(baseUrl string, timeout time.Duration, logger *zap.Logger) contracts.PredictionClient {
	return &predictionHTTPClient{
		BaseUrl: baseUrl,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		Log: logger,
	}
}

// Predict sends the named-field feature payload to the external classifier
// and returns its result code. Intermediate failures are swallowed and
// retried; only exhaustion of the attempt budget surfaces to the caller.
func (c *predictionHTTPClient) Predict(ctx context.Context, features *requests.LupusFeatures) (int, error) {
	requestJSON, err := json.Marshal(features)
	if err != nil {
		return 0, exceptions.ErrCannotMarshalJSON(err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := c.doPredict(ctx, requestJSON)
		if err == nil {
			return result, nil
		}
		lastErr = err
		c.Log.Warn("predictionHTTPClient.Predict attempt failed",
			zap.Int(constvars.LoggingAttemptKey, attempt),
			zap.Error(err),
		)
	}

	return 0, exceptions.ErrPredictionUnavailable(lastErr, maxAttempts)
}

func (c *predictionHTTPClient) doPredict(ctx context.Context, requestJSON []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+constvars.PredictionEndpointPath, bytes.NewBuffer(requestJSON))
	if err != nil {
		return 0, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf(constvars.ErrDevPredictionBadStatus, resp.StatusCode)
	}

	response := new(predictionResponse)
	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return 0, exceptions.ErrDecodeResponse(err, predictionResource)
	}
	return response.Prediction, nil
}
