package prediction

import (
	"context"
	"io"
	"lupira-service/internal/pkg/constvars"
	"lupira-service/internal/pkg/dto/requests"
	"lupira-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPredictionHTTPClient_Predict(t *testing.T) {
	logger := zap.NewNop()
	features := &requests.LupusFeatures{AnaTest: 1, Fever: 1}

	t.Run("Returns Classifier Result On Success", func(t *testing.T) {
		var attempts int
		var receivedBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			assert.Equal(t, constvars.PredictionEndpointPath, r.URL.Path)
			assert.Equal(t, constvars.MIMEApplicationJSON, r.Header.Get(constvars.HeaderContentType))

			body, _ := io.ReadAll(r.Body)
			receivedBody = string(body)

			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.Write([]byte(`{"prediction": 1}`))
		}))
		defer server.Close()

		client := NewPredictionHTTPClient(server.URL, 5*time.Second, logger)

		result, err := client.Predict(context.Background(), features)
		assert.NoError(t, err)
		assert.Equal(t, 1, result)
		assert.Equal(t, 1, attempts)
		// The classifier's schema spells this field with the transposed "it".
		assert.True(t, strings.Contains(receivedBody, `"anti_cardiolipin_anitbody"`))
		assert.True(t, strings.Contains(receivedBody, `"Ana_test":1`))
	})

	t.Run("Recovers Within Attempt Budget", func(t *testing.T) {
		var attempts int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			if attempts < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"prediction": 0}`))
		}))
		defer server.Close()

		client := NewPredictionHTTPClient(server.URL, 5*time.Second, logger)

		result, err := client.Predict(context.Background(), features)
		assert.NoError(t, err)
		assert.Equal(t, 0, result)
		assert.Equal(t, 3, attempts)
	})

	t.Run("Exhausted Attempts Surface As Service Unavailable", func(t *testing.T) {
		var attempts int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewPredictionHTTPClient(server.URL, 5*time.Second, logger)

		_, err := client.Predict(context.Background(), features)
		assert.Error(t, err)
		assert.Equal(t, 3, attempts)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok, "error should be a CustomError, got %T", err)
		assert.Equal(t, constvars.StatusServiceUnavailable, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientPredictionUnavailable, customErr.ClientMessage)
	})

	t.Run("Unreachable Host Also Exhausts Attempts", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewPredictionHTTPClient(server.URL, time.Second, logger)

		_, err := client.Predict(context.Background(), features)
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusServiceUnavailable, customErr.StatusCode)
	})

	t.Run("Malformed Response Body Is Retried Then Rejected", func(t *testing.T) {
		var attempts int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		client := NewPredictionHTTPClient(server.URL, 5*time.Second, logger)

		_, err := client.Predict(context.Background(), features)
		assert.Error(t, err)
		assert.Equal(t, 3, attempts)
	})
}
