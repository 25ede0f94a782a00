package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avc-dev/redirector/internal/model"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// HTTPResolver делегирует резолвинг внешнему lookup API
// (GET {upstream}/api/lookup/{code}). Обернут в circuit breaker:
// мертвый upstream отваливается быстро, не накапливая висящие запросы.
type HTTPResolver struct {
	upstream string
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker[model.Link]
	logger   *zap.Logger
}

type lookupResponse struct {
	Success bool       `json:"success"`
	Data    model.Link `json:"data"`
	Message string     `json:"message"`
}

func NewHTTPResolver(upstream string, timeout time.Duration, logger *zap.Logger) *HTTPResolver {
	breaker := gobreaker.NewCircuitBreaker[model.Link](gobreaker.Settings{
		Name:        "lookup-upstream",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("lookup upstream circuit breaker state change",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		// NotFound — ожидаемый результат, не повод открывать breaker
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound)
		},
	})

	return &HTTPResolver{
		upstream: strings.TrimSuffix(upstream, "/"),
		client:   &http.Client{Timeout: timeout},
		breaker:  breaker,
		logger:   logger,
	}
}

func (r *HTTPResolver) Resolve(ctx context.Context, code model.Code) (model.Link, error) {
	link, err := r.breaker.Execute(func() (model.Link, error) {
		return r.lookup(ctx, code)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.Link{}, ErrNotFound
		}
		return model.Link{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return link, nil
}

func (r *HTTPResolver) lookup(ctx context.Context, code model.Code) (model.Link, error) {
	url := fmt.Sprintf("%s/api/lookup/%s", r.upstream, code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to build lookup request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return model.Link{}, fmt.Errorf("lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return model.Link{}, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return model.Link{}, fmt.Errorf("lookup upstream returned status %d", resp.StatusCode)
	}

	var payload lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return model.Link{}, fmt.Errorf("failed to decode lookup response: %w", err)
	}
	if !payload.Success {
		return model.Link{}, ErrNotFound
	}

	return payload.Data, nil
}
