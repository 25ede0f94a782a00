package clicks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

// Location is a best-effort geolocation result. Either field may be
// empty when the upstream service has no data.
type Location struct {
	City    string
	Country string
}

// Geolocator ищет геолокацию по IP. Отсутствие результата — не ошибка
// для вызывающего: рекордер сохраняет клик с пустыми city/country.
type Geolocator interface {
	Lookup(ctx context.Context, ip string) (Location, error)
}

// IPAPIClient запрашивает ipapi.co-совместимый сервис
// (GET {base}/{ip}/json/). Лимитер ограничивает частоту обращений к
// стороннему сервису; превышение лимита пропускает геолокацию, а не
// ждет слота. Breaker отсекает мертвый сервис: клики продолжают
// записываться без city/country.
type IPAPIClient struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[Location]
}

type geoResponse struct {
	City    string `json:"city"`
	Country string `json:"country_name"`
	Error   bool   `json:"error"`
	Reason  string `json:"reason"`
}

func NewIPAPIClient(baseURL string, timeout time.Duration, perSec float64, burst int) *IPAPIClient {
	breaker := gobreaker.NewCircuitBreaker[Location](gobreaker.Settings{
		Name:        "geolocation",
		MaxRequests: 2,
		Interval:    time.Minute,
		Timeout:     time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &IPAPIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(perSec), burst),
		breaker: breaker,
	}
}

func (c *IPAPIClient) Lookup(ctx context.Context, ip string) (Location, error) {
	if ip == "" {
		return Location{}, fmt.Errorf("empty ip address")
	}
	if !c.limiter.Allow() {
		return Location{}, fmt.Errorf("geolocation rate limit exceeded")
	}

	return c.breaker.Execute(func() (Location, error) {
		return c.lookup(ctx, ip)
	})
}

func (c *IPAPIClient) lookup(ctx context.Context, ip string) (Location, error) {
	url := fmt.Sprintf("%s/%s/json/", c.baseURL, ip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Location{}, fmt.Errorf("failed to build geolocation request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("geolocation service returned status %d", resp.StatusCode)
	}

	var payload geoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Location{}, fmt.Errorf("failed to decode geolocation response: %w", err)
	}
	if payload.Error {
		return Location{}, fmt.Errorf("geolocation service error: %s", payload.Reason)
	}

	return Location{City: payload.City, Country: payload.Country}, nil
}
