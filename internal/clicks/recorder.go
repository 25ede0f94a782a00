// Package clicks records click events after a successful resolution.
//
// Recording is strictly secondary to redirecting: every failure in this
// package is swallowed and logged, and nothing here may delay or alter
// a redirect response already decided.
package clicks

import (
	"context"
	"sync"
	"time"

	"github.com/avc-dev/redirector/internal/metrics"
	"github.com/avc-dev/redirector/internal/model"
	"go.uber.org/zap"
)

// writeTimeout ограничивает запись клика в реестр воркером
const writeTimeout = 5 * time.Second

// Recorder принимает событие клика, не блокируя вызывающего
type Recorder interface {
	Record(event model.ClickEvent)
}

// ClickWriter — запись кликов в реестр
type ClickWriter interface {
	AppendClick(ctx context.Context, event model.ClickEvent) error
}

// AsyncRecorder — буферизованный канал плюс пул воркеров. Воркеры
// обогащают событие (тип устройства, геолокация) и пишут его в реестр.
// Жизненный цикл привязан к процессу, а не к запросу: отключившийся
// клиент не отменяет уже отправленное событие.
type AsyncRecorder struct {
	events   chan model.ClickEvent
	registry ClickWriter
	geo      Geolocator
	logger   *zap.Logger

	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewAsyncRecorder(registry ClickWriter, geo Geolocator, bufferSize, workerCount int, logger *zap.Logger) *AsyncRecorder {
	r := &AsyncRecorder{
		events:   make(chan model.ClickEvent, bufferSize),
		registry: registry,
		geo:      geo,
		logger:   logger,
	}

	for i := 0; i < workerCount; i++ {
		r.wg.Add(1)
		go r.worker()
	}

	return r
}

// Record ставит событие в очередь. При заполненном буфере событие
// отбрасывается: потерянный клик — потеря данных, не ошибка корректности.
func (r *AsyncRecorder) Record(event model.ClickEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	select {
	case r.events <- event:
	default:
		metrics.ClicksDropped.Inc()
		r.logger.Debug("click recorder buffer full, dropping event",
			zap.String("link_id", event.LinkID),
		)
	}
}

// Close останавливает прием и дожидается, пока воркеры дообработают
// буфер
func (r *AsyncRecorder) Close() {
	r.closeOnce.Do(func() {
		close(r.events)
	})
	r.wg.Wait()
}

func (r *AsyncRecorder) worker() {
	defer r.wg.Done()

	for event := range r.events {
		r.process(event)
	}
}

func (r *AsyncRecorder) process(event model.ClickEvent) {
	event.DeviceType = DeviceType(event.UserAgent)

	// Геолокация — best effort: любая ошибка оставляет city/country
	// пустыми
	location, err := r.geo.Lookup(context.Background(), event.IPAddress)
	if err != nil {
		metrics.ClickFailures.WithLabelValues("geolocation").Inc()
		r.logger.Debug("geolocation lookup failed",
			zap.String("link_id", event.LinkID),
			zap.Error(err),
		)
	}
	event.City = location.City
	event.Country = location.Country

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := r.registry.AppendClick(ctx, event); err != nil {
		metrics.ClickFailures.WithLabelValues("write").Inc()
		r.logger.Error("failed to record click",
			zap.String("link_id", event.LinkID),
			zap.Error(err),
		)
	}
}
