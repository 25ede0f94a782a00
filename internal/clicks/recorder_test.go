package clicks

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/avc-dev/redirector/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockWriter собирает записанные клики под мьютексом: пишут воркеры
type mockWriter struct {
	mu     sync.Mutex
	events []model.ClickEvent
	err    error
}

func (m *mockWriter) AppendClick(ctx context.Context, event model.ClickEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, event)
	return nil
}

func (m *mockWriter) Events() []model.ClickEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.ClickEvent(nil), m.events...)
}

type mockGeo struct {
	location Location
	err      error
}

func (m *mockGeo) Lookup(ctx context.Context, ip string) (Location, error) {
	return m.location, m.err
}

func TestAsyncRecorder_EnrichesAndWrites(t *testing.T) {
	writer := &mockWriter{}
	geo := &mockGeo{location: Location{City: "Moscow", Country: "Russia"}}

	r := NewAsyncRecorder(writer, geo, 16, 2, zap.NewNop())

	r.Record(model.ClickEvent{
		LinkID:    "link-1",
		IPAddress: "203.0.113.7",
		UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/15E148 Safari/604.1",
	})
	r.Close()

	events := writer.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "link-1", events[0].LinkID)
	assert.Equal(t, "Moscow", events[0].City)
	assert.Equal(t, "Russia", events[0].Country)
	assert.Equal(t, model.DeviceMobile, events[0].DeviceType)
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestAsyncRecorder_GeoFailureKeepsClick(t *testing.T) {
	writer := &mockWriter{}
	geo := &mockGeo{err: errors.New("geolocation rate limit exceeded")}

	r := NewAsyncRecorder(writer, geo, 16, 2, zap.NewNop())

	r.Record(model.ClickEvent{LinkID: "link-1", IPAddress: "203.0.113.7"})
	r.Close()

	events := writer.Events()
	require.Len(t, events, 1)
	assert.Empty(t, events[0].City)
	assert.Empty(t, events[0].Country)
	assert.Equal(t, model.DeviceDesktop, events[0].DeviceType)
}

// Record не должен блокироваться и паниковать при отказе записи
func TestAsyncRecorder_WriteFailureSwallowed(t *testing.T) {
	writer := &mockWriter{err: errors.New("connection refused")}
	geo := &mockGeo{}

	r := NewAsyncRecorder(writer, geo, 16, 2, zap.NewNop())

	for i := 0; i < 10; i++ {
		r.Record(model.ClickEvent{LinkID: "link-1"})
	}
	r.Close()

	assert.Empty(t, writer.Events())
}

func TestAsyncRecorder_CloseDrainsBuffer(t *testing.T) {
	writer := &mockWriter{}
	geo := &mockGeo{}

	r := NewAsyncRecorder(writer, geo, 64, 4, zap.NewNop())

	const total = 50
	for i := 0; i < total; i++ {
		r.Record(model.ClickEvent{LinkID: "link-1"})
	}
	r.Close()

	assert.Len(t, writer.Events(), total)
}

func TestAsyncRecorder_CloseIsIdempotent(t *testing.T) {
	r := NewAsyncRecorder(&mockWriter{}, &mockGeo{}, 4, 1, zap.NewNop())

	r.Close()
	assert.NotPanics(t, func() { r.Close() })
}
