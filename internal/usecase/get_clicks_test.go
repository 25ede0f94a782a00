package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/avc-dev/redirector/internal/model"
	"github.com/avc-dev/redirector/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func ownedLinksRegistry(owned map[string]string) *mockRegistry {
	return &mockRegistry{
		GetLinkByIDFunc: func(ctx context.Context, id string) (model.Link, error) {
			ownerID, ok := owned[id]
			if !ok {
				return model.Link{}, fmt.Errorf("link %s: %w", id, store.ErrNotFound)
			}
			return model.Link{ID: id, OwnerID: ownerID}, nil
		},
	}
}

func TestGetClicks(t *testing.T) {
	registry := ownedLinksRegistry(map[string]string{"link-1": "user-1"})
	registry.ListClicksByLinkFunc = func(ctx context.Context, linkID string) ([]model.ClickEvent, error) {
		return []model.ClickEvent{
			{ID: "1", LinkID: linkID, DeviceType: model.DeviceMobile},
			{ID: "2", LinkID: linkID, DeviceType: model.DeviceDesktop},
		}, nil
	}

	u := NewLinkUsecase(registry, &mockCreator{}, testConfig(), zap.NewNop())

	clicks, err := u.GetClicks(context.Background(), "link-1", "user-1")
	require.NoError(t, err)
	assert.Len(t, clicks, 2)

	// Чужая ссылка
	_, err = u.GetClicks(context.Background(), "link-1", "user-2")
	assert.ErrorIs(t, err, ErrLinkNotFound)

	// Несуществующая ссылка
	_, err = u.GetClicks(context.Background(), "missing", "user-1")
	assert.ErrorIs(t, err, ErrLinkNotFound)
}

// Чужие и несуществующие ID отфильтровываются молча
func TestGetClicksForLinks_FiltersToOwned(t *testing.T) {
	registry := ownedLinksRegistry(map[string]string{
		"link-1": "user-1",
		"link-2": "user-1",
		"link-3": "user-2",
	})
	registry.ListClicksByLinksFunc = func(ctx context.Context, linkIDs []string) ([]model.ClickEvent, error) {
		assert.Equal(t, []string{"link-1", "link-2"}, linkIDs)
		return []model.ClickEvent{{ID: "1", LinkID: "link-1"}, {ID: "2", LinkID: "link-2"}}, nil
	}

	u := NewLinkUsecase(registry, &mockCreator{}, testConfig(), zap.NewNop())

	clicks, err := u.GetClicksForLinks(context.Background(), []string{"link-1", "link-2", "link-3", "missing"}, "user-1")
	require.NoError(t, err)
	assert.Len(t, clicks, 2)
}

func TestGetClicksForLinks_NothingOwned(t *testing.T) {
	registry := ownedLinksRegistry(map[string]string{"link-3": "user-2"})

	u := NewLinkUsecase(registry, &mockCreator{}, testConfig(), zap.NewNop())

	clicks, err := u.GetClicksForLinks(context.Background(), []string{"link-3", "missing"}, "user-1")
	require.NoError(t, err)
	assert.Empty(t, clicks)
}
