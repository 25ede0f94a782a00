package usecase

import (
	"context"
	"testing"

	"github.com/avc-dev/redirector/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDeleteLink(t *testing.T) {
	var deletedID string
	registry := ownedLinksRegistry(map[string]string{"link-1": "user-1"})
	registry.DeleteLinkFunc = func(ctx context.Context, id string) error {
		deletedID = id
		return nil
	}

	u := NewLinkUsecase(registry, &mockCreator{}, testConfig(), zap.NewNop())

	require.NoError(t, u.DeleteLink(context.Background(), "link-1", "user-1"))
	assert.Equal(t, "link-1", deletedID)
}

func TestDeleteLink_OwnerCheck(t *testing.T) {
	registry := ownedLinksRegistry(map[string]string{"link-1": "user-1"})
	registry.DeleteLinkFunc = func(ctx context.Context, id string) error {
		t.Fatal("delete must not be called for a foreign link")
		return nil
	}

	u := NewLinkUsecase(registry, &mockCreator{}, testConfig(), zap.NewNop())

	err := u.DeleteLink(context.Background(), "link-1", "user-2")
	assert.ErrorIs(t, err, ErrLinkNotFound)
}

func TestDeleteLink_Missing(t *testing.T) {
	registry := ownedLinksRegistry(map[string]string{})

	u := NewLinkUsecase(registry, &mockCreator{}, testConfig(), zap.NewNop())

	err := u.DeleteLink(context.Background(), "missing", "user-1")
	assert.ErrorIs(t, err, ErrLinkNotFound)
}

func TestPing(t *testing.T) {
	registry := &mockRegistry{
		PingFunc: func(ctx context.Context) error { return nil },
	}

	u := NewLinkUsecase(registry, &mockCreator{}, testConfig(), zap.NewNop())

	assert.NoError(t, u.Ping(context.Background()))
}

func TestLookup_PublicNoOwnerCheck(t *testing.T) {
	// Lookup — публичная операция: владелец не проверяется
	registry := &mockRegistry{
		FindByCodeOrAliasFunc: func(ctx context.Context, code model.Code) (model.Link, error) {
			return model.Link{ID: "link-1", ShortCode: string(code), OwnerID: "user-9"}, nil
		},
	}

	u := NewLinkUsecase(registry, &mockCreator{}, testConfig(), zap.NewNop())

	link, err := u.Lookup(context.Background(), "abc12345")
	require.NoError(t, err)
	assert.Equal(t, "user-9", link.OwnerID)
}
