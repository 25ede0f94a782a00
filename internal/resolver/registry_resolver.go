package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/redirector/internal/model"
	"github.com/avc-dev/redirector/internal/store"
)

// LinkFinder определяет чтение из реестра, нужное резолверу
type LinkFinder interface {
	FindByCodeOrAlias(ctx context.Context, code model.Code) (model.Link, error)
}

// RegistryResolver резолвит коды прямым запросом в реестр ссылок
type RegistryResolver struct {
	registry LinkFinder
	timeout  time.Duration
}

func NewRegistryResolver(registry LinkFinder, timeout time.Duration) *RegistryResolver {
	return &RegistryResolver{
		registry: registry,
		timeout:  timeout,
	}
}

// Resolve выполняет один запрос без повторов. Таймаут ограничивает
// запрос, чтобы медленный реестр не держал соединение клиента.
func (r *RegistryResolver) Resolve(ctx context.Context, code model.Code) (model.Link, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	link, err := r.registry.FindByCodeOrAlias(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Link{}, ErrNotFound
		}
		return model.Link{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return link, nil
}
