package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/avc-dev/redirector/internal/model"
)

var (
	ErrNotFound      = errors.New("link not found")
	ErrAlreadyExists = errors.New("code already taken")
)

// MemoryStore хранит реестр ссылок и кликов в памяти.
// Используется в тестах и при запуске без DATABASE_DSN.
type MemoryStore struct {
	mutex sync.RWMutex
	links map[string]model.Link         // id -> link
	codes map[string]string             // short code or alias -> link id
	click map[string][]model.ClickEvent // link id -> clicks
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		links: make(map[string]model.Link),
		codes: make(map[string]string),
		click: make(map[string][]model.ClickEvent),
	}
}

// FindByCodeOrAlias ищет ссылку по короткому коду или пользовательскому
// алиасу за одно консистентное чтение
func (s *MemoryStore) FindByCodeOrAlias(_ context.Context, code model.Code) (model.Link, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	id, ok := s.codes[string(code)]
	if !ok {
		return model.Link{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	return s.links[id], nil
}

// CreateLink сохраняет ссылку, проверяя уникальность кода и алиаса
// по объединенному пространству идентификаторов
func (s *MemoryStore) CreateLink(_ context.Context, link model.Link) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, taken := s.codes[link.ShortCode]; taken {
		return fmt.Errorf("code %s: %w", link.ShortCode, ErrAlreadyExists)
	}
	if link.CustomAlias != "" {
		if _, taken := s.codes[link.CustomAlias]; taken {
			return fmt.Errorf("alias %s: %w", link.CustomAlias, ErrAlreadyExists)
		}
	}

	s.links[link.ID] = link
	s.codes[link.ShortCode] = link.ID
	if link.CustomAlias != "" {
		s.codes[link.CustomAlias] = link.ID
	}

	return nil
}

func (s *MemoryStore) GetLinkByID(_ context.Context, id string) (model.Link, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	link, ok := s.links[id]
	if !ok {
		return model.Link{}, fmt.Errorf("link %s: %w", id, ErrNotFound)
	}

	return link, nil
}

func (s *MemoryStore) ListLinksByOwner(_ context.Context, ownerID string) ([]model.Link, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var links []model.Link
	for _, link := range s.links {
		if link.OwnerID == ownerID {
			links = append(links, link)
		}
	}

	return links, nil
}

// DeleteLink удаляет ссылку вместе с ее кликами
func (s *MemoryStore) DeleteLink(_ context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	link, ok := s.links[id]
	if !ok {
		return fmt.Errorf("link %s: %w", id, ErrNotFound)
	}

	delete(s.links, id)
	delete(s.codes, link.ShortCode)
	if link.CustomAlias != "" {
		delete(s.codes, link.CustomAlias)
	}
	delete(s.click, id)

	return nil
}

// IsCodeAvailable проверяет, свободен ли код в объединенном пространстве
// кодов и алиасов
func (s *MemoryStore) IsCodeAvailable(_ context.Context, code model.Code) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, taken := s.codes[string(code)]
	return !taken
}

// AppendClick добавляет событие клика (append-only)
func (s *MemoryStore) AppendClick(_ context.Context, event model.ClickEvent) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.links[event.LinkID]; !ok {
		return fmt.Errorf("link %s: %w", event.LinkID, ErrNotFound)
	}

	s.click[event.LinkID] = append(s.click[event.LinkID], event)

	return nil
}

func (s *MemoryStore) ListClicksByLink(_ context.Context, linkID string) ([]model.ClickEvent, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	clicks := make([]model.ClickEvent, len(s.click[linkID]))
	copy(clicks, s.click[linkID])

	return clicks, nil
}

func (s *MemoryStore) ListClicksByLinks(ctx context.Context, linkIDs []string) ([]model.ClickEvent, error) {
	var all []model.ClickEvent
	for _, id := range linkIDs {
		clicks, err := s.ListClicksByLink(ctx, id)
		if err != nil {
			return nil, err
		}
		all = append(all, clicks...)
	}

	return all, nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}
