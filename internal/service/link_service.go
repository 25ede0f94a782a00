package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avc-dev/redirector/internal/config"
	"github.com/avc-dev/redirector/internal/model"
	"github.com/google/uuid"
)

// LinkRegistry определяет методы реестра, нужные сервису ссылок
type LinkRegistry interface {
	CreateLink(ctx context.Context, link model.Link) error
	IsCodeAvailable(ctx context.Context, code model.Code) bool
}

// LinkService содержит бизнес-логику создания коротких ссылок
type LinkService struct {
	registry      LinkRegistry
	codeGenerator *CodeGenerator
	cfg           *config.Config
}

func NewLinkService(registry LinkRegistry, cfg *config.Config) *LinkService {
	return &LinkService{
		registry:      registry,
		codeGenerator: NewCodeGenerator(),
		cfg:           cfg,
	}
}

// CreateLink создает ссылку: генерирует системный короткий код и
// сохраняет запись. Пользовательский алиас, если задан, живет в том же
// пространстве уникальности, что и коды; занятый алиас отклоняет
// создание целиком (ErrAlreadyExists из реестра).
func (s *LinkService) CreateLink(ctx context.Context, originalURL, title, customAlias, ownerID string) (model.Link, error) {
	code, err := s.generateUniqueCode(ctx)
	if err != nil {
		return model.Link{}, fmt.Errorf("failed to generate unique code: %w", err)
	}

	link := model.Link{
		ID:          uuid.New().String(),
		ShortCode:   string(code),
		CustomAlias: customAlias,
		OriginalURL: originalURL,
		Title:       title,
		OwnerID:     ownerID,
		CreatedAt:   time.Now(),
	}

	if err := s.registry.CreateLink(ctx, link); err != nil {
		return model.Link{}, fmt.Errorf("failed to create link: %w", err)
	}

	return link, nil
}

// generateUniqueCode генерирует код, проверяя его занятость в реестре
func (s *LinkService) generateUniqueCode(ctx context.Context) (model.Code, error) {
	for attempt := 0; attempt < s.cfg.Retry.MaxAttempts; attempt++ {
		code := s.codeGenerator.GenerateCode()
		if s.registry.IsCodeAvailable(ctx, code) {
			return code, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique code after %d attempts: %w", s.cfg.Retry.MaxAttempts, ErrMaxRetriesExceeded)
}
