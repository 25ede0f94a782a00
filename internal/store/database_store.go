package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/redirector/internal/config/db"
	"github.com/avc-dev/redirector/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DatabaseStore реализует реестр ссылок поверх PostgreSQL
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(database db.Database) *DatabaseStore {
	adapter, ok := database.(*db.DBAdapter)
	if !ok {
		panic("DatabaseStore requires DBAdapter")
	}

	return &DatabaseStore{
		pool: adapter.Pool,
	}
}

func scanLink(row pgx.Row) (model.Link, error) {
	var link model.Link
	var alias *string

	err := row.Scan(&link.ID, &link.ShortCode, &alias, &link.OriginalURL, &link.Title, &link.OwnerID, &link.CreatedAt)
	if err != nil {
		return model.Link{}, err
	}
	if alias != nil {
		link.CustomAlias = *alias
	}

	return link, nil
}

// FindByCodeOrAlias ищет ссылку по короткому коду ИЛИ алиасу одним запросом.
// Реестр гарантирует уникальность кода в объединенном пространстве, поэтому
// запрос не может вернуть больше одной строки.
func (ds *DatabaseStore) FindByCodeOrAlias(ctx context.Context, code model.Code) (model.Link, error) {
	query := `
		SELECT id, short_code, custom_alias, original_url, title, owner_id, created_at
		FROM links
		WHERE short_code = $1 OR custom_alias = $1
	`

	link, err := scanLink(ds.pool.QueryRow(ctx, query, string(code)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Link{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return model.Link{}, fmt.Errorf("failed to read from database: %w", err)
	}

	return link, nil
}

// CreateLink сохраняет ссылку. Проверка занятости кода и алиаса и вставка
// выполняются в одной транзакции.
func (ds *DatabaseStore) CreateLink(ctx context.Context, link model.Link) error {
	tx, err := ds.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var taken bool

	query := `
		SELECT EXISTS
		(SELECT 1 FROM links WHERE short_code = ANY($1) OR custom_alias = ANY($1))
	`

	codes := []string{link.ShortCode}
	if link.CustomAlias != "" {
		codes = append(codes, link.CustomAlias)
	}

	if err := tx.QueryRow(ctx, query, codes).Scan(&taken); err != nil {
		return fmt.Errorf("failed to check code availability: %w", err)
	}
	if taken {
		return fmt.Errorf("code %s: %w", link.ShortCode, ErrAlreadyExists)
	}

	var alias *string
	if link.CustomAlias != "" {
		alias = &link.CustomAlias
	}

	query = `
		INSERT INTO links (id, short_code, custom_alias, original_url, title, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = tx.Exec(ctx, query, link.ID, link.ShortCode, alias, link.OriginalURL, link.Title, link.OwnerID, link.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert link: %w", err)
	}

	return tx.Commit(ctx)
}

func (ds *DatabaseStore) GetLinkByID(ctx context.Context, id string) (model.Link, error) {
	query := `
		SELECT id, short_code, custom_alias, original_url, title, owner_id, created_at
		FROM links
		WHERE id = $1
	`

	link, err := scanLink(ds.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Link{}, fmt.Errorf("link %s: %w", id, ErrNotFound)
		}
		return model.Link{}, fmt.Errorf("failed to read from database: %w", err)
	}

	return link, nil
}

func (ds *DatabaseStore) ListLinksByOwner(ctx context.Context, ownerID string) ([]model.Link, error) {
	query := `
		SELECT id, short_code, custom_alias, original_url, title, owner_id, created_at
		FROM links
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := ds.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	var links []model.Link
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, link)
	}

	return links, rows.Err()
}

// DeleteLink удаляет ссылку; клики удаляются каскадом (FK)
func (ds *DatabaseStore) DeleteLink(ctx context.Context, id string) error {
	tag, err := ds.pool.Exec(ctx, `DELETE FROM links WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("link %s: %w", id, ErrNotFound)
	}

	return nil
}

func (ds *DatabaseStore) IsCodeAvailable(ctx context.Context, code model.Code) bool {
	var taken bool

	query := `
		SELECT EXISTS
		(SELECT 1 FROM links WHERE short_code = $1 OR custom_alias = $1)
	`

	if err := ds.pool.QueryRow(ctx, query, string(code)).Scan(&taken); err != nil {
		// При ошибке считаем код занятым: генератор попробует другой
		return false
	}

	return !taken
}

// AppendClick добавляет событие клика (append-only, без блокировок)
func (ds *DatabaseStore) AppendClick(ctx context.Context, event model.ClickEvent) error {
	query := `
		INSERT INTO clicks (link_id, city, country, device_type, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := ds.pool.Exec(ctx, query, event.LinkID, event.City, event.Country, event.DeviceType, event.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to insert click: %w", err)
	}

	return nil
}

func scanClicks(rows pgx.Rows) ([]model.ClickEvent, error) {
	defer rows.Close()

	var clicks []model.ClickEvent
	for rows.Next() {
		var event model.ClickEvent
		if err := rows.Scan(&event.ID, &event.LinkID, &event.City, &event.Country, &event.DeviceType, &event.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan click: %w", err)
		}
		clicks = append(clicks, event)
	}

	return clicks, rows.Err()
}

func (ds *DatabaseStore) ListClicksByLink(ctx context.Context, linkID string) ([]model.ClickEvent, error) {
	query := `
		SELECT id::text, link_id, city, country, device_type, created_at
		FROM clicks
		WHERE link_id = $1
		ORDER BY created_at DESC
	`

	rows, err := ds.pool.Query(ctx, query, linkID)
	if err != nil {
		return nil, fmt.Errorf("failed to query clicks: %w", err)
	}

	return scanClicks(rows)
}

func (ds *DatabaseStore) ListClicksByLinks(ctx context.Context, linkIDs []string) ([]model.ClickEvent, error) {
	query := `
		SELECT id::text, link_id, city, country, device_type, created_at
		FROM clicks
		WHERE link_id = ANY($1)
		ORDER BY created_at DESC
	`

	rows, err := ds.pool.Query(ctx, query, linkIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query clicks: %w", err)
	}

	return scanClicks(rows)
}

func (ds *DatabaseStore) Ping(ctx context.Context) error {
	return ds.pool.Ping(ctx)
}
