package model

import "time"

// Code is a short code or custom alias used to address a link.
type Code string

func (c Code) String() string {
	return string(c)
}

// Link представляет запись реестра: маппинг короткого кода на оригинальный URL
type Link struct {
	ID          string    `json:"id"`
	ShortCode   string    `json:"short_url"`
	CustomAlias string    `json:"custom_url,omitempty"`
	OriginalURL string    `json:"original_url"`
	Title       string    `json:"title,omitempty"`
	OwnerID     string    `json:"user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Matches reports whether code addresses the link via either identifier.
func (l Link) Matches(code Code) bool {
	s := string(code)
	return l.ShortCode == s || (l.CustomAlias != "" && l.CustomAlias == s)
}
