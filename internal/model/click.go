package model

import "time"

// Device classification values derived from the User-Agent header.
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
)

// ClickEvent представляет одно зафиксированное посещение короткой ссылки
type ClickEvent struct {
	ID         string    `json:"id,omitempty"`
	LinkID     string    `json:"url_id"`
	Timestamp  time.Time `json:"created_at"`
	City       string    `json:"city,omitempty"`
	Country    string    `json:"country,omitempty"`
	DeviceType string    `json:"device"`

	// Raw request context carried from the handler to the recorder
	// workers. Not persisted as-is; the workers derive city/country
	// and device type from these before the event is written.
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}
