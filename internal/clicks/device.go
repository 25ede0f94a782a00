package clicks

import (
	"github.com/avc-dev/redirector/internal/model"
	"github.com/mileusna/useragent"
)

// DeviceType classifies a User-Agent string as mobile, tablet or
// desktop. Absent or unrecognizable user agents count as desktop.
func DeviceType(ua string) string {
	if ua == "" {
		return model.DeviceDesktop
	}

	parsed := useragent.Parse(ua)
	switch {
	case parsed.Tablet:
		return model.DeviceTablet
	case parsed.Mobile:
		return model.DeviceMobile
	default:
		return model.DeviceDesktop
	}
}
