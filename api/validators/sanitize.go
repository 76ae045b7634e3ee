package validators

import (
	"net/http"
	"strings"

	pkgerrors "github.com/ecomvoyage/ecomvoyage-backend/pkg/errors"
)

const HeaderDeviceID = "X-Device-Id"

func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen > 0 && len(trimmed) > maxLen {
		return trimmed[:maxLen]
	}
	return trimmed
}

// DeviceID extracts the browsing-device identifier from the request header.
// History is device scoped, so a missing or oversized id is a validation error.
func DeviceID(r *http.Request) (string, error) {
	id := SanitizeString(r.Header.Get(HeaderDeviceID), 128)
	if id == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "device id header required").WithDetails(map[string]any{"header": HeaderDeviceID})
	}
	return id, nil
}
