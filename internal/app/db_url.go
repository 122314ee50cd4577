package app

import (
	"net/url"
	"strings"
)

// dbNameFromURL pulls the database name out of a connection string for log
// context. Handles both postgres:// URLs and key=value DSNs.
func dbNameFromURL(raw string) string {
	raw = strings.TrimSpace(raw)

	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		if name := strings.Trim(u.Path, "/ "); name != "" {
			return name
		}
	}

	for _, pair := range strings.Fields(raw) {
		key, value, ok := strings.Cut(pair, "=")
		if ok && key == "dbname" {
			return strings.Trim(value, `"' `)
		}
	}

	return ""
}
