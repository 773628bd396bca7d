package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	// Shape of config.yaml as koanf sees it before env overrides.
	existing := map[string]any{
		"auth": map[string]any{
			"refreshWindow": "5m",
			"cookieSecure":  false,
		},
		"http": map[string]any{
			"allowedOrigins":     []any{},
			"maxRequestBodySize": "2M",
		},
		"postgres": map[string]any{
			"autoMigrate": true,
			"master": map[string]any{
				"userName": "postgres",
			},
		},
		"redis": map[string]any{
			"categoryTTL": "10m",
		},
		"qrcode": map[string]any{
			"baseUrl": "",
		},
	}

	tests := map[string]string{
		"AUTH_REFRESHWINDOW":       "auth.refreshWindow",
		"AUTH_COOKIESECURE":        "auth.cookieSecure",
		"HTTP_ALLOWEDORIGINS":      "http.allowedOrigins",
		"HTTP_MAXREQUESTBODYSIZE":  "http.maxRequestBodySize",
		"POSTGRES_AUTOMIGRATE":     "postgres.autoMigrate",
		"POSTGRES_MASTER_USERNAME": "postgres.master.userName",
		"REDIS_CATEGORYTTL":        "redis.categoryTTL",
		"QRCODE_BASEURL":           "qrcode.baseUrl",
		// Keys missing from the file are lower-cased segment by segment.
		"LISTING_MAXPAGESIZE": "listing.maxpagesize",
		"REDIS__ADDR":         "redis.addr",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}
