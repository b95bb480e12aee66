package wpstatic

import (
	"log"
	"os"
	"strings"
	"time"
)

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("wpstatic: required environment variable %s is not set", key)
	}
	return v
}

// dateLayouts cover the timestamp shapes the WordPress API reports:
// plain ISO without a zone, and RFC3339 when the site is configured with one.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// FormatDate renders an API timestamp as a long display date, e.g.
// "January 05, 2024". Unparseable input is returned verbatim.
func FormatDate(iso string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("January 02, 2006")
		}
	}
	return iso
}

// collapseWhitespace squeezes runs of whitespace into single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
