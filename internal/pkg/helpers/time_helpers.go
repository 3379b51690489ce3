package helpers

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog/log"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// PgDate converts a YYYY-MM-DD string into a DATE parameter.
// An empty string becomes SQL NULL.
func PgDate(value string) (pgtype.Date, error) {
	if value == "" {
		return pgtype.Date{}, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return pgtype.Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}

// PgDatePtr is PgDate for optional fields
func PgDatePtr(value *string) (pgtype.Date, error) {
	if value == nil {
		return pgtype.Date{}, nil
	}
	return PgDate(*value)
}
