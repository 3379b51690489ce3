package helpers

import "github.com/jackc/pgx/v5/pgtype"

// PgText converts a string pointer to a nullable TEXT parameter.
// If the pointer is nil, the parameter is SQL NULL.
func PgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// TextPtr converts a scanned nullable TEXT back into a string pointer
func TextPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}
