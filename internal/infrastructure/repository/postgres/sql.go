package postgres

import "database/sql"

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

func nullableString(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

func nullStringToString(value sql.NullString) string {
	if !value.Valid {
		return ""
	}

	return value.String
}
