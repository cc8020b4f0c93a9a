package utils

// NullString maps "" to nil so the column is stored as NULL.
func NullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
