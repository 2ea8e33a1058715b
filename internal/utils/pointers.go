package utils

func StringPtr(s string) *string {
	return &s
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NullableString maps an empty form value to SQL NULL.
func NullableString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
