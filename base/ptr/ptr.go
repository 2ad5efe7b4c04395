package ptr

// String returns a pointer to the input value, nil for the empty string
func String(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// Uint32 returns a pointer to the input value
func Uint32(value uint32) *uint32 {
	return &value
}

// Bool returns a pointer to the input value
func Bool(value bool) *bool {
	return &value
}

// Deref returns the pointed string or the empty string
func Deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
