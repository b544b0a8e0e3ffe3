package dashboard

import "strings"

// hasText - readiness: ít nhất một field khác rỗng sau khi trim
func hasText(fields ...*string) bool {
	for _, f := range fields {
		if f != nil && strings.TrimSpace(*f) != "" {
			return true
		}
	}
	return false
}

// pick returns patch when it was provided, otherwise keeps current.
func pick(current, patch *string) *string {
	if patch != nil {
		return patch
	}
	return current
}
