//go:build unit || e2e

package testutil

// Field sets key to value, or removes it when value is empty.
func Field(key, value string) func(m map[string]string) {
	return func(m map[string]string) {
		if value == "" {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
