//go:build unit || e2e

package testutil

// Field returns a mutation that sets key to value in a request map. A nil
// value deletes the key, which is how required-field tests punch a hole in
// an otherwise valid payload.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
