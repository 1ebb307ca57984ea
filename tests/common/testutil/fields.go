//go:build unit || e2e

package testutil

// Field returns a mutation that sets key in a request map, or removes the
// key entirely when value is nil.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
