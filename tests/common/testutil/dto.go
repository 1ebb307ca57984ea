//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap round-trips v through JSON into a map and applies the given
// mutations, so tests can start from a valid request and break one field.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}
