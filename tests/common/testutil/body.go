//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// BodyMap turns a request DTO into its JSON object form so a test can break
// individual fields before sending it.
func BodyMap(t *testing.T, v any, edits ...func(map[string]any)) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, edit := range edits {
		edit(m)
	}
	return m
}

func Set(key string, value any) func(map[string]any) {
	return func(m map[string]any) { m[key] = value }
}

func Drop(key string) func(map[string]any) {
	return func(m map[string]any) { delete(m, key) }
}
