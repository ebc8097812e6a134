package quirks

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTableYAML = `
devices:
  - vendor: "0x001f11"
    model: "0x00002a"
    timeout: 500ms
    retry_limit: 5
    backoff:
      initial: 100ms
      max: 1s
      multiplier: 3
  - vendor: "0x0003db"
    timeout: 1s
`

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, 200*time.Millisecond, p.Timeout)
	assert.Equal(t, 3, p.RetryLimit)
	assert.Equal(t, 50*time.Millisecond, p.Backoff.Initial)
	assert.Equal(t, 400*time.Millisecond, p.Backoff.Max)
	assert.Equal(t, 2.0, p.Backoff.Multiplier)
}

func TestTableLookup(t *testing.T) {
	table, err := ParseTable([]byte(testTableYAML))
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	// Exact vendor/model match.
	p := table.Lookup(0x001f11, 0x00002a)
	assert.Equal(t, 500*time.Millisecond, p.Timeout)
	assert.Equal(t, 5, p.RetryLimit)
	assert.Equal(t, 100*time.Millisecond, p.Backoff.Initial)
	assert.Equal(t, 1*time.Second, p.Backoff.Max)
	assert.Equal(t, 3.0, p.Backoff.Multiplier)

	// Vendor-wide entry: timeout overridden, the rest inherited.
	p = table.Lookup(0x0003db, 0x010060)
	assert.Equal(t, 1*time.Second, p.Timeout)
	assert.Equal(t, DefaultRetryLimit, p.RetryLimit)
	assert.Equal(t, DefaultBackoffInitial, p.Backoff.Initial)

	// Unknown device falls back to the default.
	assert.Equal(t, DefaultPolicy(), table.Lookup(0x00130e, 0x000001))

	// Listed model does not leak to the vendor's other models.
	assert.Equal(t, DefaultPolicy(), table.Lookup(0x001f11, 0x00002b))
}

func TestTableLookupNil(t *testing.T) {
	var table *Table
	assert.Equal(t, DefaultPolicy(), table.Lookup(0x001f11, 0x00002a))
	assert.Equal(t, 0, table.Len())
}

func TestParseTableErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", `devices: [`},
		{"missing vendor", "devices:\n  - timeout: 1s\n"},
		{"bad vendor", "devices:\n  - vendor: \"0xzz\"\n"},
		{"bad model", "devices:\n  - vendor: \"0x001f11\"\n    model: \"later\"\n"},
		{"bad timeout", "devices:\n  - vendor: \"0x001f11\"\n    timeout: soon\n"},
		{"bad backoff", "devices:\n  - vendor: \"0x001f11\"\n    backoff:\n      initial: 10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTable([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quirks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testTableYAML), 0o644))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	_, err = LoadTable(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
