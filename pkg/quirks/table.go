package quirks

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// yamlTable represents the YAML structure of a quirks file.
type yamlTable struct {
	Devices []yamlDevice `yaml:"devices"`
}

// yamlDevice is one override entry. Vendor is required; an entry without a
// model applies to every model of that vendor. Duration fields use the Go
// duration syntax ("200ms", "1s").
type yamlDevice struct {
	Vendor     string       `yaml:"vendor"`
	Model      *string      `yaml:"model"`
	Timeout    string       `yaml:"timeout"`
	RetryLimit int          `yaml:"retry_limit"`
	Backoff    *yamlBackoff `yaml:"backoff"`
}

type yamlBackoff struct {
	Initial    string  `yaml:"initial"`
	Max        string  `yaml:"max"`
	Multiplier float64 `yaml:"multiplier"`
}

// deviceID keys the override map. A vendor-wide entry uses modelWildcard.
type deviceID struct {
	vendor uint32
	model  uint32
}

const modelWildcard = 0xffffffff

// Table maps devices to policy overrides.
type Table struct {
	overrides map[deviceID]Policy
}

// ParseTable builds a table from a YAML document.
func ParseTable(data []byte) (*Table, error) {
	var y yamlTable
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, fmt.Errorf("quirks YAML parse error: %w", err)
	}

	t := &Table{overrides: make(map[deviceID]Policy, len(y.Devices))}
	for i, dev := range y.Devices {
		id, policy, err := dev.convert()
		if err != nil {
			return nil, fmt.Errorf("quirks entry %d: %w", i, err)
		}
		t.overrides[id] = policy
	}
	return t, nil
}

// LoadTable reads and parses a quirks file.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quirks file: %w", err)
	}
	return ParseTable(data)
}

// Lookup returns the effective policy for a device. An exact vendor/model
// entry wins over a vendor-wide entry; with neither, the default applies.
// Fields an entry leaves unset come from the default.
func (t *Table) Lookup(vendor, model uint32) Policy {
	if t != nil {
		if p, ok := t.overrides[deviceID{vendor, model}]; ok {
			return p.merged()
		}
		if p, ok := t.overrides[deviceID{vendor, modelWildcard}]; ok {
			return p.merged()
		}
	}
	return DefaultPolicy()
}

// Len returns the number of override entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.overrides)
}

func (d yamlDevice) convert() (deviceID, Policy, error) {
	if d.Vendor == "" {
		return deviceID{}, Policy{}, fmt.Errorf("missing vendor")
	}
	vendor, err := parseID(d.Vendor)
	if err != nil {
		return deviceID{}, Policy{}, fmt.Errorf("vendor: %w", err)
	}

	id := deviceID{vendor: vendor, model: modelWildcard}
	if d.Model != nil {
		model, err := parseID(*d.Model)
		if err != nil {
			return deviceID{}, Policy{}, fmt.Errorf("model: %w", err)
		}
		id.model = model
	}

	var policy Policy
	if policy.Timeout, err = parseDuration(d.Timeout); err != nil {
		return deviceID{}, Policy{}, fmt.Errorf("timeout: %w", err)
	}
	policy.RetryLimit = d.RetryLimit
	if d.Backoff != nil {
		if policy.Backoff.Initial, err = parseDuration(d.Backoff.Initial); err != nil {
			return deviceID{}, Policy{}, fmt.Errorf("backoff initial: %w", err)
		}
		if policy.Backoff.Max, err = parseDuration(d.Backoff.Max); err != nil {
			return deviceID{}, Policy{}, fmt.Errorf("backoff max: %w", err)
		}
		policy.Backoff.Multiplier = d.Backoff.Multiplier
	}
	return id, policy, nil
}

// parseID accepts decimal or 0x-prefixed hex, matching how vendor and model
// IDs are written in config ROM listings.
func parseID(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return uint32(v), nil
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return d, nil
}
