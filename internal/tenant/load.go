package tenant

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported tenant file format")

// contentFile is the on-disk layout of a tenants file:
//
//	tenants:
//	  - id: acme
//	    name: ACME CV
//	    experiences: [...]
type contentFile struct {
	Tenants []Tenant `json:"tenants" yaml:"tenants"`
}

// Load reads tenants from a YAML (.yaml, .yml) or JSON (.json) file.
func Load(path string) ([]Tenant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading tenants file: %w", err)
	}

	var content contentFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &content)
	case ".json":
		err = sonic.Unmarshal(data, &content)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing tenants file %s: %w", path, err)
	}
	return content.Tenants, nil
}

// Open builds the process-wide store: the built-in default tenant plus
// whatever path provides. A tenant in the file with the built-in id
// replaces the built-in one. An empty path serves only the built-in tenant.
func Open(path, defaultID string) (*Store, error) {
	var loaded []Tenant
	if path != "" {
		var err error
		if loaded, err = Load(path); err != nil {
			return nil, err
		}
	}

	builtin := Default()
	tenants := make([]Tenant, 0, len(loaded)+1)
	overridden := false
	for _, t := range loaded {
		if t.ID == builtin.ID {
			overridden = true
		}
		tenants = append(tenants, t)
	}
	if !overridden {
		tenants = append([]Tenant{builtin}, tenants...)
	}
	return NewStore(defaultID, tenants...)
}
