// Package manifest reads the hook definitions a remote hook source publishes
// and merges consumer-side overrides over them.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hookline/hookline/config"
	"github.com/hookline/hookline/errors"
)

// FileName is the manifest a hook source carries at its root. It is a
// top-level list of hook definitions.
const FileName = ".hookline-hooks.yaml"

// Manifest is the set of hooks a source provides, keyed by id.
type Manifest struct {
	source string
	hooks  map[string]*config.Hook
	order  []string
}

// Load reads and validates the manifest from a materialized source checkout.
func Load(dir, source string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeManifestMissing,
				fmt.Sprintf("hook source '%s' has no %s", source, FileName)).
				WithDetail("source", source)
		}
		return nil, errors.Wrap(err, errors.ErrCodeManifestInvalid, "read manifest")
	}

	return Parse(data, source)
}

// Parse parses manifest data: a top-level YAML list of hook definitions.
func Parse(data []byte, source string) (*Manifest, error) {
	var defs []config.Hook
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeManifestInvalid,
			fmt.Sprintf("parse manifest of source '%s'", source)).
			WithDetail("source", source)
	}

	m := &Manifest{
		source: source,
		hooks:  make(map[string]*config.Hook, len(defs)),
	}

	for i := range defs {
		def := &defs[i]
		if def.ID == "" {
			return nil, errors.New(errors.ErrCodeManifestInvalid,
				fmt.Sprintf("manifest of source '%s' contains a hook without an id", source)).
				WithDetail("source", source)
		}
		if def.Entry == "" {
			return nil, errors.New(errors.ErrCodeManifestInvalid,
				fmt.Sprintf("manifest hook '%s' in source '%s' has no entry", def.ID, source)).
				WithDetail("source", source).
				WithDetail("hook", def.ID)
		}
		if _, dup := m.hooks[def.ID]; dup {
			return nil, errors.HookDuplicate(source, def.ID)
		}
		m.hooks[def.ID] = def
		m.order = append(m.order, def.ID)
	}

	return m, nil
}

// IDs returns the hook ids in manifest order.
func (m *Manifest) IDs() []string {
	return m.order
}

// Lookup returns the definition for a hook id.
func (m *Manifest) Lookup(id string) (*config.Hook, error) {
	def, ok := m.hooks[id]
	if !ok {
		return nil, errors.HookNotFound(m.source, id)
	}
	return def, nil
}

// Resolve merges a consumer config entry over the manifest definition for
// the same hook id. Fields the consumer sets win; everything else comes from
// the definition.
func (m *Manifest) Resolve(use *config.Hook) (*config.Hook, error) {
	def, err := m.Lookup(use.ID)
	if err != nil {
		return nil, err
	}
	return merge(def, use)
}
