// pkg/registry/registry.go
package registry

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrNoAlias indicates the registry has no name for the query on a backend
var ErrNoAlias = errors.New("no alias")

// Entry is one table of the aliases file
type Entry struct {
	Name     string            // query the entry is keyed by
	Backends map[string]string // backend -> backend-specific package name
}

// Registry maps a query to backend-specific package names, loaded from a
// TOML file of the form:
//
//	[code]
//	flatpak = "com.visualstudio.code"
//	snap = "code"
type Registry struct {
	path    string
	entries map[string]*Entry
}

// Open reads the aliases file at path. A missing file or an empty path
// yields an empty registry.
func Open(path string) (*Registry, error) {
	r := &Registry{
		path:    path,
		entries: make(map[string]*Entry),
	}
	if path == "" {
		return r, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, fmt.Errorf("registry: reading %s: %w", path, err)
	}

	var raw map[string]map[string]string
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("registry: failed to parse '%s': %w", path, err)
	}

	for name, backends := range raw {
		r.entries[name] = &Entry{Name: name, Backends: backends}
	}
	return r, nil
}

// Load returns the entry for name
func (r *Registry) Load(name string) (*Entry, error) {
	entry, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("registry: package '%s' not found: %w", name, ErrNoAlias)
	}
	return entry, nil
}

// Resolve takes a query and a backend and returns the backend-specific name.
// e.g. Resolve("code", "flatpak") -> "com.visualstudio.code"
func (r *Registry) Resolve(name string, backend string) (string, error) {
	entry, err := r.Load(name)
	if err != nil {
		return "", err
	}

	pkgName, ok := entry.Backends[backend]
	if !ok || pkgName == "" {
		return "", fmt.Errorf("registry: package '%s' has no entry for backend '%s': %w", name, backend, ErrNoAlias)
	}

	return pkgName, nil
}

// Len returns the number of entries
func (r *Registry) Len() int {
	return len(r.entries)
}

// Path returns the file the registry was read from
func (r *Registry) Path() string {
	return r.path
}
