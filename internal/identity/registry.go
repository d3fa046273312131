package identity

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
)

var (
	// ErrUnknownIdentity indicates the requested identity does not exist.
	ErrUnknownIdentity = errors.New("unknown identity")

	// ErrDuplicateIdentity indicates an identity with that id already exists.
	ErrDuplicateIdentity = errors.New("identity already exists")

	// ErrInvalidID indicates the identity id is empty.
	ErrInvalidID = errors.New("invalid identity id")
)

// Registry holds all registered identities keyed by id.
type Registry struct {
	identities map[string]Identity
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{identities: map[string]Identity{}}
}

// Load reads the registry from path. On first run (file missing) an
// empty registry is written to path and returned.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		reg := NewRegistry()
		if err := reg.Save(path); err != nil {
			return nil, fmt.Errorf("creating identity registry: %w", err)
		}
		return reg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading identity registry: %w", err)
	}

	reg := NewRegistry()
	if err := toml.Unmarshal(data, &reg.identities); err != nil {
		return nil, fmt.Errorf("parsing identity registry %s: %w", path, err)
	}
	return reg, nil
}

// Save writes the registry to path as a whole-file rewrite.
func (r *Registry) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating registry directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing identity registry: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(r.identities); err != nil {
		return fmt.Errorf("encoding identity registry: %w", err)
	}
	return nil
}

// Exists reports whether an identity with the given id is registered.
func (r *Registry) Exists(id string) bool {
	_, ok := r.identities[id]
	return ok
}

// Add registers a new identity. Returns ErrDuplicateIdentity if the id
// is taken.
func (r *Registry) Add(ident Identity) error {
	if ident.ID == "" {
		return ErrInvalidID
	}
	if r.Exists(ident.ID) {
		return fmt.Errorf("%w: %s", ErrDuplicateIdentity, ident.ID)
	}
	r.identities[ident.ID] = ident
	return nil
}

// Get returns the identity with the given id.
func (r *Registry) Get(id string) (Identity, error) {
	ident, ok := r.identities[id]
	if !ok {
		return Identity{}, fmt.Errorf("%w: %s", ErrUnknownIdentity, id)
	}
	return ident, nil
}

// Remove unregisters the identity with the given id.
func (r *Registry) Remove(id string) error {
	if !r.Exists(id) {
		return fmt.Errorf("%w: %s", ErrUnknownIdentity, id)
	}
	delete(r.identities, id)
	return nil
}

// List returns all identities sorted by id.
func (r *Registry) List() []Identity {
	out := make([]Identity, 0, len(r.identities))
	for _, ident := range r.identities {
		out = append(out, ident)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out
}
