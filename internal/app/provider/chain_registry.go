package provider

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"chainregistry/internal/app/port"
	"chainregistry/internal/domain/entity"
)

// ChainRegistry is a thread-safe in-memory index of chain descriptors by id
// and network slug. Descriptors go in and come out as clones.
type ChainRegistry struct {
	logger port.Logger

	mu     sync.RWMutex
	byID   map[uint64]entity.ChainDescriptor
	bySlug map[string]uint64
}

var _ port.ChainRegistry = (*ChainRegistry)(nil)

// NewChainRegistry creates a registry seeded with the given descriptors.
func NewChainRegistry(logger port.Logger, seed ...entity.ChainDescriptor) (*ChainRegistry, error) {
	r := &ChainRegistry{
		logger: logger,
		byID:   make(map[uint64]entity.ChainDescriptor, len(seed)),
		bySlug: make(map[string]uint64, len(seed)),
	}
	for _, c := range seed {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a new descriptor. Invalid descriptors and duplicate ids or
// network slugs are rejected.
func (r *ChainRegistry) Register(c entity.ChainDescriptor) error {
	if err := c.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, exists := r.byID[c.ID]; exists {
		return fmt.Errorf("%w: id %d already registered as %q", entity.ErrDuplicateChain, c.ID, prev.Name)
	}
	slug := c.Slug()
	if otherID, exists := r.bySlug[slug]; exists {
		return fmt.Errorf("%w: network %q already registered for chain %d", entity.ErrDuplicateChain, slug, otherID)
	}

	r.byID[c.ID] = c.Clone()
	r.bySlug[slug] = c.ID
	r.logger.Debug("Chain registered", "chain_id", c.ID, "network", slug)
	return nil
}

// Override registers c, replacing any descriptor with the same id.
// The network slug must not collide with a different chain.
func (r *ChainRegistry) Override(c entity.ChainDescriptor) error {
	if err := c.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	slug := c.Slug()
	if otherID, exists := r.bySlug[slug]; exists && otherID != c.ID {
		return fmt.Errorf("%w: network %q already registered for chain %d", entity.ErrDuplicateChain, slug, otherID)
	}
	if prev, exists := r.byID[c.ID]; exists {
		delete(r.bySlug, prev.Slug())
		r.logger.Info("Chain descriptor overridden", "chain_id", c.ID, "previous_name", prev.Name, "name", c.Name)
	}

	r.byID[c.ID] = c.Clone()
	r.bySlug[slug] = c.ID
	return nil
}

// Get returns the descriptor for chainID.
func (r *ChainRegistry) Get(chainID uint64) (entity.ChainDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[chainID]
	if !ok {
		return entity.ChainDescriptor{}, false
	}
	return c.Clone(), true
}

// MustGet is Get returning entity.ErrChainNotFound for unknown ids.
func (r *ChainRegistry) MustGet(chainID uint64) (entity.ChainDescriptor, error) {
	c, ok := r.Get(chainID)
	if !ok {
		return entity.ChainDescriptor{}, fmt.Errorf("%w: %d", entity.ErrChainNotFound, chainID)
	}
	return c, nil
}

// GetByNetwork looks a chain up by network slug, falling back to a
// case-insensitive match on the display name.
func (r *ChainRegistry) GetByNetwork(nameOrSlug string) (entity.ChainDescriptor, bool) {
	key := strings.ToLower(strings.TrimSpace(nameOrSlug))
	if key == "" {
		return entity.ChainDescriptor{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if id, ok := r.bySlug[key]; ok {
		return r.byID[id].Clone(), true
	}
	if id, ok := r.bySlug[entity.Slugify(key)]; ok {
		return r.byID[id].Clone(), true
	}
	// Display names are not unique; the lowest id wins.
	ids := make([]uint64, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if c := r.byID[id]; strings.EqualFold(c.Name, key) {
			return c.Clone(), true
		}
	}
	return entity.ChainDescriptor{}, false
}

// All returns every descriptor sorted by chain id.
func (r *ChainRegistry) All() []entity.ChainDescriptor {
	return r.Filter(entity.ChainFilter{})
}

// Filter returns the descriptors matching f, sorted by chain id.
func (r *ChainRegistry) Filter(f entity.ChainFilter) []entity.ChainDescriptor {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	r.mu.RLock()
	out := make([]entity.ChainDescriptor, 0, len(r.byID))
	for _, c := range r.byID {
		if f.Testnet != nil && c.IsTestnet() != *f.Testnet {
			continue
		}
		if query != "" && !matches(c, query) {
			continue
		}
		out = append(out, c.Clone())
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of registered chains.
func (r *ChainRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// Validate runs the set-level checks over the current contents.
func (r *ChainRegistry) Validate() error {
	return entity.ValidateSet(r.All())
}

func matches(c entity.ChainDescriptor, query string) bool {
	return strings.Contains(strings.ToLower(c.Name), query) ||
		strings.Contains(c.Slug(), query) ||
		strings.EqualFold(c.NativeCurrency.Symbol, query)
}
