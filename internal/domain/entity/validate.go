package entity

import (
	"errors"
	"fmt"
	"net/url"
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrInvalidDescriptor wraps every field-level validation failure.
	ErrInvalidDescriptor = errors.New("invalid chain descriptor")
	// ErrDuplicateChain is returned when two descriptors share an id or network slug.
	ErrDuplicateChain = errors.New("duplicate chain")
	// ErrChainNotFound is returned by lookups for unknown chains.
	ErrChainNotFound = errors.New("chain not found")
	// ErrChainIDMismatch is reported when an RPC endpoint serves a different chain.
	ErrChainIDMismatch = errors.New("chain id mismatch")
)

// Validate checks field presence and well-formedness of a single descriptor.
// All problems are reported together.
func (c ChainDescriptor) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.ID == 0 {
		fail("chain id must be a positive integer")
	}
	if c.Name == "" {
		fail("name is required")
	}
	if c.Slug() == "" {
		fail("network slug is empty")
	}
	if c.NativeCurrency.Name == "" {
		fail("native currency name is required")
	}
	if c.NativeCurrency.Symbol == "" {
		fail("native currency symbol is required")
	}

	def, ok := c.RPCURLs[DefaultKey]
	if !ok || len(def.HTTP) == 0 {
		fail("rpcUrls.default.http must contain at least one URL")
	}
	for _, key := range sortedKeys(c.RPCURLs) {
		ep := c.RPCURLs[key]
		for _, u := range ep.HTTP {
			if err := checkURL(u, "http", "https"); err != nil {
				fail("rpcUrls.%s.http: %w", key, err)
			}
		}
		for _, u := range ep.WebSocket {
			if err := checkURL(u, "ws", "wss"); err != nil {
				fail("rpcUrls.%s.webSocket: %w", key, err)
			}
		}
	}

	if len(c.BlockExplorers) > 0 {
		if _, ok := c.BlockExplorers[DefaultKey]; !ok {
			fail("blockExplorers must declare a default entry")
		}
		for _, key := range sortedKeys(c.BlockExplorers) {
			be := c.BlockExplorers[key]
			if be.Name == "" {
				fail("blockExplorers.%s: name is required", key)
			}
			if err := checkURL(be.URL, "http", "https"); err != nil {
				fail("blockExplorers.%s.url: %w", key, err)
			}
			if be.APIURL != "" {
				if err := checkURL(be.APIURL, "http", "https"); err != nil {
					fail("blockExplorers.%s.apiUrl: %w", key, err)
				}
			}
		}
	}

	for _, name := range sortedKeys(c.Contracts) {
		d := c.Contracts[name]
		if d.Address == "" && len(d.Sources) == 0 {
			fail("contracts.%s: address or sources required", name)
		}
		if d.Address != "" && !common.IsHexAddress(d.Address) {
			fail("contracts.%s: %q is not a hex address", name, d.Address)
		}
		for sid, sc := range d.Sources {
			if sid == 0 {
				fail("contracts.%s: source chain id must be positive", name)
			}
			if !common.IsHexAddress(sc.Address) {
				fail("contracts.%s.sources[%d]: %q is not a hex address", name, sid, sc.Address)
			}
		}
	}

	if c.SourceID != nil {
		if *c.SourceID == 0 {
			fail("sourceId must be positive when set")
		} else if *c.SourceID == c.ID {
			fail("sourceId must differ from the chain id")
		}
	}
	if c.BlockTime != nil && *c.BlockTime == 0 {
		fail("blockTime must be positive when set")
	}
	if c.Fees != nil && c.Fees.BaseFeeMultiplier != nil && *c.Fees.BaseFeeMultiplier < 1 {
		fail("fees.baseFeeMultiplier must be >= 1")
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w %d (%s): %w", ErrInvalidDescriptor, c.ID, c.Name, errors.Join(errs...))
}

// ValidateSet checks a whole descriptor set: every descriptor is valid, chain
// ids are unique and network slugs are unique.
func ValidateSet(chains []ChainDescriptor) error {
	var errs []error
	byID := make(map[uint64]string, len(chains))
	bySlug := make(map[string]uint64, len(chains))

	for _, c := range chains {
		if err := c.Validate(); err != nil {
			errs = append(errs, err)
		}
		if c.ID != 0 {
			if prev, dup := byID[c.ID]; dup {
				errs = append(errs, fmt.Errorf("%w: id %d used by %q and %q", ErrDuplicateChain, c.ID, prev, c.Name))
			} else {
				byID[c.ID] = c.Name
			}
		}
		if slug := c.Slug(); slug != "" {
			if prev, dup := bySlug[slug]; dup {
				errs = append(errs, fmt.Errorf("%w: network %q used by chains %d and %d", ErrDuplicateChain, slug, prev, c.ID))
			} else {
				bySlug[slug] = c.ID
			}
		}
	}
	return errors.Join(errs...)
}

func checkURL(raw string, schemes ...string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%q: %w", raw, err)
	}
	if u.Host == "" {
		return fmt.Errorf("%q: missing host", raw)
	}
	for _, s := range schemes {
		if u.Scheme == s {
			return nil
		}
	}
	return fmt.Errorf("%q: scheme must be one of %v", raw, schemes)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
