package provider

import (
	"fmt"

	"chainregistry/internal/app/port"
	"chainregistry/internal/domain/entity"
)

// OverlaySource loads descriptor overlays from a directory.
type OverlaySource interface {
	LoadDir(dir string) ([]entity.ChainDescriptor, error)
}

// BuildRegistry seeds a registry with builtins, applies every overlay found in
// overlayDir on top (an overlay with a known id replaces the built-in) and
// validates the resulting set.
func BuildRegistry(logger port.Logger, builtins []entity.ChainDescriptor, overlays OverlaySource, overlayDir string) (*ChainRegistry, error) {
	reg, err := NewChainRegistry(logger, builtins...)
	if err != nil {
		return nil, fmt.Errorf("failed to register built-in chains: %w", err)
	}

	if overlayDir != "" && overlays != nil {
		chains, err := overlays.LoadDir(overlayDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load overlays: %w", err)
		}
		seen := make(map[uint64]bool, len(chains))
		for _, c := range chains {
			if seen[c.ID] {
				logger.Warn("Chain declared by more than one overlay, the last one wins", "chain_id", c.ID, "name", c.Name)
			}
			seen[c.ID] = true
			if err := reg.Override(c); err != nil {
				return nil, fmt.Errorf("failed to apply overlay for chain %d: %w", c.ID, err)
			}
		}
	}

	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("chain registry failed validation: %w", err)
	}
	logger.Info("Chain registry ready", "chains", reg.Len(), "builtins", len(builtins))
	return reg, nil
}
