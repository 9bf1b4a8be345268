package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseChainID accepts a decimal chain id ("8453") or a 0x-prefixed hex one ("0x2105").
func ParseChainID(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	var (
		id  uint64
		err error
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		id, err = strconv.ParseUint(s[2:], 16, 64)
	} else {
		id, err = strconv.ParseUint(s, 10, 64)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid chain id %q: %w", s, err)
	}
	if id == 0 {
		return 0, fmt.Errorf("invalid chain id %q: must be positive", s)
	}
	return id, nil
}

// ParseChainIDList parses a comma-separated list of chain ids, skipping blanks and duplicates.
func ParseChainIDList(s string) ([]uint64, error) {
	var ids []uint64
	seen := make(map[uint64]struct{})
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		id, err := ParseChainID(part)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}
