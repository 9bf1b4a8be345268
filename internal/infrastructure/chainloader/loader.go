package chainloader

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"chainregistry/internal/app/port"
	"chainregistry/internal/domain/entity"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ChainFileLoader reads descriptor overlay files from disk.
type ChainFileLoader struct {
	logger port.Logger
}

// NewChainFileLoader creates a new ChainFileLoader.
func NewChainFileLoader(logger port.Logger) *ChainFileLoader {
	return &ChainFileLoader{logger: logger}
}

// IsSupported reports whether the file extension is one the loader decodes.
func IsSupported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// LoadFile decodes one file holding either a single descriptor or a list of them.
// Every descriptor is validated.
func (l *ChainFileLoader) LoadFile(path string) ([]entity.ChainDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain file %s: %w", path, err)
	}

	var chains []entity.ChainDescriptor
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		chains, err = decodeYAML(data)
	case ".json":
		chains, err = decodeJSON(data)
	default:
		return nil, fmt.Errorf("unsupported chain file extension: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode chain file %s: %w", path, err)
	}

	for _, c := range chains {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("chain file %s: %w", path, err)
		}
	}
	l.logger.Debug("Loaded chain file", "path", path, "count", len(chains))
	return chains, nil
}

// LoadDir loads every supported file of dir in lexical order. Other files are skipped.
func (l *ChainFileLoader) LoadDir(dir string) ([]entity.ChainDescriptor, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if !IsSupported(f.Name()) {
			l.logger.Debug("Skipping non-descriptor file", "file", f.Name(), "directory", dir)
			continue
		}
		names = append(names, f.Name())
	}
	sort.Strings(names)

	var all []entity.ChainDescriptor
	for _, name := range names {
		chains, err := l.LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		all = append(all, chains...)
	}

	if len(all) == 0 {
		l.logger.Info("No chain descriptors found in overlay directory", "directory", dir)
	} else {
		l.logger.Info("Chain overlay directory loaded", "directory", dir, "files", len(names), "chains", len(all))
	}
	return all, nil
}

// WriteFile writes descriptors to path as a YAML list.
func WriteFile(path string, chains []entity.ChainDescriptor) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(chains); err != nil {
		return fmt.Errorf("failed to encode chains: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode chains: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write chain file %s: %w", path, err)
	}
	return nil
}

func decodeYAML(data []byte) ([]entity.ChainDescriptor, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, nil
	}
	doc := root.Content[0]
	if doc.Kind == yaml.SequenceNode {
		var chains []entity.ChainDescriptor
		if err := doc.Decode(&chains); err != nil {
			return nil, err
		}
		return chains, nil
	}
	var single entity.ChainDescriptor
	if err := doc.Decode(&single); err != nil {
		return nil, err
	}
	return []entity.ChainDescriptor{single}, nil
}

func decodeJSON(data []byte) ([]entity.ChainDescriptor, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var chains []entity.ChainDescriptor
		if err := json.Unmarshal(trimmed, &chains); err != nil {
			return nil, err
		}
		return chains, nil
	}
	var single entity.ChainDescriptor
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, err
	}
	return []entity.ChainDescriptor{single}, nil
}
