package sources

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Registry manages available source adapters.
// It provides lookup by name and auto-detection by file extension and header.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]Source
}

// NewRegistry creates a new empty source registry.
func NewRegistry() *Registry {
	return &Registry{
		sources: make(map[string]Source),
	}
}

// Register adds a source adapter to the registry.
// If a source with the same name already exists, it will be replaced.
func (r *Registry) Register(s Source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[s.Name()] = s
}

// Get retrieves a source adapter by name.
func (r *Registry) Get(name string) (Source, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sources[strings.ToLower(name)]
	return s, ok
}

// List returns all registered source adapters sorted by name.
func (r *Registry) List() []Source {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Source, 0, len(r.sources))
	for _, s := range r.sources {
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})

	return result
}

// Names returns the names of all registered sources sorted alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DetectSource attempts to auto-detect the appropriate source for a path.
// Sources supporting the path's extension are tried first; when none does,
// every source is tried. Ties are broken by name so detection is stable.
func (r *Registry) DetectSource(path string) (Source, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ext := strings.ToLower(filepath.Ext(path))

	var candidates []Source
	for _, s := range r.sources {
		for _, supportedExt := range s.SupportedExtensions() {
			if strings.ToLower(supportedExt) == ext {
				candidates = append(candidates, s)
				break
			}
		}
	}

	if len(candidates) == 0 {
		for _, s := range r.sources {
			candidates = append(candidates, s)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Name() < candidates[j].Name()
	})

	var bestSource Source
	var bestConfidence int

	for _, s := range candidates {
		confidence, err := s.Detect(path)
		if err != nil {
			if IsNotFound(err) {
				return nil, err
			}
			continue
		}
		if confidence > bestConfidence {
			bestConfidence = confidence
			bestSource = s
		}
	}

	if bestSource == nil {
		return nil, &ErrSourceNotFound{Path: path}
	}

	return bestSource, nil
}

// Count returns the number of registered sources.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sources)
}

var defaultRegistry *Registry
var defaultRegistryOnce sync.Once

// DefaultRegistry returns the global registry holding the built-in sources.
// This function is safe for concurrent use.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// RegisterDefault registers a source with the default registry.
func RegisterDefault(s Source) {
	DefaultRegistry().Register(s)
}
