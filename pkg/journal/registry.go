package journal

import (
	"slices"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/matzehuels/scifig/pkg/errors"
)

// Normalize converts a journal name or alias into its registry key: Unicode
// NFKC, case folded, trimmed, with runs of spaces, hyphens and underscores
// collapsed into one underscore.
//
//	journal.Normalize("Nature Communications") // "nature_communications"
//	journal.Normalize("nano-letters")          // "nano_letters"
func Normalize(name string) string {
	s := cases.Fold().String(norm.NFKC.String(strings.TrimSpace(name)))

	var b strings.Builder
	b.Grow(len(s))
	sep := false
	for _, r := range s {
		if r == ' ' || r == '-' || r == '_' {
			sep = true
			continue
		}
		if sep && b.Len() > 0 {
			b.WriteByte('_')
		}
		sep = false
		b.WriteRune(r)
	}
	return b.String()
}

// Registry maps normalized journal keys to specifications. Several keys may
// resolve to the same *Spec. A Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	specs map[string]*Spec
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]*Spec)}
}

// NewBuiltinRegistry returns a registry holding the built-in journals.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	registerBuiltins(r)
	return r
}

// RegisterAliases stores s under its normalized display name and under every
// alias. All keys resolve to the same returned pointer.
func (r *Registry) RegisterAliases(s Spec, aliases ...string) *Spec {
	p := &s
	r.mu.Lock()
	defer r.mu.Unlock()
	r.specs[Normalize(s.Name)] = p
	for _, a := range aliases {
		r.specs[Normalize(a)] = p
	}
	return p
}

// Register inserts or overwrites the entry at key. The spec is also reachable
// under its normalized display name. Field ranges are not validated.
func (r *Registry) Register(key string, s Spec) *Spec {
	return r.RegisterAliases(s, key)
}

// Get looks up a journal by name or alias. Unknown names yield a
// JOURNAL_NOT_FOUND error listing every available journal.
func (r *Registry) Get(name string) (*Spec, error) {
	r.mu.RLock()
	s, ok := r.specs[Normalize(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.New(errors.ErrCodeJournalNotFound,
			"unknown journal: %q. Available: %s", name, strings.Join(r.List(), ", "))
	}
	return s, nil
}

// MustGet is like Get but panics on unknown names. It is intended for
// built-in keys known to exist.
func (r *Registry) MustGet(name string) *Spec {
	s, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Keys returns every registered key, sorted.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.specs))
	for k := range r.specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// List returns the deduplicated display names, sorted lexicographically.
func (r *Registry) List() []string {
	specs := r.Specs()
	names := make([]string, 0, len(specs))
	for _, s := range specs {
		names = append(names, s.Name)
	}
	return slices.Compact(names)
}

// Specs returns each registered specification once, sorted by name.
func (r *Registry) Specs() []*Spec {
	r.mu.RLock()
	seen := make(map[*Spec]bool, len(r.specs))
	out := make([]*Spec, 0, len(r.specs))
	for _, s := range r.specs {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ByCategory groups display names by category; each group is sorted.
func (r *Registry) ByCategory() map[Category][]string {
	result := make(map[Category][]string)
	for _, s := range r.Specs() {
		if !slices.Contains(result[s.Category], s.Name) {
			result[s.Category] = append(result[s.Category], s.Name)
		}
	}
	return result
}

// Default is the process-wide registry holding the built-in journals.
var Default = NewBuiltinRegistry()

// Get looks up name in the [Default] registry.
func Get(name string) (*Spec, error) { return Default.Get(name) }

// Register stores s under key in the [Default] registry.
func Register(key string, s Spec) *Spec { return Default.Register(key, s) }

// List returns the display names in the [Default] registry.
func List() []string { return Default.List() }

// ByCategory groups the [Default] registry by category.
func ByCategory() map[Category][]string { return Default.ByCategory() }
