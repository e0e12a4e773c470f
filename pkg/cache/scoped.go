package cache

// ScopedKeyer prefixes every key of an inner Keyer, giving a component its
// own namespace in a shared backend.
//
//	// the HTTP API and the CLI may point at the same Redis
//	apiKeys := cache.NewScopedKeyer(nil, "api:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, defaulting to [DefaultKeyer] when nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) CodeAuditKey(spec, source string) string {
	return k.prefix + k.inner.CodeAuditKey(spec, source)
}

func (k *ScopedKeyer) FigureAuditKey(spec string, figure []byte) string {
	return k.prefix + k.inner.FigureAuditKey(spec, figure)
}
