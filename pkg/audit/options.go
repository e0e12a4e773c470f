package audit

import "github.com/matzehuels/scifig/pkg/observability"

type config struct {
	strict bool
	hooks  observability.AuditHooks
}

// Option configures an auditor.
type Option func(*config)

// Strict treats warnings as blocking in [FigureAuditor.Blocking] and
// [CodeAuditor.Blocking].
func Strict() Option { return func(c *config) { c.strict = true } }

// WithHooks sends audit events to h instead of the globally registered
// [observability.Audit] hooks.
func WithHooks(h observability.AuditHooks) Option { return func(c *config) { c.hooks = h } }

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.hooks == nil {
		c.hooks = observability.Audit()
	}
	return c
}
