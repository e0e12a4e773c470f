package observability

import (
	"testing"
	"time"
)

type countingAudit struct {
	starts, completes int
	lastIssues        int
}

func (c *countingAudit) OnAuditStart(string, string) { c.starts++ }
func (c *countingAudit) OnAuditComplete(_, _ string, issues int, _ time.Duration) {
	c.completes++
	c.lastIssues = issues
}

func TestSetAuditHooks(t *testing.T) {
	t.Cleanup(Reset)

	h := &countingAudit{}
	SetAuditHooks(h)
	Audit().OnAuditStart("code", "Nature")
	Audit().OnAuditComplete("code", "Nature", 3, time.Millisecond)

	if h.starts != 1 || h.completes != 1 || h.lastIssues != 3 {
		t.Errorf("hooks = %+v", h)
	}

	SetAuditHooks(nil)
	if Audit() != AuditHooks(h) {
		t.Error("nil hooks must not replace the registered ones")
	}

	Reset()
	if _, ok := Audit().(NoopAuditHooks); !ok {
		t.Errorf("Reset left %T", Audit())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Reset left %T", Cache())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("Reset left %T", HTTP())
	}
}
