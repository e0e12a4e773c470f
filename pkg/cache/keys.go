package cache

// Keyer derives cache keys for audit results.
//
// The spec argument is the fingerprint of the journal specification the
// audit runs against (see journal.Spec.Fingerprint), not its name, so a
// redefined journal never hits reports computed against its old values.
type Keyer interface {
	// CodeAuditKey identifies a code audit of source against spec.
	CodeAuditKey(spec, source string) string

	// FigureAuditKey identifies a figure audit of an encoded figure
	// description against spec.
	FigureAuditKey(spec string, figure []byte) string
}

// DefaultKeyer builds unscoped keys of the form "audit:<kind>:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the keyer used by the CLI.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) CodeAuditKey(spec, source string) string {
	return "audit:code:" + Hash([]byte(spec+"\x00"+source))
}

func (DefaultKeyer) FigureAuditKey(spec string, figure []byte) string {
	data := make([]byte, 0, len(spec)+1+len(figure))
	data = append(data, spec...)
	data = append(data, 0)
	data = append(data, figure...)
	return "audit:figure:" + Hash(data)
}
