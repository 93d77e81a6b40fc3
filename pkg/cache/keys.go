package cache

// Keyer generates cache keys.
type Keyer interface {
	// PreviewKey returns the key for a rendered preview of the given DOT
	// source.
	PreviewKey(dot string, opts PreviewKeyOpts) string
}

// PreviewKeyOpts are the render options that change the artifact bytes.
type PreviewKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`
}

// DefaultKeyer builds keys of the form "preview:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// PreviewKey implements Keyer.
func (DefaultKeyer) PreviewKey(dot string, opts PreviewKeyOpts) string {
	return hashKey("preview", Hash([]byte(dot)), opts)
}

// ScopedKeyer prefixes every key of an inner Keyer. The CLI scopes keys by
// version so renders from an older binary are not reused.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner uses
// DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// PreviewKey implements Keyer.
func (k *ScopedKeyer) PreviewKey(dot string, opts PreviewKeyOpts) string {
	return k.prefix + k.inner.PreviewKey(dot, opts)
}
