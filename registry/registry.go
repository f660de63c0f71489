package registry

import (
	skemareg "github.com/reoring/skemareg"
)

// View is the read-only surface of a repository. Structural mutation happens
// only through Registry.Register and Registry.Unregister.
type View interface {
	// Schemas returns a fresh snapshot in insertion order.
	Schemas() []skemareg.ObjectSchema
	// Schema returns the schema registered under tag.
	Schema(tag string) (skemareg.ObjectSchema, bool)
	// Tags returns the discriminator values in insertion order.
	Tags() []string
	// Len reports the number of stored schemas.
	Len() int
	// Union builds a discriminated union over the type field.
	Union() (skemareg.Schema, error)
	// Enum builds an enumeration of the discriminator values.
	Enum() (skemareg.EnumSchema, error)
}

var _ View = (*Repo)(nil)

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithGlobalFilters appends blacklist filters applied to every registration,
// evaluated before any call-local filters. They live as long as the Registry.
func WithGlobalFilters(filters ...Filter) Option {
	return func(g *Registry) { g.global = append(g.global, filters...) }
}

// Registry owns the original and llm repositories and the registration
// protocol that keeps them in step. Multiple Registry instances are fully
// independent; nothing is shared through package state.
type Registry struct {
	global   []Filter
	original *Repo
	llm      *Repo
}

// New constructs an empty Registry.
func New(opts ...Option) *Registry {
	g := &Registry{original: NewRepo(), llm: NewRepo()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RegisterOption adjusts a single Register call.
type RegisterOption func(*registerConfig)

type registerConfig struct {
	local   []Filter
	skipLLM bool
}

// WithLocalFilters appends blacklist filters evaluated after the registry's
// global filters for this registration only.
func WithLocalFilters(filters ...Filter) RegisterOption {
	return func(c *registerConfig) { c.local = append(c.local, filters...) }
}

// SkipLLM registers into the original repository only, leaving the llm view
// without an entry for this schema.
func SkipLLM() RegisterOption {
	return func(c *registerConfig) { c.skipLLM = true }
}

// Register validates the discriminator, stores s unmodified in the original
// repository and, unless skipped, stores a filtered and normalized derivative
// in the llm repository under the same tag. The discriminator check happens
// before any mutation: on failure neither repository changes.
func (g *Registry) Register(s skemareg.ObjectSchema, opts ...RegisterOption) error {
	var cfg registerConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if _, ok := skemareg.DiscriminatorValue(s, DiscriminatorField); !ok {
		return ErrMissingDiscriminator
	}
	if cfg.skipLLM {
		return g.original.Add(s)
	}
	filters := make([]Filter, 0, len(g.global)+len(cfg.local))
	filters = append(filters, g.global...)
	filters = append(filters, cfg.local...)
	derived, err := ApplyFilters(s, filters...)
	if err != nil {
		return err
	}
	if err := g.original.Add(s); err != nil {
		return err
	}
	return g.llm.Add(derived)
}

// Original returns the full-fidelity view.
func (g *Registry) Original() View { return g.original }

// LLM returns the filtered, normalized view.
func (g *Registry) LLM() View { return g.llm }

// Unregister removes tag from both repositories symmetrically and returns the
// schema the original repository held. It reports false when the tag was
// never registered.
func (g *Registry) Unregister(tag string) (skemareg.ObjectSchema, bool) {
	s, ok := g.original.remove(tag)
	g.llm.remove(tag)
	return s, ok
}
