package forward

import (
	"log/slog"
	"reflect"

	"github.com/hasbyte1/go-metaforward/lineage"
	"github.com/hasbyte1/go-metaforward/proxy"
)

// Config holds the settings of a forwarding container.
type Config struct {
	// Logger receives fallback warnings. Defaults to slog.Default().
	Logger *slog.Logger

	// Resolver computes common types for AutoDetect and result lists.
	// Defaults to lineage.Default.
	Resolver *lineage.Resolver

	// Family is the family the container belongs to. Defaults to the root
	// family of the container kind.
	Family *proxy.Family

	// Target specialises the family for a type. Nil keeps the family's own
	// target.
	Target reflect.Type

	// AutoDetect specialises the family for the common type of the elements.
	AutoDetect bool

	// ImplicitFallback makes Forward fall back to a plain element lookup,
	// with a warning, for names missing from the dispatch table.
	ImplicitFallback bool
}

// DefaultConfig returns a [Config] populated with defaults.
func DefaultConfig() Config {
	return Config{
		Logger:   slog.Default(),
		Resolver: lineage.Default,
	}
}

// Option configures a container.
type Option func(*Config)

// As specialises the container for t.
func As(t reflect.Type) Option {
	return func(c *Config) { c.Target = t }
}

// AsType specialises the container for T.
func AsType[T any]() Option {
	return As(reflect.TypeFor[T]())
}

// AutoDetect specialises the container for the most specific type shared
// by its elements.
func AutoDetect() Option {
	return func(c *Config) { c.AutoDetect = true }
}

// InFamily places the container in f, typically a family declared with
// [proxy.Declare].
func InFamily(f *proxy.Family) Option {
	return func(c *Config) {
		if f != nil {
			c.Family = f
		}
	}
}

// WithLogger sets the logger used for warnings.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithResolver sets the common-type resolver.
func WithResolver(r *lineage.Resolver) Option {
	return func(c *Config) {
		if r != nil {
			c.Resolver = r
		}
	}
}

// WithImplicitFallback makes Forward resolve names missing from the dispatch
// table instead of failing with ErrNotForwarded.
func WithImplicitFallback() Option {
	return func(c *Config) { c.ImplicitFallback = true }
}

func newConfig(family *proxy.Family, opts []Option) *Config {
	cfg := DefaultConfig()
	cfg.Family = family
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// derived returns the settings inherited by result containers: everything
// but the family and the specialisation.
func (c *Config) derived() *Config {
	return &Config{
		Logger:           c.Logger,
		Resolver:         c.Resolver,
		Family:           root,
		ImplicitFallback: c.ImplicitFallback,
	}
}

// family resolves the family for items.
func (c *Config) family(items []any) (*proxy.Family, error) {
	t := c.Target
	if c.AutoDetect {
		t = c.Resolver.Common(items)
	}
	if t == nil {
		return c.Family, nil
	}
	return c.Family.Specialize(t)
}
