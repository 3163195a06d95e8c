package coordinate

import (
	"context"
	"fmt"
	"os"
	"reflect"

	"github.com/latticeconf/coordinate/spi"
)

// ResolverAware is implemented by a Provider that needs to issue its own
// nested Resolve calls (for example to read a derived coordinate before
// answering its own Lookup). Builder.Build injects the resolver into
// every registered Provider implementing this interface after all
// collaborators are known but before the resolver is marked initialized,
// per spec.md §9's "provider back-reference" design note: a relation and
// lookup capability only, never ownership.
type ResolverAware interface {
	SetResolver(*Resolver)
}

// Discoverer locates the collaborators a Builder should register before
// freezing a Resolver. Concrete discoverers (environment scanning, a TOML
// manifest, a static test fixture) live in the providers subpackage;
// Discoverer lets Builder stay ignorant of how they are found.
type Discoverer interface {
	DiscoverProviders() ([]spi.Provider, error)
	DiscoverConverters() ([]spi.AnyConverter, error)
	DiscoverArbiters() ([]spi.Arbiter, error)
}

// Builder provides a fluent interface for assembling a Resolver, mirroring
// the teacher's config.Builder: accumulate options on the value, defer all
// fallibility to Build.
type Builder struct {
	providers    []spi.Provider
	converters   []spi.AnyConverter
	arbiters     []spi.Arbiter
	logger       Logger
	strict       bool
	coordsEnvVar string
	discoverer   Discoverer
	err          error
}

// NewBuilder returns a Builder with a discarding Logger and no
// collaborators registered.
func NewBuilder() *Builder {
	return &Builder{logger: NopLogger()}
}

// WithProvider registers a Provider. Providers are consulted in
// registration order by collect, which only matters for providers that
// return equally-specific, equally-authoritative values (the last
// resort, tie-breaking arbiters are the documented mechanism for that;
// registration order is not itself a tiebreaker).
func (b *Builder) WithProvider(p spi.Provider) *Builder {
	if p != nil {
		b.providers = append(b.providers, p)
	}
	return b
}

// WithConverter registers a typed Converter[T], adapting it to the
// registry's type-erased form.
func WithConverter[T any](b *Builder, c spi.Converter[T]) *Builder {
	if c != nil {
		b.converters = append(b.converters, spi.AsAnyConverter(c))
	}
	return b
}

// WithAnyConverter registers an already type-erased converter; use
// WithConverter for the common, typed case.
func (b *Builder) WithAnyConverter(c spi.AnyConverter) *Builder {
	if c != nil {
		b.converters = append(b.converters, c)
	}
	return b
}

// WithArbiter appends an Arbiter to the chain consulted, in order, when
// ranking leaves an unresolved tie.
func (b *Builder) WithArbiter(a spi.Arbiter) *Builder {
	if a != nil {
		b.arbiters = append(b.arbiters, a)
	}
	return b
}

// WithDiscoverer registers a Discoverer whose results Build merges in
// after the explicitly registered collaborators: discovered providers and
// arbiters are consulted after explicit ones, and a discovered converter
// for an already-registered TypeDescriptor is ignored.
func (b *Builder) WithDiscoverer(d Discoverer) *Builder {
	b.discoverer = d
	return b
}

// WithLogger overrides the default discarding Logger.
func (b *Builder) WithLogger(l Logger) *Builder {
	b.logger = l
	return b
}

// WithStrictMalformed makes Resolve, after logging every malformed
// candidate of its collection pass, abort with a MalformedValueError for
// the first one instead of discarding them.
func (b *Builder) WithStrictMalformed(strict bool) *Builder {
	b.strict = strict
	return b
}

// WithCoordinatesEnvVar names the environment variable Build reads, if
// set, as the default value of the bootstrap lookup of
// ConfigurationCoordinatesName; it is used only when no provider answers
// that lookup. An empty string (the default) disables this fallback and
// relies entirely on registered providers.
func (b *Builder) WithCoordinatesEnvVar(name string) *Builder {
	b.coordsEnvVar = name
	return b
}

// BootstrapOptions configures a Builder the way the teacher's LoadOptions
// configures a Load call: a plain value a caller can construct in one
// place (from flags, a parent process's own config, or just inline) rather
// than chaining Builder's fluent With* methods one at a time.
type BootstrapOptions struct {
	// Discoverer locates collaborators that Build registers after any added
	// explicitly through Builder.WithProvider/WithConverter/WithArbiter.
	Discoverer Discoverer

	// Logger receives malformed/ambiguous diagnostics. A nil Logger keeps
	// Builder's default discarding Logger.
	Logger Logger

	// StrictMalformed logs malformed candidates and then escalates the
	// first one to a MalformedValueError instead of discarding them. See
	// Resolver.handleMalformed/escalateMalformed.
	StrictMalformed bool

	// CoordinatesEnvVar names the environment variable whose value Build
	// uses as the default for ConfigurationCoordinatesName when no provider
	// answers it. Empty disables the fallback.
	CoordinatesEnvVar string
}

// DefaultBootstrapOptions returns the zero-friction default: no
// discoverer, a discarding logger, malformed values logged and dropped,
// and the conventional CONFIGURATION_COORDINATES environment variable as
// the configurationCoordinates bootstrap source, per spec.md §4.7.
func DefaultBootstrapOptions() BootstrapOptions {
	return BootstrapOptions{
		CoordinatesEnvVar: "CONFIGURATION_COORDINATES",
	}
}

// NewBuilderFromOptions returns a Builder pre-configured from opts. The
// result is still a fluent Builder: callers commonly follow this with
// their own WithProvider/WithConverter/WithArbiter calls before Build,
// exactly as the teacher's callers pass a LoadOptions value into
// LoadWithOptions and then layer further calls on the returned Config.
func NewBuilderFromOptions(opts BootstrapOptions) *Builder {
	b := NewBuilder()
	if opts.Discoverer != nil {
		b.WithDiscoverer(opts.Discoverer)
	}
	if !reflect.DeepEqual(opts.Logger, Logger{}) {
		b.WithLogger(opts.Logger)
	}
	b.WithStrictMalformed(opts.StrictMalformed)
	b.WithCoordinatesEnvVar(opts.CoordinatesEnvVar)
	return b
}

// Build freezes the registered collaborators into a Resolver and
// resolves the process-wide configuration coordinates exactly once
// (spec.md §4.7), against empty caller coordinates, before returning.
func (b *Builder) Build(ctx context.Context) (*Resolver, error) {
	if b.err != nil {
		return nil, b.err
	}

	providers := append([]spi.Provider(nil), b.providers...)
	converters := append([]spi.AnyConverter(nil), b.converters...)
	arbiters := append([]spi.Arbiter(nil), b.arbiters...)

	if b.discoverer != nil {
		dp, err := b.discoverer.DiscoverProviders()
		if err != nil {
			return nil, fmt.Errorf("coordinate: discover providers: %w", err)
		}
		providers = append(providers, dp...)

		dc, err := b.discoverer.DiscoverConverters()
		if err != nil {
			return nil, fmt.Errorf("coordinate: discover converters: %w", err)
		}
		converters = append(converters, dc...)

		da, err := b.discoverer.DiscoverArbiters()
		if err != nil {
			return nil, fmt.Errorf("coordinate: discover arbiters: %w", err)
		}
		arbiters = append(arbiters, da...)
	}

	r := &Resolver{
		providers:  providers,
		converters: spi.NewRegistry(converters...),
		arbiters:   arbiters,
		logger:     b.logger,
		strict:     b.strict,
	}

	// Inject the resolver back-reference (spec.md §9 "Provider
	// back-reference") before marking initialized, so a provider that
	// issues a nested Resolve from within Lookup sees a usable resolver.
	for _, p := range providers {
		if aware, ok := p.(ResolverAware); ok {
			aware.SetResolver(r)
		}
	}

	r.initialized = true

	coords, err := b.bootstrapCoordinates(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("coordinate: resolving configurationCoordinates: %w", err)
	}
	r.coordinates = coords

	return r, nil
}

// MustBuild is like Build but panics on error, for callers (typically
// cmd/coordctl) that treat a broken bootstrap as fatal.
func (b *Builder) MustBuild(ctx context.Context) *Resolver {
	r, err := b.Build(ctx)
	if err != nil {
		panic(fmt.Sprintf("coordinate: bootstrap failed: %v", err))
	}
	return r
}

// bootstrapCoordinates resolves ConfigurationCoordinatesName once against
// empty caller coordinates, per spec.md §4.7: the process's own
// coordinates are themselves just another named configuration value. If
// WithCoordinatesEnvVar named a set environment variable, its raw string
// is used as the default fed to the registered map-string-string
// converter, so a process can bootstrap coordinates without any provider
// at all.
func (b *Builder) bootstrapCoordinates(ctx context.Context, r *Resolver) (spi.Coordinates, error) {
	converter, ok := r.converters.Lookup(spi.TypeMapStringString)
	if !ok {
		// No converter registered for coordinates themselves; the process
		// runs with empty configuration coordinates rather than failing
		// bootstrap outright, since not every deployment partitions by
		// coordinates at all.
		return spi.Coordinates{}, nil
	}

	var defaultValue *string
	if b.coordsEnvVar != "" {
		if v, ok := os.LookupEnv(b.coordsEnvVar); ok {
			defaultValue = &v
		}
	}

	result, err := r.Resolve(ctx, spi.Coordinates{}, ConfigurationCoordinatesName, converter, defaultValue)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return spi.Coordinates{}, nil
	}
	coords, ok := result.(spi.Coordinates)
	if !ok {
		return nil, fmt.Errorf("configurationCoordinates converter returned %T, not spi.Coordinates", result)
	}
	return coords, nil
}
