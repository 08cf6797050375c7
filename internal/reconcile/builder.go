package reconcile

import "time"

// CountryInference guesses an ISO2 code from a fighter's name. It returns ""
// when it has no opinion.
type CountryInference interface {
	InferCountry(name string) string
}

// Builder turns raw fight payloads into canonical fights. It holds only
// read-only collaborators and is safe for concurrent use.
type Builder struct {
	assets     *AssetIndex
	flags      *FlagResolver
	countries  CountryInference
	odds       OddsLookup
	heuristics Heuristics
	aliases    map[Field]aliasList
	now        func() time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithAssetIndex sets the bundled image index.
func WithAssetIndex(index *AssetIndex) Option {
	return func(b *Builder) { b.assets = index }
}

// WithFlagResolver sets the flag resolver.
func WithFlagResolver(resolver *FlagResolver) Option {
	return func(b *Builder) {
		if resolver != nil {
			b.flags = resolver
		}
	}
}

// WithCountryInference sets the name-based country fallback.
func WithCountryInference(inference CountryInference) Option {
	return func(b *Builder) { b.countries = inference }
}

// WithOddsLookup sets the static odds used when no feed odds are present.
func WithOddsLookup(lookup OddsLookup) Option {
	return func(b *Builder) { b.odds = lookup }
}

// WithHeuristics replaces the badge and metric thresholds.
func WithHeuristics(h Heuristics) Option {
	return func(b *Builder) { b.heuristics = h }
}

// WithFieldAliases appends extra merged-source field names to a field's alias
// list. They are consulted after the built-in names.
func WithFieldAliases(field Field, keys ...string) Option {
	return func(b *Builder) {
		b.aliases[field] = chain(b.aliases[field], all(keys...))
	}
}

// WithClock sets the clock used for ages derived from birth dates.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// NewBuilder returns a Builder with the bundled asset index, the default flag
// code and the stock heuristics unless overridden.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		flags:      NewFlagResolver(DefaultFlagCode),
		heuristics: DefaultHeuristics(),
		aliases:    defaultAliases(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.assets == nil {
		b.assets = NewAssetIndex()
	}
	return b
}

// Heuristics returns the thresholds in use.
func (b *Builder) Heuristics() Heuristics {
	return b.heuristics
}

// Odds returns the static odds lookup, or nil.
func (b *Builder) Odds() OddsLookup {
	return b.odds
}
