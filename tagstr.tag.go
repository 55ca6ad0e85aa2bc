package tagstr

import (
	"go.uber.org/zap"
)

// ComputeStaticFunc analyzes the literal chunk text of a template once
// per distinct chunk-sequence identity. It typically calls Trim and
// derives whatever per-template state the tag needs (parsed structure,
// escaping plans, compiled matchers).
type ComputeStaticFunc[T any] func(chunks *Chunks) (T, error)

// ComputeResultFunc folds the per-call dynamic values into the memoized
// static state. It runs on every invocation and receives the live chunk
// sequence as passed by the caller.
type ComputeResultFunc[O, T, R any] func(cfg O, state T, chunks *Chunks, values []any) (R, error)

// Tag is a template tag function with a memoized static half. Build
// one per tag; the zero configuration is the zero value of O until
// Configure binds another.
//
// A Tag is safe for concurrent use. The static half runs at most once
// per chunk-sequence identity, even under concurrent first use.
type Tag[O, T, R any] struct {
	computeStatic ComputeStaticFunc[T]
	computeResult ComputeResultFunc[O, T, R]
	config        O
	cache         *staticCache[T]
}

// tagOptions holds Build-time options.
type tagOptions struct {
	logger      *zap.Logger
	cacheConfig CacheConfig
}

// Option is a functional option for Build.
type Option func(*tagOptions)

// WithLogger sets the logger for cache instrumentation.
// Default: no logging.
func WithLogger(logger *zap.Logger) Option {
	return func(o *tagOptions) {
		o.logger = logger
	}
}

// WithCacheConfig sets the static cache configuration.
// Default: DefaultCacheConfig.
func WithCacheConfig(config CacheConfig) Option {
	return func(o *tagOptions) {
		o.cacheConfig = config
	}
}

// Build wraps a static-analysis function and a combining function into
// a tag. computeStatic runs once per distinct chunk-sequence identity
// and its outcome, success or failure, is memoized; computeResult runs
// on every Invoke.
func Build[O, T, R any](
	computeStatic ComputeStaticFunc[T],
	computeResult ComputeResultFunc[O, T, R],
	opts ...Option,
) (*Tag[O, T, R], error) {
	if computeStatic == nil {
		return nil, NewBuildError(ErrMsgNilComputeStatic)
	}
	if computeResult == nil {
		return nil, NewBuildError(ErrMsgNilComputeResult)
	}

	options := tagOptions{cacheConfig: DefaultCacheConfig()}
	for _, opt := range opts {
		opt(&options)
	}
	if err := options.cacheConfig.Validate(); err != nil {
		return nil, err
	}
	logger := options.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgTagBuilt, zap.Int(LogFieldEntries, options.cacheConfig.MaxEntries))

	return &Tag[O, T, R]{
		computeStatic: computeStatic,
		computeResult: computeResult,
		cache:         newStaticCache[T](options.cacheConfig, logger),
	}, nil
}

// MustBuild is like Build but panics on error.
func MustBuild[O, T, R any](
	computeStatic ComputeStaticFunc[T],
	computeResult ComputeResultFunc[O, T, R],
	opts ...Option,
) *Tag[O, T, R] {
	tag, err := Build(computeStatic, computeResult, opts...)
	if err != nil {
		panic(err)
	}
	return tag
}

// Configure returns an independent tag bound to cfg. The receiver is
// not modified, and tags produced by separate Configure calls do not
// see each other's configuration. All bound tags share one static
// cache, since configuration is not part of the cache key.
func (t *Tag[O, T, R]) Configure(cfg O) *Tag[O, T, R] {
	bound := *t
	bound.config = cfg
	return &bound
}

// Config returns the bound configuration (the zero value of O when
// Configure was never called).
func (t *Tag[O, T, R]) Config() O {
	return t.config
}

// Invoke runs the tag against a chunk sequence and its dynamic values.
// The call shape is validated eagerly: the cooked and raw sequences
// must have equal nonzero length and the value count must be exactly
// one less than the chunk count. Violations fail with an invalid-input
// error before any user code runs.
//
// Static state is looked up by chunk-sequence identity. A memoized
// failure is returned as-is without re-running computeStatic; a
// sequence without an identity handle bypasses the cache and
// recomputes every call. computeResult always runs and receives the
// chunk sequence as it is now, not as it was when the static state was
// cached.
func (t *Tag[O, T, R]) Invoke(chunks *Chunks, values ...any) (R, error) {
	var zero R
	if err := validateShape(chunks, len(values)); err != nil {
		return zero, err
	}
	state, err := t.staticState(chunks)
	if err != nil {
		return zero, err
	}
	return t.computeResult(t.config, state, chunks, values)
}

// staticState resolves the memoized static state for chunks.
func (t *Tag[O, T, R]) staticState(chunks *Chunks) (T, error) {
	if !chunks.CacheEligible() {
		t.cache.recordBypass()
		return t.computeStatic(chunks)
	}
	return t.cache.do(chunks.id, func() (T, error) {
		return t.computeStatic(chunks)
	})
}

// CacheStats returns a snapshot of the static cache counters. Bound
// tags report the shared cache.
func (t *Tag[O, T, R]) CacheStats() CacheStats {
	return t.cache.snapshot()
}

// Purge drops all memoized static state, including memoized failures.
func (t *Tag[O, T, R]) Purge() {
	t.cache.purge()
}
