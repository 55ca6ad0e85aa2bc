package tagstr

import "sync/atomic"

// Chunks is a static chunk sequence: the literal text parts of a tagged
// call. Cooked holds the escape-processed text, Raw the same chunks
// with escape sequences preserved. Both slices always have the same
// length, which is one more than the number of dynamic values the
// template interleaves.
//
// Sequences minted by Lit carry an identity handle and are eligible for
// static-state caching; two Lit calls with identical text are distinct
// identities, matching per-call-site template semantics. Sequences
// assembled by hand via NewChunks carry no identity and bypass the
// cache on every call.
type Chunks struct {
	// Cooked is the escape-processed chunk text.
	Cooked []string
	// Raw is the chunk text with escape sequences preserved.
	Raw []string

	// id is the identity handle; zero means not cache eligible.
	id uint64
}

// chunkSeq mints identity handles for Lit. Handle 0 is reserved for
// ineligible sequences.
var chunkSeq atomic.Uint64

// Lit builds a chunk sequence from raw (escape-preserved) chunk text,
// deriving the cooked counterpart with the backtick-literal escape
// semantics. The result carries a fresh identity handle, so static
// state computed for it is cached. Declare templates once (typically in
// a package-level var) and reuse them to benefit from the cache:
//
//	var query = tagstr.Lit("SELECT * FROM users WHERE id = ", "")
func Lit(raw ...string) *Chunks {
	if len(raw) == 0 {
		raw = []string{""}
	}
	cooked := make([]string, len(raw))
	for i, chunk := range raw {
		cooked[i] = cook(chunk)
	}
	rawCopy := make([]string, len(raw))
	copy(rawCopy, raw)
	return &Chunks{
		Cooked: cooked,
		Raw:    rawCopy,
		id:     chunkSeq.Add(1),
	}
}

// NewChunks builds a chunk sequence from pre-split cooked and raw text.
// The two slices must have equal, nonzero length. The result carries no
// identity handle: tags recompute static state for it on every call.
func NewChunks(cooked, raw []string) (*Chunks, error) {
	if len(cooked) != len(raw) {
		return nil, NewLengthMismatchError(len(cooked), len(raw))
	}
	if len(cooked) == 0 {
		return nil, NewInvalidInputError(ErrMsgEmptyChunks)
	}
	return &Chunks{Cooked: cooked, Raw: raw}, nil
}

// Len returns the number of chunks.
func (c *Chunks) Len() int {
	return len(c.Cooked)
}

// ValueCount returns the number of dynamic values a call with this
// sequence must supply.
func (c *Chunks) ValueCount() int {
	return len(c.Cooked) - 1
}

// CacheEligible reports whether static state computed for this sequence
// is cached by identity.
func (c *Chunks) CacheEligible() bool {
	return c.id != 0
}

// validateShape checks the tagged-call shape before any user code runs.
func validateShape(chunks *Chunks, valueCount int) error {
	if chunks == nil {
		return NewInvalidInputError(ErrMsgNilChunks)
	}
	if len(chunks.Cooked) != len(chunks.Raw) {
		return NewLengthMismatchError(len(chunks.Cooked), len(chunks.Raw))
	}
	if len(chunks.Cooked) == 0 {
		return NewInvalidInputError(ErrMsgEmptyChunks)
	}
	if valueCount != len(chunks.Cooked)-1 {
		return NewValueCountError(len(chunks.Cooked)-1, valueCount)
	}
	return nil
}
