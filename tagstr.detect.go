package tagstr

// LooseChunks is an unvalidated chunk sequence as received from a
// dynamic call site (an interpreter, a plugin boundary, a decoded
// payload). Elements are not yet known to be text; run StrictCheck or
// FromLoose before trusting them.
type LooseChunks struct {
	// Items are the escape-processed chunks.
	Items []any
	// Raw are the same chunks with escape sequences preserved.
	Raw []any
}

// QuickCheck reports whether first looks like the leading argument of a
// tagged call carrying argCount chunks: an ordered sequence of length
// argCount with a parallel raw sequence of equal length. Element types
// are not inspected; use StrictCheck for that.
func QuickCheck(first any, argCount int) bool {
	switch v := first.(type) {
	case *Chunks:
		return v != nil && len(v.Cooked) == argCount && len(v.Raw) == argCount
	case *LooseChunks:
		return v != nil && len(v.Items) == argCount && len(v.Raw) == argCount
	}
	return false
}

// StrictCheck is QuickCheck plus the requirement that every element of
// both sequences is text. A *Chunks passes the element check by
// construction.
func StrictCheck(first any, argCount int) bool {
	if !QuickCheck(first, argCount) {
		return false
	}
	if lc, ok := first.(*LooseChunks); ok {
		for _, item := range lc.Items {
			if _, ok := item.(string); !ok {
				return false
			}
		}
		for _, item := range lc.Raw {
			if _, ok := item.(string); !ok {
				return false
			}
		}
	}
	return true
}

// FromLoose converts a loose chunk sequence into a validated Chunks
// value, failing with an invalid-input error on a length mismatch or a
// non-text element. The result carries no identity handle, so tags
// recompute static state for it on every call.
func FromLoose(lc *LooseChunks) (*Chunks, error) {
	if lc == nil {
		return nil, NewInvalidInputError(ErrMsgNilChunks)
	}
	if len(lc.Items) != len(lc.Raw) {
		return nil, NewLengthMismatchError(len(lc.Items), len(lc.Raw))
	}
	if len(lc.Items) == 0 {
		return nil, NewInvalidInputError(ErrMsgEmptyChunks)
	}
	cooked := make([]string, len(lc.Items))
	raw := make([]string, len(lc.Raw))
	for i, item := range lc.Items {
		s, ok := item.(string)
		if !ok {
			return nil, NewNonTextElementError("items", i)
		}
		cooked[i] = s
	}
	for i, item := range lc.Raw {
		s, ok := item.(string)
		if !ok {
			return nil, NewNonTextElementError("raw", i)
		}
		raw[i] = s
	}
	return &Chunks{Cooked: cooked, Raw: raw}, nil
}
