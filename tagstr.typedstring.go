package tagstr

import "fmt"

// ContractID names a semantic guarantee a text value satisfies, such as
// "csv-cell" or "sql-identifier". Contract identity, not Go type
// identity, is what answers "is this value already safe for context X",
// so checks keep working across package boundaries.
type ContractID string

// TypedString is an immutable text payload tagged with the contract it
// satisfies. Tag handlers use it to recognize already-safe input and
// interpolate it without re-escaping. The fields are unexported and
// there are no setters; a TypedString cannot be altered after
// construction.
type TypedString struct {
	content  string
	contract ContractID
}

// NewTypedString wraps a value's text form under the given contract.
// Non-string values are coerced with their default text formatting.
func NewTypedString(v any, contract ContractID) TypedString {
	content, ok := v.(string)
	if !ok {
		content = fmt.Sprint(v)
	}
	return TypedString{content: content, contract: contract}
}

// Content returns the stored text.
func (s TypedString) Content() string {
	return s.content
}

// String returns the stored text, making TypedString a fmt.Stringer.
func (s TypedString) String() string {
	return s.content
}

// Contract returns the contract this value satisfies.
func (s TypedString) Contract() ContractID {
	return s.contract
}

// Satisfies reports whether the value carries the given contract.
func (s TypedString) Satisfies(contract ContractID) bool {
	return s.contract == contract
}

// Contracted is the capability view of a contract-tagged text value.
// Checking for this interface, then comparing contracts, replaces
// nominal-type checks across module boundaries.
type Contracted interface {
	Contract() ContractID
	Content() string
}

// SatisfiesContract reports whether v is a contract-tagged text value
// carrying the given contract.
func SatisfiesContract(v any, contract ContractID) bool {
	c, ok := v.(Contracted)
	return ok && c.Contract() == contract
}
