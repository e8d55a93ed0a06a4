package align

import "fmt"

// Kind says which way an alignment failed.
type Kind int

const (
	InvalidMatrixShape Kind = iota + 1 // substitution matrix is not square
	MapSizeMismatch                    // symbol map does not fit the matrix
	UnknownSymbol                      // a sequence has a symbol not in the map
	CombineError                       // score columns could not be combined
)

func (k Kind) String() string {
	switch k {
	case InvalidMatrixShape:
		return "invalid matrix shape"
	case MapSizeMismatch:
		return "map size mismatch"
	case UnknownSymbol:
		return "unknown symbol"
	case CombineError:
		return "combine error"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is the only error type returned by this package. None of them
// are worth retrying. CombineError means a bug here, not bad input.
type Error struct {
	Kind Kind
	Msg  string
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrInvalidMatrixShape = &Error{Kind: InvalidMatrixShape}
	ErrMapSizeMismatch    = &Error{Kind: MapSizeMismatch}
	ErrUnknownSymbol      = &Error{Kind: UnknownSymbol}
	ErrCombine            = &Error{Kind: CombineError}
)

func (e *Error) Error() string {
	if e.Msg == "" {
		return "align: " + e.Kind.String()
	}
	return "align: " + e.Kind.String() + ": " + e.Msg
}

// Is lets errors.Is compare on Kind when the target is one of the
// sentinels (a target with an empty Msg).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Msg == "" && t.Kind == e.Kind
}

func newErr(k Kind, format string, a ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, a...)}
}
