package versionstamp

import "fmt"

// Kind classifies a fatal failure of the build step.
type Kind int

const (
	// KindStamp is a failure to write the product version file.
	KindStamp Kind = iota + 1
	// KindCompile is a failure to compile the Windows resource object.
	KindCompile
)

func (k Kind) String() string {
	switch k {
	case KindStamp:
		return "stamp"
	case KindCompile:
		return "compile"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is returned by every failing operation in this package. Callers are
// expected to abort the build on any *Error.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func stampError(op string, err error) error {
	return &Error{Kind: KindStamp, Op: op, Err: err}
}

func compileError(op string, err error) error {
	return &Error{Kind: KindCompile, Op: op, Err: err}
}
