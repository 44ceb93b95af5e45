package img2num

import (
	"errors"
	"fmt"
	"sync"
)

// ErrorKind is the taxonomy exposed at the foreign boundary:
// OK, BAD_ALLOC, INVALID_ARGUMENT, RUNTIME, UNKNOWN.
type ErrorKind int

const (
	KindOK ErrorKind = iota
	KindBadAlloc
	KindInvalidArgument
	KindRuntime
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindOK:
		return "OK"
	case KindBadAlloc:
		return "BAD_ALLOC"
	case KindInvalidArgument:
		return "INVALID_ARGUMENT"
	case KindRuntime:
		return "RUNTIME"
	default:
		return "UNKNOWN"
	}
}

// Sentinel errors core functions wrap with fmt.Errorf("%w: ...", Err*) so
// callers (and errors.Is) can classify failures without string matching.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrBadAlloc        = errors.New("allocation failed")
	ErrRuntime         = errors.New("runtime failure")
)

// ErrInvalidArgumentf builds an INVALID_ARGUMENT error with a formatted
// message, for the "performs no writes" failure mode.
func ErrInvalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}

// KindOf classifies err into one of the five ErrorKinds. The core never
// returns KindUnknown itself; it is reserved for failures bubbled
// up from external collaborators such as image codecs.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrBadAlloc):
		return KindBadAlloc
	case errors.Is(err, ErrRuntime):
		return KindRuntime
	default:
		return KindUnknown
	}
}

// maxErrorMessageLen bounds the last-error message slot:
// "a human-readable message <= 511 bytes".
const maxErrorMessageLen = 511

// lastErrorSlots holds the "last error" slot for foreign callers. It is
// one process-wide slot, not a per-thread one: every caller reads and
// writes the same entry. Nothing in this repository populates it, and
// core functions never do -- core functions return (T, error) like any
// other Go code. SetLastError/LastError exist so a cgo or C-ABI shim built on
// top of this package (outside the scope of this repo) has somewhere
// to park the borrowed-reference error state it needs to expose.
var lastErrorSlots sync.Map // goroutine id placeholder -> *errorSlot

type errorSlot struct {
	kind ErrorKind
	msg  string
}

// threadKey is the key type of lastErrorSlots. Go has no stable
// goroutine-id API, and SetLastError, ClearLastError and LastError take
// no key: all three use defaultThreadKey, so every goroutine and OS
// thread shares the one slot.
type threadKey struct{ id uint64 }

var defaultThreadKey = threadKey{}

// SetLastError records kind/msg in the shared slot, truncating msg to
// maxErrorMessageLen bytes. Truncation re-slices msg without copying it;
// each call allocates one new errorSlot.
func SetLastError(kind ErrorKind, msg string) {
	if len(msg) > maxErrorMessageLen {
		msg = msg[:maxErrorMessageLen]
	}
	lastErrorSlots.Store(defaultThreadKey, &errorSlot{kind: kind, msg: msg})
}

// ClearLastError resets the shared slot to KindOK.
func ClearLastError() {
	lastErrorSlots.Store(defaultThreadKey, &errorSlot{kind: KindOK})
}

// LastError returns the last recorded kind and message from the shared
// slot. The returned string is borrowed: its lifetime is tied to the next
// SetLastError/ClearLastError call from any goroutine, matching the
// "readers return borrowed references" contract.
func LastError() (ErrorKind, string) {
	v, ok := lastErrorSlots.Load(defaultThreadKey)
	if !ok {
		return KindOK, ""
	}
	s := v.(*errorSlot)
	return s.kind, s.msg
}
