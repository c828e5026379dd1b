package parallel

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"sync"
)

// DefaultUnits is the unit count used when the caller does not choose one.
const DefaultUnits = 4

var (
	// ErrUnknownKind is returned by ParseKind for an unrecognised backend name.
	ErrUnknownKind = errors.New("parallel: unknown backend")

	// ErrInvalidUnits is returned by New when units < 1.
	ErrInvalidUnits = errors.New("parallel: units must be >= 1")
)

// Body is the work of one execution unit over its partition r.
// unit is the partition index in [0, Units()).
type Body func(unit int, r Range)

// Executor runs a Body over a partitioned range and waits for all of it.
type Executor interface {
	// Units returns the number of execution units the range is split across.
	Units() int

	// For partitions [lo, hi) with Partition and runs body once per non-empty
	// partition. It returns only after every partition has completed.
	For(lo, hi int, body Body)

	// Close releases backend resources. It is safe to call more than once.
	Close() error
}

// Kind names a backend.
type Kind int

const (
	KindSerial Kind = iota
	KindLoop
	KindPool
	KindGroup
)

var kindNames = [...]string{
	KindSerial: "serial",
	KindLoop:   "loop",
	KindPool:   "pool",
	KindGroup:  "group",
}

// aliases accepted by ParseKind in addition to the canonical names.
var kindAliases = map[string]Kind{
	"seq":     KindSerial,
	"openmp":  KindLoop,
	"omp":     KindLoop,
	"pthread": KindPool,
	"threads": KindPool,
	"raja":    KindGroup,
	"forall":  KindGroup,
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Kinds lists every backend in declaration order.
func Kinds() []Kind {
	return []Kind{KindSerial, KindLoop, KindPool, KindGroup}
}

// ParseKind maps a case-insensitive name or alias to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// New builds an Executor of the given kind. KindSerial ignores units.
func New(kind Kind, units int) (Executor, error) {
	if units < 1 {
		return nil, fmt.Errorf("New(%s, %d): %w", kind, units, ErrInvalidUnits)
	}
	switch kind {
	case KindSerial:
		return Serial{}, nil
	case KindLoop:
		return NewLoop(units), nil
	case KindPool:
		return NewPool(units), nil
	case KindGroup:
		return NewGroup(units), nil
	}

	return nil, fmt.Errorf("New: %w: %s", ErrUnknownKind, kind)
}

// PanicError carries a panic raised inside a Body back to the caller of For.
type PanicError struct {
	Unit  int
	Range Range
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("parallel: unit %d [%d,%d) panicked: %v\n%s",
		e.Unit, e.Range.Lo, e.Range.Hi, e.Value, e.Stack)
}

// runUnit executes body and converts a panic into a *PanicError.
func runUnit(unit int, r Range, body Body) (perr *PanicError) {
	defer func() {
		if v := recover(); v != nil {
			perr = &PanicError{Unit: unit, Range: r, Value: v, Stack: debug.Stack()}
		}
	}()
	body(unit, r)

	return nil
}

// panicTrap keeps the first panic observed among the units of one For call.
type panicTrap struct {
	once  sync.Once
	first *PanicError
}

func (t *panicTrap) run(unit int, r Range, body Body) {
	if perr := runUnit(unit, r, body); perr != nil {
		t.once.Do(func() { t.first = perr })
	}
}

// rethrow must be called after the barrier.
func (t *panicTrap) rethrow() {
	if t.first != nil {
		panic(t.first)
	}
}
