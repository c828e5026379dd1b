package parallel

import "sync"

// Loop forks one goroutine per non-empty partition on every For call and
// joins them with a WaitGroup before returning.
type Loop struct {
	units int
}

var _ Executor = (*Loop)(nil)

// NewLoop returns a Loop executor; units < 1 is raised to 1.
func NewLoop(units int) *Loop {
	if units < 1 {
		units = 1
	}

	return &Loop{units: units}
}

func (l *Loop) Units() int { return l.units }

func (l *Loop) For(lo, hi int, body Body) {
	parts := Partition(lo, hi, l.units)
	if l.units == 1 || parts[1].Empty() {
		// Single non-empty partition: no fork needed.
		if !parts[0].Empty() {
			body(0, parts[0])
		}
		return
	}

	var (
		wg   sync.WaitGroup
		trap panicTrap
	)
	for u, r := range parts {
		if r.Empty() {
			break // Partition puts empty ranges last
		}
		wg.Add(1)
		go func(u int, r Range) {
			defer wg.Done()
			trap.run(u, r, body)
		}(u, r)
	}
	wg.Wait()
	trap.rethrow()
}

func (l *Loop) Close() error { return nil }
