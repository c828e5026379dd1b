package parallel

import "golang.org/x/sync/errgroup"

// Group dispatches partitions through an errgroup.Group limited to units
// concurrent goroutines. A panicking body surfaces as the group's error and
// is re-raised after Wait.
type Group struct {
	units int
}

var _ Executor = (*Group)(nil)

// NewGroup returns a Group executor; units < 1 is raised to 1.
func NewGroup(units int) *Group {
	if units < 1 {
		units = 1
	}

	return &Group{units: units}
}

func (g *Group) Units() int { return g.units }

func (g *Group) For(lo, hi int, body Body) {
	var eg errgroup.Group
	eg.SetLimit(g.units)
	for u, r := range Partition(lo, hi, g.units) {
		if r.Empty() {
			break
		}
		u, r := u, r
		eg.Go(func() error {
			if perr := runUnit(u, r, body); perr != nil {
				return perr
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		panic(err)
	}
}

func (g *Group) Close() error { return nil }
