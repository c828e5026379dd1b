package parallel

import "sync"

// poolTask is one unit's share of a For call.
type poolTask struct {
	unit int
	r    Range
	body Body
	trap *panicTrap
	done *sync.WaitGroup
}

// Pool keeps units worker goroutines alive between For calls. Unit u always
// runs on worker u, fed through its own channel, so a row partition maps to
// a stable worker for the lifetime of the pool.
//
// Close must be called to stop the workers.
type Pool struct {
	units int
	tasks []chan poolTask

	mu     sync.Mutex // serialises For and Close
	closed bool
	exited sync.WaitGroup
}

var _ Executor = (*Pool)(nil)

// NewPool starts units workers; units < 1 is raised to 1.
func NewPool(units int) *Pool {
	if units < 1 {
		units = 1
	}
	p := &Pool{units: units, tasks: make([]chan poolTask, units)}
	for u := 0; u < units; u++ {
		ch := make(chan poolTask, 1)
		p.tasks[u] = ch
		p.exited.Add(1)
		go p.worker(ch)
	}

	return p
}

func (p *Pool) worker(tasks <-chan poolTask) {
	defer p.exited.Done()
	for t := range tasks {
		t.trap.run(t.unit, t.r, t.body)
		t.done.Done()
	}
}

func (p *Pool) Units() int { return p.units }

// For hands partition u to worker u and blocks until all of them report
// back. After Close it degrades to an inline serial loop over the same
// partitions.
func (p *Pool) For(lo, hi int, body Body) {
	p.mu.Lock()
	defer p.mu.Unlock()

	parts := Partition(lo, hi, p.units)
	if p.closed {
		for u, r := range parts {
			if r.Empty() {
				break
			}
			body(u, r)
		}
		return
	}

	var (
		done sync.WaitGroup
		trap panicTrap
	)
	for u, r := range parts {
		if r.Empty() {
			break
		}
		done.Add(1)
		p.tasks[u] <- poolTask{unit: u, r: r, body: body, trap: &trap, done: &done}
	}
	done.Wait()
	trap.rethrow()
}

// Close stops every worker and waits for them to exit.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	for _, ch := range p.tasks {
		close(ch)
	}
	p.exited.Wait()

	return nil
}
