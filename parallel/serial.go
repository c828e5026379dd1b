package parallel

// Serial runs every For call inline on the calling goroutine as unit 0.
type Serial struct{}

var _ Executor = Serial{}

func (Serial) Units() int { return 1 }

func (Serial) For(lo, hi int, body Body) {
	r := Range{Lo: lo, Hi: hi}
	if r.Empty() {
		return
	}
	body(0, r)
}

func (Serial) Close() error { return nil }
