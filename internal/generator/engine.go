package generator

const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
)

// Engine is a seeded linear congruential generator. It holds no external
// entropy: two engines built from the same seed emit the same sequence.
type Engine struct {
	state uint32
}

// NewEngine returns an engine positioned at seed.
func NewEngine(seed uint32) *Engine {
	return &Engine{state: seed}
}

// NextInt advances the state by exactly one step and returns a value in
// [0, max). It returns 0 without advancing when max is not positive.
func (e *Engine) NextInt(max int) int {
	if max <= 0 {
		return 0
	}
	e.state = e.state*lcgMultiplier + lcgIncrement
	return int(uint64(e.state) % uint64(max))
}

// Choice picks an index in [0, n).
func (e *Engine) Choice(n int) int {
	return e.NextInt(n)
}

// Shuffle permutes n elements with a Fisher-Yates pass from the last index
// down to 1, drawing j = NextInt(i+1) for every i.
func (e *Engine) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := e.NextInt(i + 1)
		swap(i, j)
	}
}
