package utils

// Tracked keeps the current and previous value of a cycle input so edge
// checks (button presses, speed limit changes) read the same way everywhere.
type Tracked[T comparable] struct {
	Last  T
	Value T
}

// Update shifts the current value into Last and reports whether it changed.
func (t *Tracked[T]) Update(val T) (changed bool) {
	t.Last = t.Value
	t.Value = val
	return t.Last != t.Value
}

func (t *Tracked[T]) Changed() bool {
	return t.Last != t.Value
}
