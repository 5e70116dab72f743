package math

// MovingAverage is a fixed window average. The first sample after Init or
// Reset fills the whole window so the estimate starts at that sample.
type MovingAverage struct {
	values      []float64
	index       int
	size        int
	initialized bool
	Estimate    float64
}

func (a *MovingAverage) Init(size int) {
	if size < 1 {
		size = 1
	}
	a.size = size
	a.values = make([]float64, size)
	a.initialized = false
	a.index = 0
	a.Estimate = 0
}

func (a *MovingAverage) Reset() {
	a.initialized = false
}

func (a *MovingAverage) Initialized() bool {
	return a.initialized
}

func (a *MovingAverage) Update(val float64) float64 {
	if a.size == 0 {
		a.Init(1)
	}
	if !a.initialized {
		for i := range a.values {
			a.values[i] = val
		}
		a.initialized = true
		a.index = 0
		a.Estimate = val
		return val
	}
	a.index += 1
	a.index %= a.size
	a.values[a.index] = val
	total := 0.0
	for _, v := range a.values {
		total += v
	}
	a.Estimate = total / float64(a.size)
	return a.Estimate
}

func (a *MovingAverage) Raw() float64 {
	if a.size == 0 {
		return 0
	}
	return a.values[a.index]
}
