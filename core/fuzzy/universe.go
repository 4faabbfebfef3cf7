package fuzzy

// A Universe is the discretized domain of one linguistic variable: strictly
// increasing samples with a fixed step, spanning [min, max]. It is created
// once at variable construction and never modified afterwards.
type Universe struct {
	samples []float64
	min     float64
	max     float64
	step    float64
}

func NewUniverse(min, max, step float64) (Universe, error) {
	if !(max > min) || !(step > 0) {
		return Universe{}, ErrBadUniverse
	}
	n := int((max-min)/step) + 1
	samples := make([]float64, 0, n+1)
	for i := 0; ; i++ {
		v := min + float64(i)*step
		if v > max {
			break
		}
		samples = append(samples, v)
	}
	return Universe{
		samples: samples,
		min:     min,
		max:     samples[len(samples)-1],
		step:    step,
	}, nil
}

func (u Universe) Min() float64 { return u.min }

func (u Universe) Max() float64 { return u.max }

func (u Universe) Step() float64 { return u.step }

func (u Universe) Len() int { return len(u.samples) }

// Samples returns the underlying sample slice. Callers must not modify it.
func (u Universe) Samples() []float64 { return u.samples }
