package main

// Metric accumulates int32 samples into an int64 sum, so the sum cannot wrap
// for fewer than 2^32 samples.
type Metric struct {
	Count int
	Sum   int64
}

func (m *Metric) Add(v int32) {
	m.Count++
	m.Sum += int64(v)
}

// Avg returns false when nothing was added.
func (m *Metric) Avg() (float64, bool) {
	if m.Count == 0 {
		return 0, false
	}
	return float64(m.Sum) / float64(m.Count), true
}

// Average returns the arithmetic mean of numbers, or false for an empty slice.
func Average(numbers []int32) (float64, bool) {
	var m Metric
	for _, n := range numbers {
		m.Add(n)
	}
	return m.Avg()
}
