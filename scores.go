package main

import "sort"

type Scores map[string]int32

// Names returns the keys sorted, so listings do not depend on map order.
func (s Scores) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s Scores) Average() (float64, bool) {
	var m Metric
	for _, v := range s {
		m.Add(v)
	}
	return m.Avg()
}
