package main

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverage(t *testing.T) {
	tests := []struct {
		name    string
		numbers []int32
		want    float64
		ok      bool
	}{
		{"nil", nil, 0, false},
		{"empty", []int32{}, 0, false},
		{"single", []int32{5}, 5.0, true},
		{"one to five", []int32{1, 2, 3, 4, 5}, 3.0, true},
		{"cancel out", []int32{-1, 1}, 0.0, true},
		{"fractional", []int32{1, 2}, 1.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Average(tt.numbers)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAverageMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		numbers := make([]int32, 1+rng.Intn(50))
		sum := new(big.Int)
		for j := range numbers {
			numbers[j] = int32(rng.Uint32())
			sum.Add(sum, big.NewInt(int64(numbers[j])))
		}
		want := float64(sum.Int64()) / float64(len(numbers))

		got, ok := Average(numbers)
		require.True(t, ok)
		require.Equal(t, want, got, "numbers %v", numbers)
	}
}

func TestAverageWiderThanInput(t *testing.T) {
	tests := []struct {
		name    string
		numbers []int32
		want    float64
	}{
		{"max plus one", []int32{math.MaxInt32, 1}, 1073741824.0},
		{"all max", []int32{math.MaxInt32, math.MaxInt32, math.MaxInt32}, math.MaxInt32},
		{"all min", []int32{math.MinInt32, math.MinInt32}, math.MinInt32},
		{"min and max", []int32{math.MinInt32, math.MaxInt32}, -0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Average(tt.numbers)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAverageIsPure(t *testing.T) {
	numbers := []int32{3, 1, 4, 1, 5, 9, 2, 6}
	first, ok1 := Average(numbers)
	second, ok2 := Average(numbers)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
	assert.Equal(t, []int32{3, 1, 4, 1, 5, 9, 2, 6}, numbers)
}

func TestMetricIncremental(t *testing.T) {
	var m Metric
	_, ok := m.Avg()
	require.False(t, ok)

	m.Add(10)
	m.Add(20)
	avg, ok := m.Avg()
	require.True(t, ok)
	assert.Equal(t, 15.0, avg)
	assert.Equal(t, 2, m.Count)
	assert.Equal(t, int64(30), m.Sum)
}
