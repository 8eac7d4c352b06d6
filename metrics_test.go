package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrayMetrics(t *testing.T) {
	var a Array[int64, [4]int64]

	assert.Equal(t, ArrayMetrics{Len: 4, ElemSize: 8, SizeBytes: 32}, a.Metrics())

	var p Array[point, [3]point]
	m := p.Metrics()
	assert.Equal(t, 3, m.Len)
	assert.Equal(t, m.Len*m.ElemSize, m.SizeBytes)
}

func TestBitsMetrics(t *testing.T) {
	b := sample()

	m := b.Metrics()
	assert.Equal(t, 10, m.Len)
	assert.Equal(t, 2, m.Bytes)
	assert.Equal(t, 6, m.PaddingBits)
	assert.Equal(t, 3, m.Count)
	assert.InDelta(t, 0.3, m.Density, 1e-9)
	assert.InDelta(t, b.Density(), m.Density, 0)

	b.Fill(true)
	m = b.Metrics()
	assert.Equal(t, 10, m.Count)
	assert.InDelta(t, 1.0, m.Density, 1e-9)
}

func TestBitsMetricsEmpty(t *testing.T) {
	var b Bits[[0]struct{}, [0]byte]

	assert.Equal(t, BitsMetrics{}, b.Metrics())
	assert.Zero(t, b.Density())
}
