package rounding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvance(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		inc  float64
		want float64
	}{
		{"fraction", 312.5, 50, 350},
		{"exact multiple still advances", 300, 50, 350},
		{"width from 175", 175, 25, 200},
		{"small", 1, 25, 25},
		{"zero", 0, 50, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Advance(tt.x, tt.inc))
		})
	}
}

func TestAdvance_AlwaysAboveInputAndMultiple(t *testing.T) {
	for x := 0.0; x < 2000; x += 7.3 {
		got := Advance(x, 50)
		assert.Greater(t, got, x)
		assert.Equal(t, 0.0, math.Mod(got, 50), "x=%v", x)
	}
}

func TestCeilAndFloor(t *testing.T) {
	assert.Equal(t, 300.0, Ceil(300, 50))
	assert.Equal(t, 350.0, Ceil(301, 50))
	assert.Equal(t, 175.0, Floor(199.9, 25))
	assert.Equal(t, 200.0, Floor(200, 25))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 50.0, Clamp(10, 50, 200))
	assert.Equal(t, 200.0, Clamp(300, 50, 200))
	assert.Equal(t, 125.0, Clamp(125, 50, 200))
	assert.Equal(t, 150.0, AtLeast(100, 150))
	assert.Equal(t, 175.0, AtLeast(175, 150))
}

func TestCeilCount(t *testing.T) {
	assert.Equal(t, 2, CeilCount(0, 201, 2))
	assert.Equal(t, 2, CeilCount(150, 201, 2))
	assert.Equal(t, 3, CeilCount(402.5, 201, 2))
	assert.Equal(t, 4, CeilCount(100, 201, 4))
}
