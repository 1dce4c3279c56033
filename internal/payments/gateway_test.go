package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	testCases := []struct {
		name     string
		price    float64
		expected int64
	}{
		{name: "whole amount", price: 20, expected: 2000},
		{name: "two decimals", price: 19.99, expected: 1999},
		{name: "float artifact below", price: 0.29, expected: 29},
		{name: "float artifact above", price: 1.15, expected: 115},
		{name: "zero", price: 0, expected: 0},
		{name: "single decimal", price: 4.5, expected: 450},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MinorUnits(tt.price))
		})
	}
}
