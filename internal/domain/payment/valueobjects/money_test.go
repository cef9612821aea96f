package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney_Format(t *testing.T) {
	tests := []struct {
		name     string
		cents    int64
		expected string
	}{
		{name: "whole amount", cents: 10000, expected: "100.00"},
		{name: "fractional amount", cents: 12345, expected: "123.45"},
		{name: "sub-unit amount", cents: 5, expected: "0.05"},
		{name: "zero", cents: 0, expected: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewMoney(tt.cents, "SAR").Format())
		})
	}
}

func TestMoney_Equals(t *testing.T) {
	assert.True(t, NewMoney(100, "SAR").Equals(NewMoney(100, "SAR")))
	assert.False(t, NewMoney(100, "SAR").Equals(NewMoney(100, "USD")))
	assert.False(t, NewMoney(100, "SAR").Equals(NewMoney(101, "SAR")))
}

func TestMoney_IsPositive(t *testing.T) {
	assert.True(t, NewMoney(1, "SAR").IsPositive())
	assert.False(t, NewMoney(0, "SAR").IsPositive())
	assert.False(t, NewMoney(-100, "SAR").IsPositive())
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "100.00 SAR", NewMoney(10000, "SAR").String())
}
