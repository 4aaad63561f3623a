package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberToWords(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, ""},
		{7, "Seven"},
		{19, "Nineteen"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{135, "One Hundred Thirty Five"},
		{2500, "Two Thousand Five Hundred"},
		{100000, "One Lakh"},
		{250000, "Two Lakh Fifty Thousand"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NumberToWords(tc.in), "input %d", tc.in)
	}
}

func TestNumberToCurrencyWords(t *testing.T) {
	t.Run("rupees only", func(t *testing.T) {
		assert.Equal(t, "One Hundred Thirty Five Rupees Only", NumberToCurrencyWords(135))
	})

	t.Run("rupees and paise", func(t *testing.T) {
		assert.Equal(t, "One Hundred Thirty Five Rupees and Seventy Five Paise Only", NumberToCurrencyWords(135.75))
	})

	t.Run("paise only", func(t *testing.T) {
		assert.Equal(t, "Fifty Paise Only", NumberToCurrencyWords(0.50))
	})

	t.Run("zero", func(t *testing.T) {
		assert.Equal(t, "Zero Rupees Only", NumberToCurrencyWords(0))
	})
}
