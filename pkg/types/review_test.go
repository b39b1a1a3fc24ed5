package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRating(t *testing.T) {
	tests := []struct {
		name   string
		rating int
		want   bool
	}{
		{name: "lower bound accepted", rating: 1, want: true},
		{name: "upper bound accepted", rating: 5, want: true},
		{name: "middle accepted", rating: 3, want: true},
		{name: "zero rejected", rating: 0, want: false},
		{name: "six rejected", rating: 6, want: false},
		{name: "negative rejected", rating: -1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidRating(tt.rating))
		})
	}
}
