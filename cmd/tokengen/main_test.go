package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		lifetime time.Duration
		want     string
	}{
		{name: "zero lifetime never expires", lifetime: 0, want: "never"},
		{name: "positive lifetime", lifetime: 2 * time.Hour, want: "2024-01-01T10:00:00Z"},
		{name: "negative lifetime is already expired", lifetime: -time.Hour, want: "2024-01-01T07:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expiry(now, tt.lifetime))
		})
	}
}
