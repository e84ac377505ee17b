package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2024-02-29"))
	assert.False(t, IsValidDate("2023-02-29"))
	assert.False(t, IsValidDate("29/02/2024"))
	assert.False(t, IsValidDate(""))
}

func TestToday(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	instant := time.Date(2024, 3, 10, 1, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		loc      *time.Location
		expected string
	}{
		{name: "UTC", loc: time.UTC, expected: "2024-03-10"},
		{name: "Fuso atrás do UTC volta um dia", loc: saoPaulo, expected: "2024-03-09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Today(instant, tt.loc))
		})
	}
}

func TestInLocation_SemFuso(t *testing.T) {
	instant := time.Date(2024, 3, 10, 1, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Local, InLocation(instant, nil).Location())
	assert.True(t, instant.Equal(InLocation(instant, nil)))
}
