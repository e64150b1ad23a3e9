package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestIsSuitableWeather(t *testing.T) {
	tests := []struct {
		name   string
		temp   *float64
		wind   *float64
		precip *float64
		want   bool
	}{
		{"mild and dry", ptr(18), ptr(10), ptr(0), true},
		{"cold", ptr(4.9), ptr(10), ptr(0), false},
		{"exactly five degrees", ptr(5), ptr(10), ptr(0), true},
		{"windy", ptr(18), ptr(25.1), ptr(0), false},
		{"wind at limit", ptr(18), ptr(25), ptr(0.5), true},
		{"rain", ptr(18), ptr(10), ptr(0.6), false},
		{"missing readings", nil, nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSuitableWeather(tt.temp, tt.wind, tt.precip))
		})
	}
}
