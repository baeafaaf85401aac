package validate

import (
	"testing"

	"github.com/leapstack-labs/wildlog/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"2024-05-01", true},
		{"2024-02-29", true}, // leap year
		{"2000-12-31", true},
		{"2024-02-30", false},
		{"2023-02-29", false},
		{"2024-13-01", false},
		{"2024-00-10", false},
		{"2024-04-31", false},
		{"2024-5-1", false},
		{"24-05-01", false},
		{"2024/05/01", false},
		{"2024-05-01T00:00", false},
		{" 2024-05-01", false},
		{"", false},
		{"yesterday", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := Date(tt.input)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var fe *core.FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, "date", fe.Field)
			assert.Equal(t, tt.input, fe.Value)
		})
	}
}

func TestTime(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"00:00", true},
		{"14:30", true},
		{"23:59", true},
		{"24:00", false},
		{"25:61", false},
		{"12:60", false},
		{"9:30", false},
		{"09:3", false},
		{"09:30:00", false},
		{"0930", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := Time(tt.input)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var fe *core.FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, "time", fe.Field)
		})
	}
}

func TestDateTime(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		clock     string
		wantField string
	}{
		{"both valid", "2024-05-01", "14:30", ""},
		{"bad date", "2024-02-30", "14:30", "date"},
		{"bad time", "2024-05-01", "25:61", "time"},
		{"both bad reports date", "nope", "nope", "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DateTime(tt.date, tt.clock)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var fe *core.FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.wantField, fe.Field)
			assert.True(t, core.IsFormat(err))
		})
	}
}
