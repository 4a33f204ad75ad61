package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "24-hour", input: "14:30", want: "14:30"},
		{name: "kitchen AM", input: "8:00 AM", want: "08:00"},
		{name: "kitchen PM", input: "6:00 PM", want: "18:00"},
		{name: "kitchen noon", input: "12:00 PM", want: "12:00"},
		{name: "kitchen midnight", input: "12:00 AM", want: "00:00"},
		{name: "lowercase meridiem", input: "10:00 am", want: "10:00"},
		{name: "no space before meridiem", input: "5:00PM", want: "17:00"},
		{name: "padded", input: "  9:00 AM ", want: "09:00"},
		{name: "garbage", input: "mediodía", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeStringOrdering(t *testing.T) {
	early := TimeString("08:00")
	late := TimeString("18:00")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsBefore(early))
	assert.False(t, early.IsAfter(early))
}

func TestTimeStringAddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)
}

func TestTimeStringAt(t *testing.T) {
	loc := time.FixedZone("UTC-6", -6*60*60)
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, loc)

	instant, err := TimeString("14:30").At(date, loc)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10T20:30:00Z", instant.UTC().Format(time.RFC3339))
}

func TestTimeStringValidate(t *testing.T) {
	assert.NoError(t, TimeString("09:15").Validate())
	assert.Error(t, TimeString("9:15 AM").Validate())
	assert.Error(t, TimeString("").Validate())
}
