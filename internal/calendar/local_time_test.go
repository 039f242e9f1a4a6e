package calendar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalTime(t *testing.T) {
	tests := []struct {
		name    string
		minute  int
		wantErr bool
	}{
		{name: "midnight", minute: 0},
		{name: "last minute of next day", minute: 2879},
		{name: "two days out", minute: 2880, wantErr: true},
		{name: "negative", minute: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewLocalTime(tt.minute)
			if tt.wantErr {
				var timeErr *TimeError
				require.ErrorAs(t, err, &timeErr)
				assert.Equal(t, TimeOutOfRange, timeErr.Kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.minute, got.MinuteOfDay())
		})
	}
}

func TestParseLocalTime(t *testing.T) {
	tests := []struct {
		input   string
		nextDay bool
		want    int
		wantErr bool
	}{
		{input: "00:00", want: 0},
		{input: "9:05", want: 545},
		{input: "23:59", want: 1439},
		{input: "03:04", nextDay: true, want: 1624},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "123:00", wantErr: true},
		{input: "12:5", wantErr: true},
		{input: "12-50", wantErr: true},
		{input: ">12:50", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLocalTime(tt.input, tt.nextDay)
			if tt.wantErr {
				var timeErr *TimeError
				require.True(t, errors.As(err, &timeErr))
				assert.Equal(t, BadTimeString, timeErr.Kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.MinuteOfDay())
		})
	}
}

func TestParseLocalTimeWithMarker(t *testing.T) {
	got, err := ParseLocalTimeWithMarker(">2:04")
	require.NoError(t, err)
	assert.True(t, got.IsNextDay())
	assert.Equal(t, 2, got.Hour())
	assert.Equal(t, 4, got.Minute())
	assert.Equal(t, ">02:04", got.Format(true))
	assert.Equal(t, "02:04", got.Format(false))

	got, err = ParseLocalTimeWithMarker("15:28")
	require.NoError(t, err)
	assert.False(t, got.IsNextDay())
	assert.Equal(t, "15:28", got.String())

	_, err = ParseLocalTimeWithMarker(">>2:04")
	assert.Error(t, err)
}

func TestLocalTimeDayShifts(t *testing.T) {
	morning, err := LocalTimeFromTime(6, 30, false)
	require.NoError(t, err)

	tomorrow, err := morning.Tomorrow()
	require.NoError(t, err)
	assert.Equal(t, ">06:30", tomorrow.String())
	assert.True(t, morning.Before(tomorrow))
	assert.True(t, tomorrow.After(morning))

	back, err := tomorrow.Yesterday()
	require.NoError(t, err)
	assert.Equal(t, morning, back)

	_, err = morning.Yesterday()
	assert.Error(t, err)
	_, err = tomorrow.Tomorrow()
	assert.Error(t, err)

	assert.Equal(t, 1440, StartOfTomorrow().MinuteOfDay())
	assert.True(t, StartOfTomorrow().IsNextDay())
}
