package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeString
		wantErr bool
	}{
		{input: "09:00", want: "09:00"},
		{input: "23:59", want: "23:59"},
		{input: "00:00", want: "00:00"},
		{input: "24:00", wantErr: true},
		{input: "9:00", wantErr: true},
		{input: "09:60", wantErr: true},
		{input: "morning", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "simple add", start: "09:00", minutes: 30, want: "09:30"},
		{name: "hour rollover", start: "09:45", minutes: 30, want: "10:15"},
		{name: "zero", start: "09:00", minutes: 0, want: "09:00"},
		{name: "negative", start: "09:00", minutes: -60, want: "08:00"},
		{name: "past midnight", start: "23:30", minutes: 60, wantErr: true},
		{name: "before day start", start: "00:30", minutes: -60, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestTimeString_OnDate(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	got, err := TimeString("08:30").OnDate(date, loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 11, 3, 8, 30, 0, 0, loc), got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("08:00:00"))
	assert.Equal(t, TimeString("08:00"), ts)

	require.NoError(t, ts.Scan([]byte("16:30")))
	assert.Equal(t, TimeString("16:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.Equal(t, TimeString(""), ts)

	require.Error(t, ts.Scan(42))
}
