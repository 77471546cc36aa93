package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlotDate(t *testing.T) {
	tests := []struct {
		name             string
		input            string
		day, month, year int
		wantErr          bool
	}{
		{name: "plain", input: "1_1_2020", day: 1, month: 1, year: 2020},
		{name: "no zero padding", input: "5_11_2026", day: 5, month: 11, year: 2026},
		{name: "zero padded accepted", input: "05_03_2026", day: 5, month: 3, year: 2026},
		{name: "too few parts", input: "1_2020", wantErr: true},
		{name: "too many parts", input: "1_1_1_2020", wantErr: true},
		{name: "non numeric", input: "a_b_c", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "wrong separator", input: "1-1-2020", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, month, year, err := ParseSlotDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var malformed *MalformedError
				assert.ErrorAs(t, err, &malformed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.day, day)
			assert.Equal(t, tt.month, month)
			assert.Equal(t, tt.year, year)
		})
	}
}

func TestParseSlotTime(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		hour, minute int
		wantErr      bool
	}{
		{name: "morning", input: "9:00", hour: 9, minute: 0},
		{name: "afternoon", input: "14:30", hour: 14, minute: 30},
		{name: "zero padded hour", input: "09:00", hour: 9, minute: 0},
		{name: "missing minutes", input: "9", wantErr: true},
		{name: "non numeric", input: "nine:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, err := ParseSlotTime(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hour, hour)
			assert.Equal(t, tt.minute, minute)
		})
	}
}

func TestSlotInstant(t *testing.T) {
	loc := time.UTC

	instant, err := SlotInstant("15_6_2026", "14:30", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.June, 15, 14, 30, 0, 0, loc), instant)

	_, err = SlotInstant("garbage", "14:30", loc)
	assert.Error(t, err)
	_, err = SlotInstant("15_6_2026", "garbage", loc)
	assert.Error(t, err)
}

func TestIsSlotPast(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, loc)

	past, err := IsSlotPast("15_6_2026", "11:59", loc, now)
	require.NoError(t, err)
	assert.True(t, past)

	// The boundary instant is not past
	past, err = IsSlotPast("15_6_2026", "12:00", loc, now)
	require.NoError(t, err)
	assert.False(t, past)

	past, err = IsSlotPast("15_6_2026", "12:01", loc, now)
	require.NoError(t, err)
	assert.False(t, past)

	past, err = IsSlotPast("1_1_2020", "9:00", loc, now)
	require.NoError(t, err)
	assert.True(t, past)
}

func TestIsDatePast(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, loc)

	past, err := IsDatePast("14_6_2026", loc, now)
	require.NoError(t, err)
	assert.True(t, past)

	// Earlier today is past by clock but not by date
	past, err = IsDatePast("15_6_2026", loc, now)
	require.NoError(t, err)
	assert.False(t, past)

	past, err = IsDatePast("16_6_2026", loc, now)
	require.NoError(t, err)
	assert.False(t, past)

	_, err = IsDatePast("junk", loc, now)
	assert.Error(t, err)
}
