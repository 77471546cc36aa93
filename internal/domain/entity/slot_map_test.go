package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotMapReserve(t *testing.T) {
	m := SlotMap{}

	require.NoError(t, m.Reserve("1_1_2030", "10:00"))
	require.NoError(t, m.Reserve("1_1_2030", "10:30"))
	require.NoError(t, m.Reserve("2_1_2030", "10:00"))

	assert.Equal(t, []string{"10:00", "10:30"}, m["1_1_2030"])
	assert.Equal(t, []string{"10:00"}, m["2_1_2030"])

	// Same pair twice must fail and leave the ledger untouched
	err := m.Reserve("1_1_2030", "10:00")
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, []string{"10:00", "10:30"}, m["1_1_2030"])
}

func TestSlotMapRelease(t *testing.T) {
	m := SlotMap{}
	require.NoError(t, m.Reserve("5_3_2030", "10:00"))
	require.NoError(t, m.Reserve("5_3_2030", "10:30"))

	m.Release("5_3_2030", "10:00")
	assert.Equal(t, []string{"10:30"}, m["5_3_2030"])

	// Releasing an absent entry is a no-op
	m.Release("5_3_2030", "10:00")
	assert.Equal(t, []string{"10:30"}, m["5_3_2030"])
	m.Release("9_9_2030", "11:00")
	assert.False(t, m.IsBooked("9_9_2030", "11:00"))
}

func TestSlotMapIsBooked(t *testing.T) {
	m := SlotMap{"1_1_2030": {"9:00"}}

	assert.True(t, m.IsBooked("1_1_2030", "9:00"))
	assert.False(t, m.IsBooked("1_1_2030", "10:00"))
	assert.False(t, m.IsBooked("2_1_2030", "9:00"))
}

func TestSlotMapValueScanRoundTrip(t *testing.T) {
	m := SlotMap{"1_1_2030": {"9:00", "10:30"}}

	value, err := m.Value()
	require.NoError(t, err)

	var out SlotMap
	require.NoError(t, out.Scan(value))
	assert.Equal(t, m, out)
}

func TestSlotMapScanNil(t *testing.T) {
	var m SlotMap
	require.NoError(t, m.Scan(nil))
	require.NotNil(t, m)

	// A freshly scanned empty ledger must accept reservations
	assert.NoError(t, m.Reserve("1_1_2030", "9:00"))
}

func TestSlotMapValueEmpty(t *testing.T) {
	value, err := SlotMap{}.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), value)
}
