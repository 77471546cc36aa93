package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrSlotTaken is returned when reserving a slot that is already booked
var ErrSlotTaken = errors.New("slot is already booked")

// SlotMap is the per-doctor ledger of booked slots, keyed by slot date
// ("D_M_YYYY", no zero padding) with an ordered list of slot times ("H:MM").
// A (date, time) pair appears at most once. Stored as JSONB on the doctor row.
type SlotMap map[string][]string

// Value returns json value, implement driver.Valuer interface
func (m SlotMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan scan value into SlotMap, implements sql.Scanner interface
func (m *SlotMap) Scan(value interface{}) error {
	if value == nil {
		*m = SlotMap{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string][]string{}
	err := json.Unmarshal(bytes, &result)
	*m = SlotMap(result)
	return err
}

// IsBooked reports whether the given date/time pair is present in the ledger.
func (m SlotMap) IsBooked(slotDate, slotTime string) bool {
	for _, booked := range m[slotDate] {
		if booked == slotTime {
			return true
		}
	}
	return false
}

// Reserve appends slotTime to the date's list, creating the list when absent.
// Returns ErrSlotTaken if the pair is already present.
func (m SlotMap) Reserve(slotDate, slotTime string) error {
	if m.IsBooked(slotDate, slotTime) {
		return ErrSlotTaken
	}
	m[slotDate] = append(m[slotDate], slotTime)
	return nil
}

// Release removes the first matching entry for the date/time pair.
// Releasing an absent entry is a no-op so that racing double-cancels
// cannot remove more than one entry.
func (m SlotMap) Release(slotDate, slotTime string) {
	times := m[slotDate]
	for i, booked := range times {
		if booked == slotTime {
			m[slotDate] = append(times[:i:i], times[i+1:]...)
			return
		}
	}
}
