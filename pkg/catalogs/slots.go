package catalogs

import (
	"fmt"
	"maps"
	"slices"
)

// Slots holds one record per key.
type Slots struct {
	records map[Key]*Record
}

// SlotsOption defines a function that configures a Slots instance.
type SlotsOption func(*Slots)

// WithSlotsCapacity sets the initial capacity of the slot map.
func WithSlotsCapacity(capacity int) SlotsOption {
	return func(s *Slots) {
		s.records = make(map[Key]*Record, capacity)
	}
}

// NewSlots creates an empty slot table.
func NewSlots(opts ...SlotsOption) *Slots {
	s := &Slots{records: make(map[Key]*Record)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the record for a key and whether it exists.
func (s *Slots) Get(key Key) (*Record, bool) {
	r, ok := s.records[key]
	return r, ok
}

// Add inserts a record. Returns an error if the record is nil or its key is
// already taken.
func (s *Slots) Add(record *Record) error {
	if record == nil {
		return fmt.Errorf("record cannot be nil")
	}
	if _, exists := s.records[record.Key]; exists {
		return fmt.Errorf("slot %s already exists", record.Key)
	}
	s.records[record.Key] = record
	return nil
}

// Len returns the number of slots.
func (s *Slots) Len() int {
	return len(s.records)
}

// Keys returns all keys in network, size, validity order.
func (s *Slots) Keys() []Key {
	return slices.SortedFunc(maps.Keys(s.records), Key.Compare)
}

// List returns all records in key order.
func (s *Slots) List() []*Record {
	keys := s.Keys()
	records := make([]*Record, len(keys))
	for i, k := range keys {
		records[i] = s.records[k]
	}
	return records
}
