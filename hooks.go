package pricemap

import (
	"reflect"
	"sync"

	"github.com/agentstation/pricemap/pkg/catalogs"
	"github.com/agentstation/pricemap/pkg/reconciler"
)

// Hook function types for slot events
type (
	// SlotAddedHook is called when a slot appears in a reconciliation
	SlotAddedHook func(record catalogs.Record)

	// SlotUpdatedHook is called when a slot's record differs from the previous run
	SlotUpdatedHook func(old, new catalogs.Record)

	// SlotRemovedHook is called when a slot from the previous run is gone
	SlotRemovedHook func(record catalogs.Record)
)

// hooks manages event callbacks for price list changes
type hooks struct {
	mu            sync.RWMutex
	onSlotAdded   []SlotAddedHook
	onSlotUpdated []SlotUpdatedHook
	onSlotRemoved []SlotRemovedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnSlotAdded registers a callback for slots new in a run
func (h *hooks) OnSlotAdded(fn SlotAddedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onSlotAdded = append(h.onSlotAdded, fn)
}

// OnSlotUpdated registers a callback for slots whose record changed
func (h *hooks) OnSlotUpdated(fn SlotUpdatedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onSlotUpdated = append(h.onSlotUpdated, fn)
}

// OnSlotRemoved registers a callback for slots gone from a run
func (h *hooks) OnSlotRemoved(fn SlotRemovedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onSlotRemoved = append(h.onSlotRemoved, fn)
}

// triggerResultUpdate compares two runs slot by slot. With no previous run
// every slot counts as added.
func (h *hooks) triggerResultUpdate(oldResult, newResult *reconciler.Result) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	oldSlots := make(map[catalogs.Key]catalogs.Record)
	if oldResult != nil {
		for _, rec := range oldResult.Records() {
			oldSlots[rec.Key] = *rec
		}
	}

	newSlots := make(map[catalogs.Key]catalogs.Record)
	for _, rec := range newResult.Records() {
		newSlots[rec.Key] = *rec

		old, exists := oldSlots[rec.Key]
		switch {
		case !exists:
			for _, hook := range h.onSlotAdded {
				hook(*rec)
			}
		case !reflect.DeepEqual(old, *rec):
			for _, hook := range h.onSlotUpdated {
				hook(old, *rec)
			}
		}
	}

	if oldResult == nil {
		return
	}
	for _, rec := range oldResult.Records() {
		if _, exists := newSlots[rec.Key]; !exists {
			for _, hook := range h.onSlotRemoved {
				hook(*rec)
			}
		}
	}
}
