// Package item implements the 8-slot consumable inventory and the
// post-battle loot rolls.
//
// The inventory is always kept compacted: occupied slots are contiguous
// from index 0. Hitting ItemNone during a scan therefore guarantees there
// are no more items, so every scan can exit early.
package item

import "vexdrift/assets"

const (
	// Slots is the inventory capacity.
	Slots = 8
	// MaxStack caps a slot's quantity so the HUD stays single-digit.
	MaxStack = 9
	// OverflowCredits is granted when an item cannot fit anywhere.
	OverflowCredits = 10
)

// AddResult reports what Add did with the item.
type AddResult int

const (
	// AddFailed means the id was invalid.
	AddFailed AddResult = iota
	// AddStored means the item was stacked or placed in a slot.
	AddStored
	// AddConverted means the inventory was full and the item became
	// OverflowCredits credits (the caller applies them).
	AddConverted
)

// Slot is one inventory position.
type Slot struct {
	ID  assets.ItemID
	Qty int
}

// Inventory is the fixed 8-slot, compacted consumable store.
type Inventory struct {
	slots [Slots]Slot
}

// New returns the new-game inventory: two small HP potions.
func New() *Inventory {
	inv := &Inventory{}
	inv.Add(assets.ItemHPPotionS, 2)
	return inv
}

// Clear empties every slot.
func (inv *Inventory) Clear() {
	inv.slots = [Slots]Slot{}
}

// Add stores qty units of id, merging into an existing stack first
// (capped at MaxStack), then taking the first empty slot. When no slot is
// free the item converts to credits and AddConverted is returned.
func (inv *Inventory) Add(id assets.ItemID, qty int) AddResult {
	if id <= assets.ItemNone || id >= assets.ItemCount || qty <= 0 {
		return AddFailed
	}

	for i := range inv.slots {
		if inv.slots[i].ID == assets.ItemNone {
			break // compacted: no more occupied slots
		}
		if inv.slots[i].ID == id {
			inv.slots[i].Qty += qty
			if inv.slots[i].Qty > MaxStack {
				inv.slots[i].Qty = MaxStack
			}
			return AddStored
		}
	}
	for i := range inv.slots {
		if inv.slots[i].ID == assets.ItemNone {
			inv.slots[i] = Slot{ID: id, Qty: qty}
			return AddStored
		}
	}
	return AddConverted
}

// Remove takes qty units of id. When a stack is exhausted the slot is
// cleared and everything after it shifts down one position to keep the
// inventory compacted. Reports whether the item was present.
func (inv *Inventory) Remove(id assets.ItemID, qty int) bool {
	for i := range inv.slots {
		if inv.slots[i].ID != id {
			continue
		}
		if inv.slots[i].Qty <= qty {
			for j := i; j < Slots-1; j++ {
				inv.slots[j] = inv.slots[j+1]
				if inv.slots[j].ID == assets.ItemNone {
					break
				}
			}
			inv.slots[Slots-1] = Slot{}
		} else {
			inv.slots[i].Qty -= qty
		}
		return true
	}
	return false
}

// Count returns the quantity of id held.
func (inv *Inventory) Count(id assets.ItemID) int {
	for i := range inv.slots {
		if inv.slots[i].ID == assets.ItemNone {
			return 0
		}
		if inv.slots[i].ID == id {
			return inv.slots[i].Qty
		}
	}
	return 0
}

// At returns the slot at index i.
func (inv *Inventory) At(i int) Slot {
	if i < 0 || i >= Slots {
		return Slot{}
	}
	return inv.slots[i]
}

// Len returns the number of occupied slots.
func (inv *Inventory) Len() int {
	for i := range inv.slots {
		if inv.slots[i].ID == assets.ItemNone {
			return i
		}
	}
	return Slots
}

// Set forces slot i to the given contents. Used by the save codec when
// restoring a validated file; it does not re-compact.
func (inv *Inventory) Set(i int, s Slot) {
	if i < 0 || i >= Slots {
		return
	}
	inv.slots[i] = s
}
