package item

import (
	"testing"

	"vexdrift/assets"
)

func TestNewStartsWithPotions(t *testing.T) {
	inv := New()
	if got := inv.Count(assets.ItemHPPotionS); got != 2 {
		t.Errorf("starting potions = %d, want 2", got)
	}
	if inv.Len() != 1 {
		t.Errorf("starting slots = %d, want 1", inv.Len())
	}
}

func TestAddStacksBeforeNewSlot(t *testing.T) {
	inv := &Inventory{}
	inv.Add(assets.ItemHPPotionS, 1)
	inv.Add(assets.ItemSPCharge, 1)
	inv.Add(assets.ItemHPPotionS, 3)

	if got := inv.Count(assets.ItemHPPotionS); got != 4 {
		t.Errorf("potion count = %d, want 4", got)
	}
	if inv.Len() != 2 {
		t.Errorf("occupied slots = %d, want 2", inv.Len())
	}
}

func TestAddCapsStack(t *testing.T) {
	inv := &Inventory{}
	inv.Add(assets.ItemHPPotionS, 7)
	inv.Add(assets.ItemHPPotionS, 7)
	if got := inv.Count(assets.ItemHPPotionS); got != MaxStack {
		t.Errorf("stack = %d, want cap %d", got, MaxStack)
	}
}

func TestAddRejectsInvalid(t *testing.T) {
	inv := &Inventory{}
	if inv.Add(assets.ItemNone, 1) != AddFailed {
		t.Error("ItemNone accepted")
	}
	if inv.Add(assets.ItemCount, 1) != AddFailed {
		t.Error("out-of-range id accepted")
	}
	if inv.Add(assets.ItemHPPotionS, 0) != AddFailed {
		t.Error("zero quantity accepted")
	}
}

func TestAddOverflowConverts(t *testing.T) {
	inv := &Inventory{}
	// Fill all 8 slots with potion stacks, then add an id with no stack
	// of its own: it has nowhere to go and converts to credits.
	for i := 0; i < Slots; i++ {
		id := assets.ItemHPPotionS
		if i%2 == 1 {
			id = assets.ItemHPPotionL
		}
		inv.Set(i, Slot{ID: id, Qty: 1})
	}
	if got := inv.Add(assets.ItemSPCharge, 1); got != AddConverted {
		t.Fatalf("Add into full inventory = %v, want AddConverted", got)
	}
	// Merging into an existing stack still works when full.
	if got := inv.Add(assets.ItemHPPotionS, 1); got != AddStored {
		t.Fatalf("merge into full inventory = %v, want AddStored", got)
	}
}

func TestRemoveCompacts(t *testing.T) {
	inv := &Inventory{}
	inv.Add(assets.ItemHPPotionS, 2)
	inv.Add(assets.ItemSPCharge, 1)
	inv.Add(assets.ItemATKBoost, 1)

	if !inv.Remove(assets.ItemSPCharge, 1) {
		t.Fatal("Remove reported missing item")
	}
	// ATKBoost must have shifted down into slot 1.
	if inv.At(1).ID != assets.ItemATKBoost {
		t.Errorf("slot 1 = %v, want ATKBoost after compaction", inv.At(1).ID)
	}
	if inv.At(2).ID != assets.ItemNone {
		t.Errorf("slot 2 = %v, want empty", inv.At(2).ID)
	}
	if inv.Len() != 2 {
		t.Errorf("occupied slots = %d, want 2", inv.Len())
	}
}

func TestRemoveDecrementsWithoutCompacting(t *testing.T) {
	inv := &Inventory{}
	inv.Add(assets.ItemHPPotionS, 3)
	inv.Remove(assets.ItemHPPotionS, 1)
	if got := inv.Count(assets.ItemHPPotionS); got != 2 {
		t.Errorf("count = %d, want 2", got)
	}
	if inv.Len() != 1 {
		t.Errorf("occupied slots = %d, want 1", inv.Len())
	}
}

func TestRemoveLastSlotClearsTail(t *testing.T) {
	inv := &Inventory{}
	for i := 0; i < Slots; i++ {
		inv.Set(i, Slot{ID: assets.ItemHPPotionS, Qty: 1})
	}
	inv.Set(Slots-1, Slot{ID: assets.ItemSPCharge, Qty: 1})
	if !inv.Remove(assets.ItemSPCharge, 1) {
		t.Fatal("Remove reported missing item")
	}
	if inv.At(Slots - 1).ID != assets.ItemNone {
		t.Error("last slot not cleared after removing from a full inventory")
	}
}

func TestRemoveMissing(t *testing.T) {
	inv := New()
	if inv.Remove(assets.ItemFullRestore, 1) {
		t.Error("Remove reported success for an item not held")
	}
}

func TestCountEmptySlotEarlyExit(t *testing.T) {
	inv := &Inventory{}
	// A stale entry past an empty slot must be invisible to Count.
	inv.Set(2, Slot{ID: assets.ItemSPCharge, Qty: 5})
	if got := inv.Count(assets.ItemSPCharge); got != 0 {
		t.Errorf("Count saw past an empty slot: %d", got)
	}
}
