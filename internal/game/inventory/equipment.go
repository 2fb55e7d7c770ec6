package inventory

import "fmt"

// EquipSlot identifies a place an item can be worn or held. The armor slots
// share their order with BodyPart.
type EquipSlot int

const (
	SlotHead EquipSlot = iota
	SlotRightArm
	SlotLeftArm
	SlotChest
	SlotAbdomen
	SlotRightLeg
	SlotLeftLeg
	SlotRightHand
	SlotLeftHand
)

var slotDisplayNames = []string{
	SlotHead:      "Head",
	SlotRightArm:  "Right Arm",
	SlotLeftArm:   "Left Arm",
	SlotChest:     "Chest",
	SlotAbdomen:   "Abdomen",
	SlotRightLeg:  "Right Leg",
	SlotLeftLeg:   "Left Leg",
	SlotRightHand: "Right Hand",
	SlotLeftHand:  "Left Hand",
}

var slotNames = []string{
	SlotHead:      "head",
	SlotRightArm:  "right_arm",
	SlotLeftArm:   "left_arm",
	SlotChest:     "chest",
	SlotAbdomen:   "abdomen",
	SlotRightLeg:  "right_leg",
	SlotLeftLeg:   "left_leg",
	SlotRightHand: "right_hand",
	SlotLeftHand:  "left_hand",
}

// ParseSlot returns the EquipSlot for a snake_case content name.
//
// Postcondition: Returns an error iff name is not a known slot.
func ParseSlot(name string) (EquipSlot, error) {
	for i, n := range slotNames {
		if n == name {
			return EquipSlot(i), nil
		}
	}
	return 0, fmt.Errorf("unknown equip slot %q", name)
}

// String returns the human-readable label of the slot.
func (s EquipSlot) String() string {
	if s < 0 || int(s) >= len(slotDisplayNames) {
		return fmt.Sprintf("slot(%d)", int(s))
	}
	return slotDisplayNames[s]
}

// SlotForBodyPart returns the armor slot that covers body part p.
//
// Postcondition: ok is false iff p is outside the BodyPart enumeration.
func SlotForBodyPart(p BodyPart) (slot EquipSlot, ok bool) {
	if p < BodyHead || p > BodyLeftLeg {
		return 0, false
	}
	return EquipSlot(p), true
}

// EquipTable maps each occupied slot to its item. The zero value is an empty
// table ready for use.
type EquipTable struct {
	items map[EquipSlot]*Item
}

// Equip places item in slot and returns the item it replaced, if any.
//
// Precondition: item must not be nil.
func (t *EquipTable) Equip(slot EquipSlot, item *Item) *Item {
	if t.items == nil {
		t.items = make(map[EquipSlot]*Item)
	}
	prev := t.items[slot]
	t.items[slot] = item
	return prev
}

// Unequip empties slot and returns the item that was there, if any.
func (t *EquipTable) Unequip(slot EquipSlot) *Item {
	prev := t.items[slot]
	delete(t.items, slot)
	return prev
}

// Item returns the item in slot, or nil when the slot is empty.
func (t *EquipTable) Item(slot EquipSlot) *Item {
	if t == nil {
		return nil
	}
	return t.items[slot]
}

// Shield returns the left-hand item when it is a shield, or nil.
func (t *EquipTable) Shield() *Item {
	if it := t.Item(SlotLeftHand); it != nil && it.Kind == KindShield {
		return it
	}
	return nil
}

// Weapon returns the weapon held in slot, or nil when the slot is empty or
// holds something other than a weapon.
func (t *EquipTable) Weapon(slot EquipSlot) *Item {
	if it := t.Item(slot); it != nil && it.Kind == KindWeapon {
		return it
	}
	return nil
}

// Clone returns a deep copy. Items are copied so wear applied to the clone
// does not reach the original.
//
// Postcondition: the returned table shares no *Item with t.
func (t *EquipTable) Clone() EquipTable {
	var out EquipTable
	if t == nil {
		return out
	}
	for slot, it := range t.items {
		out.Equip(slot, it.Clone())
	}
	return out
}
