package inventory_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/Dimillian/daggerfall-unity/internal/game/inventory"
)

func TestEquipTable_ZeroValueIsEmpty(t *testing.T) {
	var e inventory.EquipTable
	for s := inventory.SlotHead; s <= inventory.SlotLeftHand; s++ {
		if e.Item(s) != nil {
			t.Fatalf("expected empty slot %s", s)
		}
	}
	if e.Shield() != nil {
		t.Fatal("expected no shield")
	}
	var nilTable *inventory.EquipTable
	if nilTable.Item(inventory.SlotHead) != nil {
		t.Fatal("nil table must read as empty")
	}
}

func TestEquipTable_EquipReturnsPrevious(t *testing.T) {
	var e inventory.EquipTable
	first := &inventory.Item{Name: "Iron Helm", Kind: inventory.KindArmor}
	second := &inventory.Item{Name: "Steel Helm", Kind: inventory.KindArmor}
	if prev := e.Equip(inventory.SlotHead, first); prev != nil {
		t.Fatalf("expected nil previous, got %v", prev)
	}
	if prev := e.Equip(inventory.SlotHead, second); prev != first {
		t.Fatalf("expected first helm back, got %v", prev)
	}
	if got := e.Unequip(inventory.SlotHead); got != second {
		t.Fatalf("expected second helm, got %v", got)
	}
	if e.Item(inventory.SlotHead) != nil {
		t.Fatal("slot should be empty after unequip")
	}
}

func TestEquipTable_WeaponAndShieldAccessors(t *testing.T) {
	var e inventory.EquipTable
	sword := &inventory.Item{Name: "Longsword", Kind: inventory.KindWeapon}
	kite := &inventory.Item{Name: "Kite Shield", Kind: inventory.KindShield, ShieldType: inventory.ShieldKite}
	e.Equip(inventory.SlotRightHand, sword)
	e.Equip(inventory.SlotLeftHand, kite)

	if e.Weapon(inventory.SlotRightHand) != sword {
		t.Fatal("expected sword in right hand")
	}
	if e.Weapon(inventory.SlotLeftHand) != nil {
		t.Fatal("a shield is not a weapon")
	}
	if e.Shield() != kite {
		t.Fatal("expected kite shield")
	}
}

func TestEquipTable_CloneIsIndependent(t *testing.T) {
	var e inventory.EquipTable
	e.Equip(inventory.SlotChest, &inventory.Item{Name: "Cuirass", Kind: inventory.KindArmor, Condition: 50, MaxCondition: 50})
	c := e.Clone()
	c.Item(inventory.SlotChest).LowerCondition(10)
	if got := e.Item(inventory.SlotChest).Condition; got != 50 {
		t.Fatalf("original condition changed to %d", got)
	}
	if got := c.Item(inventory.SlotChest).Condition; got != 40 {
		t.Fatalf("clone condition = %d, want 40", got)
	}
}

func TestSlotForBodyPart_MapsEveryPart(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		p := inventory.BodyPart(rapid.IntRange(int(inventory.BodyHead), int(inventory.BodyLeftLeg)).Draw(rt, "part"))
		slot, ok := inventory.SlotForBodyPart(p)
		if !ok {
			rt.Fatalf("no slot for %s", p)
		}
		if slot == inventory.SlotRightHand || slot == inventory.SlotLeftHand {
			rt.Fatalf("body part %s mapped to a hand slot", p)
		}
	})
	if _, ok := inventory.SlotForBodyPart(inventory.BodyPart(7)); ok {
		t.Fatal("out-of-range part must not map to a slot")
	}
	if _, ok := inventory.SlotForBodyPart(inventory.BodyPart(-1)); ok {
		t.Fatal("negative part must not map to a slot")
	}
}

func TestParseSlot(t *testing.T) {
	s, err := inventory.ParseSlot("left_hand")
	if err != nil || s != inventory.SlotLeftHand {
		t.Fatalf("ParseSlot(left_hand) = %v, %v", s, err)
	}
	if _, err := inventory.ParseSlot("belt"); err == nil {
		t.Fatal("expected error for unknown slot")
	}
}
