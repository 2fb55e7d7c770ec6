package inventory

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// BodyPart is a hit location. Each entity carries one armor value per part,
// indexed by this enumeration.
type BodyPart int

const (
	BodyHead BodyPart = iota
	BodyRightArm
	BodyLeftArm
	BodyChest
	BodyAbdomen
	BodyRightLeg
	BodyLeftLeg
)

// BodyPartCount is the number of body parts and the minimum length of an
// entity's armor value array.
const BodyPartCount = 7

var bodyPartNames = []string{
	BodyHead:     "head",
	BodyRightArm: "right_arm",
	BodyLeftArm:  "left_arm",
	BodyChest:    "chest",
	BodyAbdomen:  "abdomen",
	BodyRightLeg: "right_leg",
	BodyLeftLeg:  "left_leg",
}

// String returns the content name of the body part.
func (b BodyPart) String() string {
	if b < 0 || int(b) >= len(bodyPartNames) {
		return fmt.Sprintf("body_part(%d)", int(b))
	}
	return bodyPartNames[b]
}

// UnmarshalYAML decodes a body part from its content name.
func (b *BodyPart) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	for i, n := range bodyPartNames {
		if n == name {
			*b = BodyPart(i)
			return nil
		}
	}
	return fmt.Errorf("unknown body part %q", name)
}

// ShieldType selects the default set of body parts a shield covers.
type ShieldType int

const (
	ShieldNone ShieldType = iota
	ShieldBuckler
	ShieldRound
	ShieldKite
	ShieldTower
)

var shieldTypeNames = map[string]ShieldType{
	"none":    ShieldNone,
	"buckler": ShieldBuckler,
	"round":   ShieldRound,
	"kite":    ShieldKite,
	"tower":   ShieldTower,
}

// UnmarshalYAML decodes buckler, round, kite or tower.
func (s *ShieldType) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	v, ok := shieldTypeNames[name]
	if !ok {
		return fmt.Errorf("unknown shield type %q", name)
	}
	*s = v
	return nil
}

var shieldCoverage = map[ShieldType][]BodyPart{
	ShieldBuckler: {BodyLeftArm, BodyAbdomen},
	ShieldRound:   {BodyLeftArm, BodyAbdomen, BodyLeftLeg},
	ShieldKite:    {BodyLeftArm, BodyAbdomen, BodyLeftLeg},
	ShieldTower:   {BodyHead, BodyLeftArm, BodyAbdomen, BodyLeftLeg},
}

// ShieldCoverage returns the body parts a shield of type s protects.
//
// Postcondition: Returns nil for ShieldNone.
func ShieldCoverage(s ShieldType) []BodyPart {
	return shieldCoverage[s]
}
