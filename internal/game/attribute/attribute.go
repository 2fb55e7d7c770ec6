// Package attribute holds the seven primary attributes and the derived
// modifiers computed from them.
package attribute

// Set holds the seven primary attribute values of an entity.
// Values are nominally 0-100 but are not clamped.
type Set struct {
	Strength     int `yaml:"strength"`
	Intelligence int `yaml:"intelligence"`
	Willpower    int `yaml:"willpower"`
	Agility      int `yaml:"agility"`
	Endurance    int `yaml:"endurance"`
	Speed        int `yaml:"speed"`
	Luck         int `yaml:"luck"`
}

// FloorDiv divides a by b rounding toward negative infinity.
//
// Precondition: b != 0.
// Postcondition: Returns floor(a / b) on the true quotient, e.g. FloorDiv(-1, 5) == -1.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
