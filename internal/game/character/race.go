package character

import "gopkg.in/yaml.v3"

// Race is a playable race. Only the player carries one.
type Race int

const (
	RaceNone Race = iota
	Breton
	Redguard
	Nord
	DarkElf
	HighElf
	WoodElf
	Khajiit
	Argonian
)

var raceNames = map[string]Race{
	"none":     RaceNone,
	"breton":   Breton,
	"redguard": Redguard,
	"nord":     Nord,
	"dark_elf": DarkElf,
	"high_elf": HighElf,
	"wood_elf": WoodElf,
	"khajiit":  Khajiit,
	"argonian": Argonian,
}

// UnmarshalYAML decodes a race from its snake_case content name.
func (r *Race) UnmarshalYAML(node *yaml.Node) error {
	return decodeName(node, "race", raceNames, r)
}
