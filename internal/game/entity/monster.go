package entity

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MonsterCareer indexes the fixed monster roster. Combat singles out
// MonsterSkeletalWarrior for its weapon-material rules.
type MonsterCareer int

const (
	MonsterRat MonsterCareer = iota
	MonsterImp
	MonsterSpriggan
	MonsterGiantBat
	MonsterGrizzlyBear
	MonsterSabertoothTiger
	MonsterSpider
	MonsterOrc
	MonsterCentaur
	MonsterWerewolf
	MonsterNymph
	MonsterSlaughterfish
	MonsterOrcSergeant
	MonsterHarpy
	MonsterWereboar
	MonsterSkeletalWarrior
	MonsterGiant
	MonsterZombie
	MonsterGhost
	MonsterMummy
	MonsterGiantScorpion
	MonsterOrcShaman
	MonsterGargoyle
	MonsterWraith
	MonsterOrcWarlord
	MonsterFrostDaedra
	MonsterFireDaedra
	MonsterDaedroth
	MonsterVampire
	MonsterDaedraSeducer
	MonsterVampireAncient
	MonsterDaedraLord
	MonsterLich
	MonsterAncientLich
	MonsterDragonling
	MonsterFireAtronach
	MonsterIronAtronach
	MonsterFleshAtronach
	MonsterIceAtronach
	MonsterHorse
	MonsterDragonlingAlternate
	MonsterDreugh
	MonsterLamia
)

var monsterNames = []string{
	"rat", "imp", "spriggan", "giant_bat", "grizzly_bear", "sabertooth_tiger",
	"spider", "orc", "centaur", "werewolf", "nymph", "slaughterfish",
	"orc_sergeant", "harpy", "wereboar", "skeletal_warrior", "giant", "zombie",
	"ghost", "mummy", "giant_scorpion", "orc_shaman", "gargoyle", "wraith",
	"orc_warlord", "frost_daedra", "fire_daedra", "daedroth", "vampire",
	"daedra_seducer", "vampire_ancient", "daedra_lord", "lich", "ancient_lich",
	"dragonling", "fire_atronach", "iron_atronach", "flesh_atronach",
	"ice_atronach", "horse", "dragonling_alternate", "dreugh", "lamia",
}

// String returns the content name of the monster.
func (m MonsterCareer) String() string {
	if m < 0 || int(m) >= len(monsterNames) {
		return fmt.Sprintf("monster(%d)", int(m))
	}
	return monsterNames[m]
}

// UnmarshalYAML decodes a monster from its snake_case content name.
func (m *MonsterCareer) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	for i, n := range monsterNames {
		if n == name {
			*m = MonsterCareer(i)
			return nil
		}
	}
	return fmt.Errorf("unknown monster %q", name)
}
