package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/Dimillian/daggerfall-unity/internal/game/attribute"
	"github.com/Dimillian/daggerfall-unity/internal/game/calendar"
	"github.com/Dimillian/daggerfall-unity/internal/game/character"
	"github.com/Dimillian/daggerfall-unity/internal/game/progression"
	"github.com/Dimillian/daggerfall-unity/internal/game/travel"
)

// RegisterModules installs the rules global into L.
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: rules, rules.log and every formula binding are defined in L.
func (m *Manager) RegisterModules(L *lua.LState) {
	rules := L.NewTable()
	L.SetFuncs(rules, map[string]lua.LGFunction{
		"damage_modifier":           intFn(attribute.DamageModifier),
		"max_encumbrance":           intFn(attribute.MaxEncumbrance),
		"magic_resist":              intFn(attribute.MagicResist),
		"to_hit_modifier":           intFn(attribute.ToHitModifier),
		"hit_points_modifier":       intFn(attribute.HitPointsModifier),
		"healing_rate_modifier":     intFn(attribute.HealingRateModifier),
		"health_recovery_rate":      m.healthRecoveryRate,
		"fatigue_recovery_rate":     intFn(progression.FatigueRecoveryRate),
		"spell_point_recovery_rate": intFn(progression.SpellPointRecoveryRate),
		"hand_to_hand_min_damage":   intFn(progression.HandToHandMinDamage),
		"hand_to_hand_max_damage":   intFn(progression.HandToHandMaxDamage),

		"spell_points": func(L *lua.LState) int {
			L.Push(lua.LNumber(attribute.SpellPoints(L.CheckInt(1), float64(L.CheckNumber(2)))))
			return 1
		},

		"roll": func(L *lua.LState) int {
			L.Push(lua.LNumber(m.roller.Range(L.CheckInt(1), L.CheckInt(2))))
			return 1
		},
		"roll_max_health": func(L *lua.LState) int {
			L.Push(lua.LNumber(progression.RollMaxHealth(m.roller, L.CheckInt(1), L.CheckInt(2))))
			return 1
		},
		"roll_enemy_class_max_health": func(L *lua.LState) int {
			L.Push(lua.LNumber(progression.RollEnemyClassMaxHealth(m.roller, L.CheckInt(1), L.CheckInt(2))))
			return 1
		},
		"hit_points_per_level_up": func(L *lua.LState) int {
			L.Push(lua.LNumber(progression.HitPointsPerLevelUp(m.roller, L.CheckInt(1), L.CheckInt(2))))
			return 1
		},
		"skill_uses_for_advancement": func(L *lua.LState) int {
			n := progression.SkillUsesForAdvancement(L.CheckInt(1), L.CheckInt(2), float32(L.CheckNumber(3)), L.CheckInt(4))
			L.Push(lua.LNumber(n))
			return 1
		},
		"player_level": func(L *lua.LState) int {
			L.Push(lua.LNumber(progression.PlayerLevel(L.CheckInt(1), L.CheckInt(2))))
			return 1
		},

		"interior_lockpicking_chance": func(L *lua.LState) int {
			L.Push(lua.LNumber(progression.InteriorLockpickingChance(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3))))
			return 1
		},
		"exterior_lockpicking_chance": func(L *lua.LState) int {
			L.Push(lua.LNumber(progression.ExteriorLockpickingChance(L.CheckInt(1), L.CheckInt(2))))
			return 1
		},
		"pickpocketing_chance": func(L *lua.LState) int {
			L.Push(lua.LNumber(progression.PickpocketingChance(L.CheckInt(1), L.CheckInt(2), L.OptInt(3, 0), L.OptBool(4, false))))
			return 1
		},
		"skill_check": func(L *lua.LState) int {
			L.Push(lua.LBool(progression.SkillCheck(m.roller, L.CheckInt(1))))
			return 1
		},

		"trip_cost": func(L *lua.LState) int {
			cost := m.trips.CalculateTripCost(travel.TripParameters{
				LandMinutes:  float64(L.CheckNumber(1)),
				WaterMinutes: float64(L.CheckNumber(2)),
				Cautious:     L.OptBool(3, true),
				SleepAtInn:   L.OptBool(4, true),
				OnFoot:       L.OptBool(5, true),
			})
			L.Push(lua.LNumber(cost))
			return 1
		},
		"holiday_id": func(L *lua.LState) int {
			minutes := L.CheckInt64(1)
			if minutes < 0 {
				L.ArgError(1, "game minutes must be >= 0")
				return 0
			}
			L.Push(lua.LNumber(calendar.GetHolidayID(uint32(minutes), L.CheckInt(2))))
			return 1
		},
	})
	L.SetField(rules, "log", m.newLogModule(L))
	L.SetGlobal("rules", rules)
}

// healthRecoveryRate binds rules.health_recovery_rate(medical, endurance,
// max_health, rapid_healing, is_day, is_inside). rapid_healing is a career
// content name and defaults to none.
func (m *Manager) healthRecoveryRate(L *lua.LState) int {
	var healing character.RapidHealing
	if name := L.OptString(4, ""); name != "" {
		h, ok := character.ParseRapidHealing(name)
		if !ok {
			L.ArgError(4, "unknown rapid healing mode "+name)
			return 0
		}
		healing = h
	}
	env := restEnv{day: L.OptBool(5, false), inside: L.OptBool(6, true)}
	L.Push(lua.LNumber(progression.HealthRecoveryRate(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), healing, env)))
	return 1
}

type restEnv struct{ day, inside bool }

func (e restEnv) IsDay() bool    { return e.day }
func (e restEnv) IsInside() bool { return e.inside }

func (m *Manager) newLogModule(L *lua.LState) *lua.LTable {
	mod := L.NewTable()
	for name, log := range map[string]func(string, ...zap.Field){
		"debug": m.logger.Debug,
		"info":  m.logger.Info,
		"warn":  m.logger.Warn,
	} {
		L.SetField(mod, name, L.NewFunction(func(L *lua.LState) int {
			log(L.CheckString(1), zap.String("source", "lua"))
			return 0
		}))
	}
	return mod
}

// intFn adapts a single-int formula to a Lua function.
func intFn(f func(int) int) lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(lua.LNumber(f(L.CheckInt(1))))
		return 1
	}
}
