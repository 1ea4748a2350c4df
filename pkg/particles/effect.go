package particles

import "strings"

//Effect is the particle type rendered at every emission point
type Effect int

//supported effects
const (
	AmbientEntityEffect Effect = iota
	AngryVillager
	Barrier
	Bubble
	Cloud
	Crit
	DamageIndicator
	DragonBreath
	DrippingLava
	DrippingWater
	Dust
	Enchant
	EnchantedHit
	EndRod
	Firework
	Flame
	Heart
	Nautilus
	Note
	Poof
	Portal
	Smoke
	Spit
	Splash
	SquidInk
	TotemOfUndying
	Witch
)

var EffectString = [...]string{
	"ambient_entity_effect",
	"angry_villager",
	"barrier",
	"bubble",
	"cloud",
	"crit",
	"damage_indicator",
	"dragon_breath",
	"dripping_lava",
	"dripping_water",
	"dust",
	"enchant",
	"enchanted_hit",
	"end_rod",
	"firework",
	"flame",
	"heart",
	"nautilus",
	"note",
	"poof",
	"portal",
	"smoke",
	"spit",
	"splash",
	"squid_ink",
	"totem_of_undying",
	"witch",
}

func (e Effect) String() string {
	if e < 0 || int(e) >= len(EffectString) {
		return "unknown"
	}
	return EffectString[e]
}

//Valid reports whether e is part of the supported catalogue
func (e Effect) Valid() bool {
	return e >= 0 && int(e) < len(EffectString)
}

//StrToEffect looks up an effect by name ignoring case; returns -1 if not found
func StrToEffect(s string) Effect {
	s = strings.ToLower(s)
	for i, v := range EffectString {
		if v == s {
			return Effect(i)
		}
	}
	return -1
}

//Effects returns every supported effect in catalogue order
func Effects() []Effect {
	r := make([]Effect, len(EffectString))
	for i := range EffectString {
		r[i] = Effect(i)
	}
	return r
}
