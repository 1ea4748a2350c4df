package swords

import (
	"strings"

	"github.com/google/uuid"
	"github.com/srliao/particles/pkg/particles"
)

const Name = "swords"

//Settings are the overridable parameters of the swords style
type Settings struct {
	Multiplier int      `yaml:"Multiplier"`
	Items      []string `yaml:"Items"` //held item types that trigger the style
}

func DefaultSettings() Settings {
	return Settings{
		Multiplier: 15,
		Items: []string{
			"WOOD_SWORD",
			"STONE_SWORD",
			"IRON_SWORD",
			"GOLD_SWORD",
			"GOLDEN_SWORD",
			"DIAMOND_SWORD",
			"TRIDENT",
		},
	}
}

//Swords bursts a dense copy of its base style on whatever the owner just hit with a
//sword. It has no timers; register it event driven with a stateless base.
type Swords struct {
	particles.StyleTemplate
	base       particles.Style
	multiplier int
	items      map[string]bool
}

func New(base particles.Style, s Settings) *Swords {
	if s.Multiplier <= 0 {
		s.Multiplier = 1
	}
	w := &Swords{
		StyleTemplate: particles.NewStyleTemplate(Name, false, false, 0),
		base:          base,
		multiplier:    s.Multiplier,
		items:         make(map[string]bool, len(s.Items)),
	}
	for _, v := range s.Items {
		w.items[strings.ToUpper(v)] = true
	}
	return w
}

func (w *Swords) AdvanceTimer() {}

//Generate repeats the base sequence cyclically until it is multiplier times as long
func (w *Swords) Generate(cfg *particles.EffectConfig, origin particles.Vec) []particles.Point {
	if w.base == nil || cfg == nil {
		return nil
	}
	base := w.base.Generate(cfg, origin)
	if len(base) == 0 {
		return nil
	}
	out := make([]particles.Point, len(base)*w.multiplier)
	for i := range out {
		out[i] = base[i%len(base)]
	}
	return out
}

func (w *Swords) EventTypes() []particles.EventType {
	return []particles.EventType{particles.EntityDamagedByEntity}
}

//Actor resolves the damaging player
func (w *Swords) Actor(ev particles.Event) (uuid.UUID, bool) {
	d, ok := ev.(particles.DamageEvent)
	if !ok || !d.Damager.Player || !d.Target.Living {
		return uuid.Nil, false
	}
	return d.Damager.ID, true
}

//Origin fires when the damager holds an item from the trigger list; the burst sits
//one block above the target's feet
func (w *Swords) Origin(ev particles.Event, a *particles.Actor) (particles.Vec, bool) {
	d, ok := ev.(particles.DamageEvent)
	if !ok {
		return particles.Vec{}, false
	}
	item := d.Damager.HeldItem
	if item == "" && a != nil {
		item = a.HeldItem
	}
	if !w.items[strings.ToUpper(item)] {
		return particles.Vec{}, false
	}
	return d.Target.Location.Vec.Add(particles.Vec{Y: 1}), true
}
