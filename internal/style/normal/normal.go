package normal

import (
	"github.com/srliao/particles/pkg/particles"
)

const Name = "normal"

//shape is the per effect placement of the single normal point
type shape struct {
	y      float64 //vertical offset from the origin
	spread float64 //random spread radius on every axis
	speed  float64
}

var defaultShape = shape{spread: 0.4}

var shapes = map[particles.Effect]shape{
	particles.AmbientEntityEffect: {spread: 0.6},
	particles.AngryVillager:       {y: 0.75, spread: 0.6},
	particles.Barrier:             {y: 1.5},
	particles.Cloud:               {},
	particles.Crit:                {spread: 0.4, speed: 0.1},
	particles.DamageIndicator:     {spread: 0.4, speed: 0.1},
	particles.DragonBreath:        {spread: 0.4, speed: 0.01},
	particles.DrippingLava:        {spread: 0.6},
	particles.DrippingWater:       {spread: 0.6},
	particles.Dust:                {spread: 0.6},
	particles.Enchant:             {spread: 0.6, speed: 0.05},
	particles.EnchantedHit:        {spread: 0.4, speed: 0.1},
	particles.EndRod:              {spread: 0.6, speed: 0.01},
	particles.Firework:            {spread: 0.4, speed: 0.05},
	particles.Flame:               {spread: 0.1, speed: 0.05},
	particles.Heart:               {y: 1.8},
	particles.Note:                {y: 1.8, spread: 0.6},
	particles.Portal:              {spread: 0.5, speed: 0.05},
	particles.Smoke:               {spread: 0.4},
	particles.Witch:               {spread: 0.6},
}

//Settings are the overridable parameters of the normal style
type Settings struct {
	Count int `yaml:"Count"` //points per call
}

func DefaultSettings() Settings {
	return Settings{Count: 1}
}

//normal places the effect right on the origin with an effect dependent spread. It
//has no timers.
type normal struct {
	particles.StyleTemplate
	count int
}

func New(s Settings) particles.Style {
	if s.Count <= 0 {
		s.Count = 1
	}
	return &normal{
		StyleTemplate: particles.NewStyleTemplate(Name, true, false, 0),
		count:         s.Count,
	}
}

func (n *normal) AdvanceTimer() {}

func (n *normal) Generate(cfg *particles.EffectConfig, origin particles.Vec) []particles.Point {
	if cfg == nil || !cfg.Effect.Valid() {
		return nil
	}
	sh, ok := shapes[cfg.Effect]
	if !ok {
		sh = defaultShape
	}
	p := particles.Point{
		Offset:    particles.Vec{Y: sh.y},
		Direction: particles.Vec{X: sh.spread, Y: sh.spread, Z: sh.spread},
		Speed:     sh.speed,
	}
	out := make([]particles.Point, n.count)
	for i := range out {
		out[i] = p
	}
	return out
}
