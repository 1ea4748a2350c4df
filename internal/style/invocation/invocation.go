package invocation

import (
	"math"

	"github.com/srliao/particles/pkg/particles"
)

const Name = "invocation"

//ring is drawn on ticks where circleStep is a multiple of this
const ringEvery = 5

const height = -0.9

const defaultSpeed = 0.2

type Settings struct {
	Points   int     `yaml:"Points"`
	Radius   float64 `yaml:"Radius"`
	NumSteps int     `yaml:"NumSteps"`
}

func DefaultSettings() Settings {
	return Settings{
		Points:   6,
		Radius:   3.5,
		NumSteps: 120,
	}
}

//invocation spins two sets of points in opposite directions around the origin and
//lays down a full ring every few ticks. Orbit points face inward and carry an effect
//dependent speed.
type invocation struct {
	particles.StyleTemplate
	s Settings

	step       float64 //orbit angle in radians
	circleStep int
}

func New(s Settings) particles.Style {
	d := DefaultSettings()
	if s.NumSteps <= 0 {
		s.NumSteps = d.NumSteps
	}
	if s.Points < 0 {
		s.Points = 0
	}
	return &invocation{
		StyleTemplate: particles.NewStyleTemplate(Name, true, true, 0.5),
		s:             s,
	}
}

//Period is the number of ticks after which both timers return to 0
func (v *invocation) Period() int {
	return v.s.NumSteps
}

func (v *invocation) Timers() (angle float64, circleStep int) {
	return v.step, v.circleStep
}

//SetCircleStep moves the animation to the given frame
func (v *invocation) SetCircleStep(n int) {
	v.circleStep = ((n % v.s.NumSteps) + v.s.NumSteps) % v.s.NumSteps
	v.step = math.Pi * 2 / float64(v.s.NumSteps) * float64(v.circleStep)
}

func (v *invocation) AdvanceTimer() {
	v.circleStep = (v.circleStep + 1) % v.s.NumSteps
	if v.circleStep == 0 {
		v.step = 0
		return
	}
	v.step += math.Pi * 2 / float64(v.s.NumSteps)
}

//speed is the outward push of an orbit point for effect e
func (v *invocation) speed(e particles.Effect) float64 {
	switch e {
	case particles.Crit, particles.DamageIndicator, particles.EnchantedHit:
		return 2
	case particles.DragonBreath:
		return 0.01
	case particles.Enchant, particles.Nautilus, particles.Portal:
		return v.s.Radius * 2
	case particles.EndRod, particles.Smoke, particles.SquidInk:
		return 0.3
	case particles.Firework, particles.Spit, particles.Splash:
		return 0.5
	case particles.Poof:
		return 0.4
	case particles.TotemOfUndying:
		return 1.25
	}
	return defaultSpeed
}

func (v *invocation) Generate(cfg *particles.EffectConfig, origin particles.Vec) []particles.Point {
	if cfg == nil {
		return nil
	}
	n := 2 * v.s.Points
	if v.circleStep%ringEvery == 0 {
		n += v.s.NumSteps
	}
	out := make([]particles.Point, 0, n)
	speed := v.speed(cfg.Effect)

	if v.circleStep%ringEvery == 0 {
		for i := 0; i < v.s.NumSteps; i++ {
			a := math.Pi * 2 * (float64(i) / float64(v.s.NumSteps))
			out = append(out, particles.Point{
				Offset: particles.Vec{X: math.Cos(a) * v.s.Radius, Y: height, Z: math.Sin(a) * v.s.Radius},
			})
		}
	}

	//clockwise
	for i := 0; i < v.s.Points; i++ {
		out = append(out, v.orbit(v.step+math.Pi*2*(float64(i)/float64(v.s.Points)), speed))
	}
	//counter clockwise
	for i := 0; i > -v.s.Points; i-- {
		out = append(out, v.orbit(-v.step+math.Pi*2*(float64(i)/float64(v.s.Points)), speed))
	}
	return out
}

func (v *invocation) orbit(a float64, speed float64) particles.Point {
	dx := math.Cos(a) * v.s.Radius
	dz := math.Sin(a) * v.s.Radius
	facing := math.Atan2(dz, dx)
	return particles.Point{
		Offset:      particles.Vec{X: dx, Y: height, Z: dz},
		Direction:   particles.Vec{X: -math.Cos(facing), Z: -math.Sin(facing)},
		Speed:       speed,
		Directional: true,
	}
}
