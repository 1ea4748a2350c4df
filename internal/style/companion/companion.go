package companion

import (
	"math"

	"github.com/srliao/particles/pkg/particles"
)

const Name = "companion"

//Settings are the overridable parameters of the spiral
type Settings struct {
	NumParticles          int     `yaml:"NumParticles"`
	ParticlesPerIteration int     `yaml:"ParticlesPerIteration"`
	Size                  float64 `yaml:"Size"`
	XFactor               float64 `yaml:"XFactor"`
	YFactor               float64 `yaml:"YFactor"`
	ZFactor               float64 `yaml:"ZFactor"`
	XOffset               float64 `yaml:"XOffset"`
	YOffset               float64 `yaml:"YOffset"`
	ZOffset               float64 `yaml:"ZOffset"`
}

func DefaultSettings() Settings {
	return Settings{
		NumParticles:          150,
		ParticlesPerIteration: 5,
		Size:                  1.25,
		XFactor:               1.0,
		YFactor:               1.5,
		ZFactor:               1.0,
		YOffset:               -0.75,
	}
}

//companion traces a spherical spiral around the origin, one point per tick, and
//repeats that point ParticlesPerIteration times so it reads as a dense trail
type companion struct {
	particles.StyleTemplate
	s    Settings
	step int
}

func New(s Settings) particles.Style {
	if s.NumParticles <= 0 {
		s.NumParticles = DefaultSettings().NumParticles
	}
	if s.ParticlesPerIteration < 0 {
		s.ParticlesPerIteration = 0
	}
	return &companion{
		StyleTemplate: particles.NewStyleTemplate(Name, true, false, 1),
		s:             s,
	}
}

//Period is the number of ticks after which the step counter wraps back to 0: one
//full turn of t, the polar angle
func (c *companion) Period() int {
	return 2 * c.s.NumParticles
}

func (c *companion) Step() int {
	return c.step
}

//SetStep positions the animation; used to restore or test a given frame
func (c *companion) SetStep(v int) {
	c.step = ((v % c.Period()) + c.Period()) % c.Period()
}

func (c *companion) AdvanceTimer() {
	c.step = (c.step + 1) % c.Period()
}

func (c *companion) Generate(cfg *particles.EffectConfig, origin particles.Vec) []particles.Point {
	if cfg == nil {
		return nil
	}
	//an effect may carry its own spiral size
	size := cfg.Float("size", c.s.Size)
	t := (math.Pi / float64(c.s.NumParticles)) * float64(c.step)
	r := math.Sin(t) * size
	s := 2 * math.Pi * t

	v := particles.Vec{
		X: c.s.XFactor*r*math.Cos(s) + c.s.XOffset,
		Y: c.s.YFactor*size*math.Cos(t) + c.s.YOffset,
		Z: c.s.ZFactor*r*math.Sin(s) + c.s.ZOffset,
	}
	//the trail hangs on the opposite side of the origin
	p := particles.Point{Offset: v.Scale(-1)}

	out := make([]particles.Point, c.s.ParticlesPerIteration)
	for i := range out {
		out[i] = p
	}
	return out
}
