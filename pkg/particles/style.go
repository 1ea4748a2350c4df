package particles

//Style is a named procedural generator of emission points. Timer state lives on the
//style instance and is shared by every actor using it.
type Style interface {
	Name() string
	Fixable() bool
	ToggleWithMovement() bool
	UpdateInterval() float64 //default update interval in seconds
	//AdvanceTimer moves the style's animation one tick forward. Only the engine calls
	//this and only for tick driven styles.
	AdvanceTimer()
	//Generate returns the points to emit around origin for the current timer state. It
	//must not mutate the style and must return an empty slice on bad input.
	Generate(cfg *EffectConfig, origin Vec) []Point
}

//StyleTemplate carries the metadata every style shares. Concrete styles embed it and
//add their own timers and geometry.
type StyleTemplate struct {
	name     string
	fixable  bool
	toggle   bool
	interval float64
}

func NewStyleTemplate(name string, fixable, toggleWithMovement bool, interval float64) StyleTemplate {
	return StyleTemplate{
		name:     name,
		fixable:  fixable,
		toggle:   toggleWithMovement,
		interval: interval,
	}
}

func (t *StyleTemplate) Name() string {
	return t.name
}

func (t *StyleTemplate) Fixable() bool {
	return t.fixable
}

func (t *StyleTemplate) ToggleWithMovement() bool {
	return t.toggle
}

func (t *StyleTemplate) UpdateInterval() float64 {
	return t.interval
}

//SetUpdateInterval and SetFixable apply per style overrides from the settings file
func (t *StyleTemplate) SetUpdateInterval(v float64) {
	t.interval = v
}

func (t *StyleTemplate) SetFixable(v bool) {
	t.fixable = v
}
