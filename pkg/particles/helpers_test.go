package particles

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

//fakeStyle counts timer steps and returns a fixed sequence
type fakeStyle struct {
	StyleTemplate
	ticks  int
	pts    []Point
	panics bool
}

func newFake(name string, pts ...Point) *fakeStyle {
	return &fakeStyle{
		StyleTemplate: NewStyleTemplate(name, true, false, 0),
		pts:           pts,
	}
}

func (f *fakeStyle) AdvanceTimer() {
	f.ticks++
}

func (f *fakeStyle) Generate(cfg *EffectConfig, origin Vec) []Point {
	if f.panics {
		panic("boom")
	}
	return append([]Point(nil), f.pts...)
}

//funcStyle holds a func so its dynamic type is not comparable
type funcStyle struct {
	name string
	gen  func() []Point
}

func (f funcStyle) Name() string {
	return f.name
}

func (f funcStyle) Fixable() bool {
	return false
}

func (f funcStyle) ToggleWithMovement() bool {
	return false
}

func (f funcStyle) UpdateInterval() float64 {
	return 0
}

func (f funcStyle) AdvanceTimer() {}

func (f funcStyle) Generate(*EffectConfig, Vec) []Point {
	return f.gen()
}

type display struct {
	actor  string
	style  string
	effect Effect
	origin Vec
	n      int
}

//recorder is a Dispatcher safe for concurrent use
type recorder struct {
	mu    sync.Mutex
	calls []display
}

func (r *recorder) Display(a *Actor, cfg *EffectConfig, origin Vec, pts []Point) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, display{
		actor:  a.Name,
		style:  cfg.Style.Name(),
		effect: cfg.Effect,
		origin: origin,
		n:      len(pts),
	})
}

func (r *recorder) all() []display {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]display(nil), r.calls...)
}

func observed() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core).Sugar(), logs
}
