package particles

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"
)

//Engine drives the tick loop: it advances style timers and displays every actor's
//tick driven effects. Ticks run on one goroutine and never overlap.
type Engine struct {
	Log        *zap.SugaredLogger
	Registry   *Registry
	Policy     *Policy
	Store      ActorStore
	Dispatcher Dispatcher
	//T is the number of ticks run so far
	T int

	stats    Stats
	tasks    []Task
	interval time.Duration
}

//Stats counts engine output per style name
type Stats struct {
	Ticks      int
	Dispatches map[string]int
	Points     map[string]int
	Skipped    int //effects not displayed because of world or permission checks
	Failures   int //generation calls that panicked
}

func newStats() Stats {
	return Stats{
		Dispatches: make(map[string]int),
		Points:     make(map[string]int),
	}
}

func NewEngine(s Settings, r *Registry, store ActorStore, d Dispatcher, log *zap.SugaredLogger) *Engine {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	e := &Engine{
		Log:        log,
		Registry:   r,
		Policy:     NewPolicy(s, r),
		Store:      store,
		Dispatcher: d,
		stats:      newStats(),
		interval:   s.TickInterval,
	}
	if e.interval <= 0 {
		e.interval = DefaultSettings().TickInterval
	}
	return e
}

//Interval is the effective tick interval, after the default replaced a non positive setting
func (e *Engine) Interval() time.Duration {
	return e.interval
}

//Frame formats the current tick for log lines
func (e *Engine) Frame() string {
	return strconv.Itoa(int(time.Duration(e.T)*e.interval/time.Millisecond)) + "ms|" + strconv.Itoa(e.T)
}

//AdvanceAllTimers steps every tick driven style's timer once, in registration order.
//This is the only place timers are written.
func (e *Engine) AdvanceAllTimers() {
	for _, s := range e.Registry.TickDriven() {
		s.AdvanceTimer()
	}
}

//Tick runs one full update: timers, due tasks, then display for every actor
func (e *Engine) Tick() {
	e.AdvanceAllTimers()
	e.runTasks()
	if e.Store != nil {
		for _, a := range e.Store.Actors() {
			e.displayActor(&a)
		}
	}
	e.T++
	e.stats.Ticks++
}

//Run executes n ticks back to back and returns the collected stats
func (e *Engine) Run(n int) Stats {
	for i := 0; i < n; i++ {
		e.Tick()
	}
	return e.Stats()
}

//Start ticks at the configured interval until ctx is cancelled
func (e *Engine) Start(ctx context.Context) error {
	t := time.NewTicker(e.interval)
	defer t.Stop()
	e.Log.Infof("[%v] engine started, interval %v, %v styles", e.Frame(), e.interval, len(e.Registry.List()))
	for {
		select {
		case <-ctx.Done():
			e.Log.Infof("[%v] engine stopped", e.Frame())
			return ctx.Err()
		case <-t.C:
			if ctx.Err() != nil {
				continue
			}
			e.Tick()
		}
	}
}

//Stats returns a copy of the counters. Call it from the tick goroutine or after Run
//or Start returned.
func (e *Engine) Stats() Stats {
	s := newStats()
	s.Ticks = e.stats.Ticks
	s.Skipped = e.stats.Skipped
	s.Failures = e.stats.Failures
	for k, v := range e.stats.Dispatches {
		s.Dispatches[k] = v
	}
	for k, v := range e.stats.Points {
		s.Points[k] = v
	}
	return s
}

func (e *Engine) displayActor(a *Actor) {
	for i := range a.State.Effects {
		cfg := &a.State.Effects[i]
		if !e.tickDriven(cfg.Style) {
			continue
		}
		e.display(a, cfg, a.Location)
	}
	for i := range a.State.Fixed {
		f := &a.State.Fixed[i]
		if !e.tickDriven(f.Config.Style) || !f.Config.Style.Fixable() {
			continue
		}
		e.display(a, &f.Config, f.Location)
	}
}

func (e *Engine) tickDriven(s Style) bool {
	return e.Registry.Contains(s) && !e.Registry.IsEventDriven(s)
}

func (e *Engine) display(a *Actor, cfg *EffectConfig, loc Location) {
	name := cfg.Style.Name()
	if !e.Policy.CanDisplay(a, loc.World, cfg) {
		e.stats.Skipped++
		return
	}
	pts, ok := generate(e.Log, cfg, loc.Vec)
	if !ok {
		e.stats.Failures++
		return
	}
	if len(pts) == 0 || e.Dispatcher == nil {
		return
	}
	e.Dispatcher.Display(a, cfg, loc.Vec, pts)
	e.stats.Dispatches[name]++
	e.stats.Points[name] += len(pts)
}

//generate calls the config's style, turning a panic into an empty result so one bad
//effect cannot stop the others
func generate(log *zap.SugaredLogger, cfg *EffectConfig, origin Vec) (pts []Point, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("style %v failed generating effect %v (id %v) for %v: %v", cfg.Style.Name(), cfg.Effect, cfg.ID, cfg.Owner, r)
			pts, ok = nil, false
		}
	}()
	return cfg.Style.Generate(cfg, origin), true
}
