package particles

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventType string

const (
	EntityDamagedByEntity EventType = "ENTITY_DAMAGED_BY_ENTITY"
)

//Event is a typed domain event delivered by the host
type Event interface {
	Type() EventType
}

//Entity is the part of a world entity the triggers look at
type Entity struct {
	ID       uuid.UUID
	Player   bool
	Living   bool
	Location Location
	HeldItem string //item type name in the main hand
}

//DamageEvent is fired when one entity damages another
type DamageEvent struct {
	Damager Entity
	Target  Entity
}

func (DamageEvent) Type() EventType {
	return EntityDamagedByEntity
}

//Trigger is implemented by event driven styles. Actor maps the event to the actor
//whose effects may fire; Origin checks the trigger condition for that actor and
//returns where to generate.
type Trigger interface {
	EventTypes() []EventType
	Origin(ev Event, actor *Actor) (Vec, bool)
	Actor(ev Event) (uuid.UUID, bool)
}

type subscription struct {
	style   Style
	trigger Trigger
}

//Adapter routes domain events to event driven styles and dispatches their output
//immediately. Deliver may be called from any goroutine.
type Adapter struct {
	Log        *zap.SugaredLogger
	Registry   *Registry
	Policy     *Policy
	Store      ActorStore
	Dispatcher Dispatcher

	mu       sync.RWMutex
	handlers map[EventType][]subscription

	dispatched atomic.Int64
}

func NewAdapter(r *Registry, p *Policy, store ActorStore, d Dispatcher, log *zap.SugaredLogger) *Adapter {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Adapter{
		Log:        log,
		Registry:   r,
		Policy:     p,
		Store:      store,
		Dispatcher: d,
		handlers:   make(map[EventType][]subscription),
	}
}

//Subscribe wires style to the event types its trigger declares. The style must be
//registered as event driven.
func (a *Adapter) Subscribe(s Style, t Trigger) bool {
	if s == nil || t == nil {
		a.Log.Errorf("tried to subscribe a nil style or trigger")
		return false
	}
	if !a.Registry.IsEventDriven(s) {
		a.Log.Errorf("style %v is not registered as event driven, not subscribing", s.Name())
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, et := range t.EventTypes() {
		a.handlers[et] = append(a.handlers[et], subscription{style: s, trigger: t})
		a.Log.Debugf("style %v subscribed to %v", s.Name(), et)
	}
	return true
}

//Deliver runs every subscription for ev. Events nobody matches are ignored.
//Returns the number of dispatches made.
func (a *Adapter) Deliver(ev Event) int {
	if ev == nil {
		return 0
	}
	a.mu.RLock()
	subs := a.handlers[ev.Type()]
	a.mu.RUnlock()

	n := 0
	for _, sub := range subs {
		n += a.run(sub, ev)
	}
	a.dispatched.Add(int64(n))
	return n
}

func (a *Adapter) run(sub subscription, ev Event) int {
	id, ok := sub.trigger.Actor(ev)
	if !ok || a.Store == nil {
		return 0
	}
	actor, ok := a.Store.Actor(id)
	if !ok {
		return 0
	}
	cfgs := actor.State.EffectsForStyle(sub.style)
	if len(cfgs) == 0 {
		return 0
	}
	origin, ok := sub.trigger.Origin(ev, &actor)
	if !ok {
		return 0
	}
	n := 0
	for i := range cfgs {
		cfg := &cfgs[i]
		if a.Policy != nil && !a.Policy.CanDisplay(&actor, actor.Location.World, cfg) {
			continue
		}
		pts, ok := generate(a.Log, cfg, origin)
		if !ok || len(pts) == 0 || a.Dispatcher == nil {
			continue
		}
		a.Dispatcher.Display(&actor, cfg, origin, pts)
		n++
	}
	if n > 0 {
		a.Log.Debugw("event dispatched", "event", ev.Type(), "style", sub.style.Name(), "actor", actor.Name, "effects", n)
	}
	return n
}

//Dispatched returns the total number of event driven dispatches so far
func (a *Adapter) Dispatched() int64 {
	return a.dispatched.Load()
}
