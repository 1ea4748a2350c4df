package particles

import (
	"reflect"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

//Registry holds every known style in registration order. Styles are registered once
//during startup, before the engine ticks or any event is delivered.
type Registry struct {
	Log *zap.SugaredLogger

	styles      []Style
	byName      map[string]Style
	eventDriven map[string]bool
}

func NewRegistry(log *zap.SugaredLogger) *Registry {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Registry{
		Log:         log,
		byName:      make(map[string]Style),
		eventDriven: make(map[string]bool),
	}
}

//key folds case. A Caser keeps state between calls so each lookup gets its own.
func (r *Registry) key(name string) string {
	return cases.Fold().String(name)
}

//Register adds a style to the update loop. Duplicates are logged and dropped; the
//first registration for a name stays authoritative.
func (r *Registry) Register(s Style) {
	r.add(s)
}

//RegisterEventDriven registers a style that is skipped by the update loop and only
//generated when its trigger fires
func (r *Registry) RegisterEventDriven(s Style) {
	if r.add(s) {
		r.eventDriven[r.key(s.Name())] = true
	}
}

func (r *Registry) add(s Style) bool {
	if s == nil {
		r.Log.Errorf("tried to register a nil style")
		return false
	}
	for _, v := range r.styles {
		if sameStyle(v, s) {
			r.Log.Errorf("tried to register the same style twice: %v", s.Name())
			return false
		}
	}
	k := r.key(s.Name())
	if v, ok := r.byName[k]; ok {
		r.Log.Errorf("tried to register two styles with the same name spelling: %v (already registered as %v)", s.Name(), v.Name())
		return false
	}
	r.styles = append(r.styles, s)
	r.byName[k] = s
	r.Log.Debugw("style registered", "name", s.Name(), "fixable", s.Fixable())
	return true
}

//sameStyle compares identities without panicking on non comparable dynamic types
func sameStyle(a, b Style) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

//IsEventDriven reports whether s was registered through RegisterEventDriven
func (r *Registry) IsEventDriven(s Style) bool {
	if !r.Contains(s) {
		return false
	}
	return r.eventDriven[r.key(s.Name())]
}

//List returns all registered styles in registration order
func (r *Registry) List() []Style {
	out := make([]Style, len(r.styles))
	copy(out, r.styles)
	return out
}

//TickDriven returns the styles advanced by the update loop, in registration order
func (r *Registry) TickDriven() []Style {
	out := make([]Style, 0, len(r.styles))
	for _, s := range r.styles {
		if !r.eventDriven[r.key(s.Name())] {
			out = append(out, s)
		}
	}
	return out
}

//Lookup finds a style by name ignoring case
func (r *Registry) Lookup(name string) (Style, bool) {
	s, ok := r.byName[r.key(name)]
	return s, ok
}

func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.styles))
	for _, s := range r.styles {
		out = append(out, s.Name())
	}
	return out
}

//Contains reports whether s itself (not just a style with the same name) is registered
func (r *Registry) Contains(s Style) bool {
	if s == nil {
		return false
	}
	v, ok := r.byName[r.key(s.Name())]
	return ok && sameStyle(v, s)
}
