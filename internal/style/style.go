//Package style wires the built in styles into a registry
package style

import (
	"fmt"

	"github.com/srliao/particles/internal/style/companion"
	"github.com/srliao/particles/internal/style/invocation"
	"github.com/srliao/particles/internal/style/normal"
	"github.com/srliao/particles/internal/style/swords"
	"github.com/srliao/particles/pkg/particles"
	"gopkg.in/yaml.v2"
)

//common are the overrides every style accepts
type common struct {
	UpdateInterval *float64 `yaml:"UpdateInterval"`
	Fixable        *bool    `yaml:"Fixable"`
}

type tunable interface {
	SetUpdateInterval(v float64)
	SetFixable(v bool)
}

//RegisterDefaults registers the built in styles in their canonical order and
//subscribes the event driven ones to a. Bad overrides are logged and the defaults
//kept. a may be nil when only the registry is needed.
func RegisterDefaults(r *particles.Registry, a *particles.Adapter, overrides map[string]map[string]interface{}) {
	ns := normal.DefaultSettings()
	load(r, overrides, normal.Name, &ns)
	base := normal.New(ns)
	r.Register(tune(r, overrides, base))

	cs := companion.DefaultSettings()
	load(r, overrides, companion.Name, &cs)
	r.Register(tune(r, overrides, companion.New(cs)))

	is := invocation.DefaultSettings()
	load(r, overrides, invocation.Name, &is)
	r.Register(tune(r, overrides, invocation.New(is)))

	ss := swords.DefaultSettings()
	load(r, overrides, swords.Name, &ss)
	sw := swords.New(base, ss)
	tune(r, overrides, sw)
	r.RegisterEventDriven(sw)
	if a != nil {
		a.Subscribe(sw, sw)
	}
}

//load applies the override for name to out. The override is all or nothing: yaml
//keeps decoding past a bad key, so it goes into a copy first.
func load[T any](r *particles.Registry, overrides map[string]map[string]interface{}, name string, out *T) {
	raw, ok := overrides[name]
	if !ok {
		return
	}
	tmp := *out
	if err := decode(raw, &tmp); err != nil {
		r.Log.Errorf("invalid settings for style %v, using defaults: %v", name, err)
		return
	}
	*out = tmp
}

func tune(r *particles.Registry, overrides map[string]map[string]interface{}, s particles.Style) particles.Style {
	raw, ok := overrides[s.Name()]
	if !ok {
		return s
	}
	var c common
	if err := decode(raw, &c); err != nil {
		r.Log.Errorf("invalid settings for style %v, keeping interval and fixable: %v", s.Name(), err)
		return s
	}
	t, ok := s.(tunable)
	if !ok {
		return s
	}
	if c.UpdateInterval != nil {
		t.SetUpdateInterval(*c.UpdateInterval)
	}
	if c.Fixable != nil {
		t.SetFixable(*c.Fixable)
	}
	return s
}

//decode re-reads a loosely typed yaml section into a settings struct
func decode(raw map[string]interface{}, out interface{}) error {
	b, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return nil
}
