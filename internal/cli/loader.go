package cli

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/srliao/particles/internal/style"
	"github.com/srliao/particles/pkg/particles"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

//LoadProfile reads the yaml profile at path over the defaults, then applies
//environment overrides. An empty path yields the defaults.
func LoadProfile(path string) (particles.Profile, error) {
	p := particles.DefaultProfile()
	if path != "" {
		source, err := os.ReadFile(path)
		if err != nil {
			return p, fmt.Errorf("read profile: %w", err)
		}
		if err := yaml.Unmarshal(source, &p); err != nil {
			return p, fmt.Errorf("parse profile %v: %w", path, err)
		}
	}
	if err := env.Parse(&p); err != nil {
		return p, fmt.Errorf("parse env: %w", err)
	}
	return p, nil
}

//app is everything a command needs, wired from one profile
type app struct {
	Log      *zap.SugaredLogger
	Registry *particles.Registry
	Store    *particles.MemoryStore
	Engine   *particles.Engine
	Adapter  *particles.Adapter
}

func newApp(p particles.Profile, d particles.Dispatcher) (*app, error) {
	log, err := particles.NewLogger(p.LogConfig)
	if err != nil {
		return nil, fmt.Errorf("init logs: %w", err)
	}
	a := &app{
		Log:      log,
		Registry: particles.NewRegistry(log),
		Store:    particles.NewMemoryStore(),
	}
	a.Engine = particles.NewEngine(p.Settings, a.Registry, a.Store, d, log)
	a.Adapter = particles.NewAdapter(a.Registry, a.Engine.Policy, a.Store, d, log)
	style.RegisterDefaults(a.Registry, a.Adapter, p.Settings.Styles)

	dup := make(map[string]bool)
	for _, v := range p.Actors {
		if dup[v.Name] {
			return nil, fmt.Errorf("duplicated actor %v", v.Name)
		}
		dup[v.Name] = true
		actor, err := particles.NewActor(v, a.Registry)
		if err != nil {
			return nil, err
		}
		a.Store.Put(actor)
	}
	return a, nil
}

//damageEvent builds the event a profile schedules, attacking as the named actor
func (a *app) damageEvent(ev particles.EventProfile) (particles.DamageEvent, error) {
	actor, ok := a.Store.ByName(ev.Damager)
	if !ok {
		return particles.DamageEvent{}, fmt.Errorf("invalid damager %v in event list", ev.Damager)
	}
	return particles.DamageEvent{
		Damager: particles.Entity{
			ID:       actor.ID,
			Player:   true,
			Living:   true,
			Location: actor.Location,
			HeldItem: actor.HeldItem,
		},
		Target: particles.Entity{
			Living:   ev.Living,
			Location: ev.Target,
		},
	}, nil
}
