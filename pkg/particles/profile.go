package particles

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

//Profile is the full settings file: engine settings, logging and an optional demo
//population of actors and scripted events
type Profile struct {
	Label     string         `yaml:"Label"`
	Settings  Settings       `yaml:"Settings"`
	LogConfig LogConfig      `yaml:"LogConfig"`
	Actors    []ActorProfile `yaml:"Actors"`
	Events    []EventProfile `yaml:"Events"`
}

type LogConfig struct {
	LogLevel      string `yaml:"LogLevel" env:"PARTICLES_LOG_LEVEL"`
	LogFile       string `yaml:"LogFile" env:"PARTICLES_LOG_FILE"`
	LogShowCaller bool   `yaml:"LogShowCaller" env:"PARTICLES_LOG_SHOW_CALLER"`
}

//Settings holds the externally configured quotas and world rules
type Settings struct {
	MaxParticles                   int           `yaml:"MaxParticles" env:"PARTICLES_MAX_PARTICLES"`
	MaxGroups                      int           `yaml:"MaxGroups" env:"PARTICLES_MAX_GROUPS"`
	MaxFixedEffects                int           `yaml:"MaxFixedEffects" env:"PARTICLES_MAX_FIXED_EFFECTS"`
	MaxFixedEffectCreationDistance int           `yaml:"MaxFixedEffectCreationDistance" env:"PARTICLES_MAX_FIXED_EFFECT_CREATION_DISTANCE"`
	DisabledWorlds                 []string      `yaml:"DisabledWorlds" env:"PARTICLES_DISABLED_WORLDS" envSeparator:","`
	PermissionPrefix               string        `yaml:"PermissionPrefix" env:"PARTICLES_PERMISSION_PREFIX"`
	TickInterval                   time.Duration `yaml:"TickInterval" env:"PARTICLES_TICK_INTERVAL"`

	//per style overrides keyed by style name
	Styles map[string]map[string]interface{} `yaml:"Styles"`
}

func DefaultSettings() Settings {
	return Settings{
		MaxParticles:                   3,
		MaxGroups:                      10,
		MaxFixedEffects:                5,
		MaxFixedEffectCreationDistance: 16,
		PermissionPrefix:               DefaultPermissionPrefix,
		TickInterval:                   50 * time.Millisecond,
	}
}

//DefaultProfile returns a profile with default settings and info logging
func DefaultProfile() Profile {
	return Profile{
		Settings:  DefaultSettings(),
		LogConfig: LogConfig{LogLevel: "info"},
	}
}

type ActorProfile struct {
	Name        string          `yaml:"Name"`
	ID          string          `yaml:"ID"`
	Location    Location        `yaml:"Location"`
	HeldItem    string          `yaml:"HeldItem"`
	Permissions []string        `yaml:"Permissions"`
	SavedGroups int             `yaml:"SavedGroups"`
	Effects     []EffectProfile `yaml:"Effects"`
	Fixed       []FixedProfile  `yaml:"Fixed"`
}

type EffectProfile struct {
	Effect string                 `yaml:"Effect"`
	Style  string                 `yaml:"Style"`
	Data   map[string]interface{} `yaml:"Data"`
}

type FixedProfile struct {
	EffectProfile `yaml:",inline"`
	Location      Location `yaml:"Location"`
}

//EventProfile schedules a damage event for the demo run
type EventProfile struct {
	Tick    int      `yaml:"Tick"`
	Damager string   `yaml:"Damager"` //actor name
	Target  Location `yaml:"Target"`
	Living  bool     `yaml:"Living"`
}

//NewActor builds an actor from its profile, resolving style names against r
func NewActor(p ActorProfile, r *Registry) (Actor, error) {
	a := Actor{
		Name:     p.Name,
		Location: p.Location,
		HeldItem: p.HeldItem,
		Caps:     NewPermissionSet(p.Permissions...),
	}
	if p.Name == "" {
		return a, fmt.Errorf("actor without a name")
	}
	if p.ID == "" {
		a.ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(p.Name))
	} else {
		id, err := uuid.Parse(p.ID)
		if err != nil {
			return a, fmt.Errorf("actor %v: invalid id: %w", p.Name, err)
		}
		a.ID = id
	}
	a.State.SavedGroups = p.SavedGroups

	next := 1
	for _, v := range p.Effects {
		c, err := newEffectConfig(v, r, a.ID, next)
		if err != nil {
			return a, fmt.Errorf("actor %v: %w", p.Name, err)
		}
		a.State.Effects = append(a.State.Effects, c)
		next++
	}
	for i, v := range p.Fixed {
		c, err := newEffectConfig(v.EffectProfile, r, a.ID, i+1)
		if err != nil {
			return a, fmt.Errorf("actor %v: fixed effect: %w", p.Name, err)
		}
		if !c.Style.Fixable() {
			return a, fmt.Errorf("actor %v: style %v cannot be fixed", p.Name, c.Style.Name())
		}
		a.State.Fixed = append(a.State.Fixed, FixedEffect{ID: i + 1, Config: c, Location: v.Location})
	}
	return a, nil
}

func newEffectConfig(p EffectProfile, r *Registry, owner uuid.UUID, id int) (EffectConfig, error) {
	e := StrToEffect(p.Effect)
	if !e.Valid() {
		return EffectConfig{}, fmt.Errorf("invalid effect %v", p.Effect)
	}
	s, ok := r.Lookup(p.Style)
	if !ok {
		return EffectConfig{}, fmt.Errorf("invalid style %v", p.Style)
	}
	return EffectConfig{
		ID:     id,
		Effect: e,
		Style:  s,
		Data:   p.Data,
		Owner:  owner,
	}, nil
}
