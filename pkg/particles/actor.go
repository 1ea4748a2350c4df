package particles

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

//EffectConfig is one active pairing of an effect and a style on an actor
type EffectConfig struct {
	ID     int
	Effect Effect
	Style  Style
	Data   map[string]interface{} //free form parameters (colour, note, item...)
	Owner  uuid.UUID
}

//Float reads a numeric parameter from Data, falling back to def
func (c *EffectConfig) Float(key string, def float64) float64 {
	if c == nil || c.Data == nil {
		return def
	}
	switch v := c.Data[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

//FixedEffect is an effect anchored to a world location instead of following its owner
type FixedEffect struct {
	ID       int
	Config   EffectConfig
	Location Location
}

//ActorState is the read only view of an actor's particles used for display and quotas
type ActorState struct {
	Effects     []EffectConfig
	SavedGroups int
	Fixed       []FixedEffect
}

func (s *ActorState) ActiveCount() int {
	return len(s.Effects)
}

func (s *ActorState) GroupCount() int {
	return s.SavedGroups
}

func (s *ActorState) FixedCount() int {
	return len(s.Fixed)
}

//EffectsForStyle returns the active configs using st
func (s *ActorState) EffectsForStyle(st Style) []EffectConfig {
	var out []EffectConfig
	for _, c := range s.Effects {
		if c.Style != nil && sameStyle(c.Style, st) {
			out = append(out, c)
		}
	}
	return out
}

func (s ActorState) clone() ActorState {
	n := ActorState{SavedGroups: s.SavedGroups}
	n.Effects = append([]EffectConfig(nil), s.Effects...)
	n.Fixed = append([]FixedEffect(nil), s.Fixed...)
	return n
}

//Actor is a player (or any entity) that owns particles
type Actor struct {
	ID       uuid.UUID
	Name     string
	Caps     Capabilities
	Location Location
	HeldItem string
	State    ActorState
}

//Capabilities answers permission queries for an actor
type Capabilities interface {
	HasPermission(node string) bool
}

type console struct{}

func (console) HasPermission(string) bool { return true }

//Console is the capability set of a non actor sender such as the server console
var Console Capabilities = console{}

//PermissionSet is a static set of granted nodes. A grant ending in ".*" matches every
//node below it.
type PermissionSet map[string]bool

func NewPermissionSet(nodes ...string) PermissionSet {
	p := make(PermissionSet, len(nodes))
	for _, n := range nodes {
		p[strings.ToLower(n)] = true
	}
	return p
}

func (p PermissionSet) HasPermission(node string) bool {
	node = strings.ToLower(node)
	if p[node] || p["*"] {
		return true
	}
	for i := strings.LastIndexByte(node, '.'); i > 0; i = strings.LastIndexByte(node[:i], '.') {
		if p[node[:i]+".*"] {
			return true
		}
	}
	return false
}

//ActorStore is the read side of the external actor state manager
type ActorStore interface {
	Actor(id uuid.UUID) (Actor, bool)
	Actors() []Actor
}

//MemoryStore is an in memory ActorStore. Reads return snapshots and are safe to call
//from the event path while the tick loop is running.
type MemoryStore struct {
	mu     sync.RWMutex
	actors map[uuid.UUID]Actor
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{actors: make(map[uuid.UUID]Actor)}
}

//Put inserts or replaces an actor
func (m *MemoryStore) Put(a Actor) {
	a.State = a.State.clone()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actors[a.ID] = a
}

func (m *MemoryStore) Remove(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.actors, id)
}

func (m *MemoryStore) Actor(id uuid.UUID) (Actor, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.actors[id]
	if !ok {
		return Actor{}, false
	}
	a.State = a.State.clone()
	return a, true
}

//Actors returns every actor ordered by name so ticks iterate deterministically
func (m *MemoryStore) Actors() []Actor {
	m.mu.RLock()
	out := make([]Actor, 0, len(m.actors))
	for _, a := range m.actors {
		a.State = a.State.clone()
		out = append(out, a)
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

//ByName finds an actor by name ignoring case
func (m *MemoryStore) ByName(name string) (Actor, bool) {
	for _, a := range m.Actors() {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return Actor{}, false
}
