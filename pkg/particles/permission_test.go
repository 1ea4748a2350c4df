package particles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPolicy() *Policy {
	s := DefaultSettings()
	s.MaxParticles = 3
	s.MaxGroups = 2
	s.MaxFixedEffects = 4
	s.DisabledWorlds = []string{"nether"}
	r := NewRegistry(nil)
	r.Register(newFake("normal"))
	r.Register(&fakeStyle{StyleTemplate: NewStyleTemplate("wings", false, false, 0)})
	r.Register(newFake("orbit"))
	return NewPolicy(s, r)
}

func stateWith(active, groups, fixed int) *ActorState {
	st := &ActorState{SavedGroups: groups}
	for i := 0; i < active; i++ {
		st.Effects = append(st.Effects, EffectConfig{ID: i + 1})
	}
	for i := 0; i < fixed; i++ {
		st.Fixed = append(st.Fixed, FixedEffect{ID: i + 1})
	}
	return st
}

func TestNodes(t *testing.T) {
	p := testPolicy()
	assert.Equal(t, "playerparticles.effect.flame", p.Node(PermEffect, "flame"))
	assert.Equal(t, "playerparticles.style.orbit", p.Node(PermStyle, "orbit"))
	assert.Equal(t, "playerparticles.fixed.unlimited", p.Node(PermFixedUnlimited, ""))
	assert.Equal(t, "playerparticles.particles.unlimited", p.Node(PermParticlesUnlimited, ""))
	assert.Equal(t, "playerparticles.groups.unlimited", p.Node(PermGroupsUnlimited, ""))

	s := DefaultSettings()
	s.PermissionPrefix = "fx."
	assert.Equal(t, "fx.gui", NewPolicy(s, nil).Node(PermGUI, ""))
}

func TestEffectAndStyleAllowed(t *testing.T) {
	p := testPolicy()
	caps := NewPermissionSet("playerparticles.effect.flame", "playerparticles.style.orbit")
	orbit, _ := p.registry.Lookup("orbit")
	normal, _ := p.registry.Lookup("normal")

	assert.True(t, p.IsEffectAllowed(caps, Flame))
	assert.False(t, p.IsEffectAllowed(caps, Heart))
	assert.False(t, p.IsEffectAllowed(caps, Effect(-1)))
	assert.True(t, p.IsStyleAllowed(caps, orbit))
	assert.False(t, p.IsStyleAllowed(caps, normal))
	assert.False(t, p.IsStyleAllowed(caps, nil))

	//fail closed without capabilities
	assert.False(t, p.IsEffectAllowed(nil, Flame))
	assert.False(t, p.IsStyleAllowed(nil, orbit))
}

func TestQuotas(t *testing.T) {
	p := testPolicy()
	unlimited := NewPermissionSet(
		"playerparticles.particles.unlimited",
		"playerparticles.groups.unlimited",
		"playerparticles.fixed.unlimited",
	)
	limited := NewPermissionSet()

	type check func(*ActorState, Capabilities) bool
	cases := []struct {
		name  string
		f     check
		state func(n int) *ActorState
		limit int
	}{
		{"active", p.HasReachedMaxActiveEffects, func(n int) *ActorState { return stateWith(n, 0, 0) }, 3},
		{"groups", p.HasReachedMaxGroups, func(n int) *ActorState { return stateWith(0, n, 0) }, 2},
		{"fixed", p.HasReachedMaxFixedEffects, func(n int) *ActorState { return stateWith(0, 0, n) }, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, n := range []int{0, c.limit - 1, c.limit, c.limit + 5} {
				assert.False(t, c.f(c.state(n), unlimited), "unlimited with count %v", n)
			}
			assert.False(t, c.f(c.state(c.limit-1), limited))
			assert.True(t, c.f(c.state(c.limit), limited))
			assert.True(t, c.f(c.state(c.limit+1), limited))

			assert.True(t, c.f(nil, unlimited), "nil state fails closed")
			assert.True(t, c.f(c.state(0), nil), "nil caps fails closed")
		})
	}
}

func TestNegativeQuotaIsZero(t *testing.T) {
	s := DefaultSettings()
	s.MaxParticles = -1
	p := NewPolicy(s, nil)
	assert.True(t, p.HasReachedMaxActiveEffects(stateWith(0, 0, 0), NewPermissionSet()))
	assert.Equal(t, 0, p.MaxAllowedEffects(NewPermissionSet()))
}

func TestCanSaveGroups(t *testing.T) {
	unlimited := NewPermissionSet("playerparticles.groups.unlimited")
	none := NewPermissionSet()

	for _, c := range []struct {
		quota int
		caps  Capabilities
		want  bool
	}{
		{0, none, false},
		{0, unlimited, true},
		{1, none, true},
		{5, unlimited, true},
		{0, nil, false},
	} {
		s := DefaultSettings()
		s.MaxGroups = c.quota
		assert.Equal(t, c.want, NewPolicy(s, nil).CanSaveGroups(c.caps), "quota %v caps %v", c.quota, c.caps)
	}
}

func TestMaxAllowedEffects(t *testing.T) {
	p := testPolicy()
	assert.Equal(t, Unlimited, p.MaxAllowedEffects(NewPermissionSet("playerparticles.particles.unlimited")))
	assert.Equal(t, 3, p.MaxAllowedEffects(NewPermissionSet()))
	assert.Equal(t, 0, p.MaxAllowedEffects(nil))
}

func TestWorlds(t *testing.T) {
	p := testPolicy()
	assert.True(t, p.IsWorldEnabled("world"))
	assert.False(t, p.IsWorldEnabled("nether"))
	assert.Equal(t, []string{"nether"}, p.DisabledWorlds())
	assert.Equal(t, 16, p.MaxFixedEffectDistance())
}

func TestAllowedListings(t *testing.T) {
	p := testPolicy()
	caps := NewPermissionSet("playerparticles.style.*", "playerparticles.effect.flame", "playerparticles.effect.heart")

	assert.Equal(t, []string{"flame", "heart"}, p.AllowedEffectNames(caps))
	assert.Equal(t, []string{"normal", "wings", "orbit"}, p.AllowedStyleNames(caps))
	assert.Equal(t, []string{"normal", "orbit"}, p.AllowedFixableStyleNames(caps))
	assert.Empty(t, p.AllowedStyleNames(NewPermissionSet()))
}

func TestAuxiliaryPermissions(t *testing.T) {
	p := testPolicy()
	caps := NewPermissionSet("playerparticles.fixed", "playerparticles.gui")

	assert.True(t, p.CanUseFixedEffects(caps))
	assert.False(t, p.CanClearFixedEffects(caps))
	assert.True(t, p.CanOpenGUI(caps))
	assert.False(t, p.CanReload(caps))
	assert.False(t, p.CanOverride(caps))
	assert.True(t, p.CanOverride(Console))
	assert.False(t, p.CanOverride(nil))
}

func TestCanDisplay(t *testing.T) {
	p := testPolicy()
	orbit, _ := p.registry.Lookup("orbit")
	a := &Actor{Name: "a", Caps: NewPermissionSet("playerparticles.effect.flame", "playerparticles.style.orbit")}
	cfg := &EffectConfig{Effect: Flame, Style: orbit}

	assert.True(t, p.CanDisplay(a, "world", cfg))
	assert.False(t, p.CanDisplay(a, "nether", cfg))
	assert.False(t, p.CanDisplay(a, "world", &EffectConfig{Effect: Heart, Style: orbit}))
	assert.False(t, p.CanDisplay(nil, "world", cfg))
	assert.False(t, p.CanDisplay(a, "world", nil))
}
