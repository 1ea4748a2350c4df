package style

import (
	"testing"

	"github.com/srliao/particles/pkg/particles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRegisterDefaults(t *testing.T) {
	r := particles.NewRegistry(nil)
	a := particles.NewAdapter(r, nil, nil, nil, nil)
	RegisterDefaults(r, a, nil)

	assert.Equal(t, []string{"normal", "companion", "invocation", "swords"}, r.Names())
	sw, ok := r.Lookup("Swords")
	require.True(t, ok)
	assert.True(t, r.IsEventDriven(sw))
	assert.Len(t, r.TickDriven(), 3)

	//registering again only logs collisions
	core, logs := observer.New(zapcore.ErrorLevel)
	r.Log = zap.New(core).Sugar()
	RegisterDefaults(r, nil, nil)
	assert.Len(t, r.List(), 4)
	assert.Equal(t, 4, logs.FilterMessageSnippet("same name spelling").Len())
}

func TestOverrides(t *testing.T) {
	r := particles.NewRegistry(nil)
	RegisterDefaults(r, nil, map[string]map[string]interface{}{
		"invocation": {"Points": 3, "NumSteps": 10, "UpdateInterval": 2.0},
		"companion":  {"ParticlesPerIteration": 2, "Fixable": false},
		"swords":     {"Multiplier": 4},
	})

	inv, _ := r.Lookup("invocation")
	assert.Len(t, inv.Generate(&particles.EffectConfig{Effect: particles.Flame}, particles.Vec{}), 10+6)
	assert.Equal(t, 2.0, inv.UpdateInterval())

	comp, _ := r.Lookup("companion")
	assert.Len(t, comp.Generate(&particles.EffectConfig{Effect: particles.Flame}, particles.Vec{}), 2)
	assert.False(t, comp.Fixable())

	sw, _ := r.Lookup("swords")
	assert.Len(t, sw.Generate(&particles.EffectConfig{Effect: particles.Flame}, particles.Vec{}), 4)
}

func TestBadOverrideKeepsDefaults(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	r := particles.NewRegistry(zap.New(core).Sugar())
	RegisterDefaults(r, nil, map[string]map[string]interface{}{
		"invocation": {"Points": "many"},
	})

	inv, ok := r.Lookup("invocation")
	require.True(t, ok)
	assert.Len(t, inv.Generate(&particles.EffectConfig{Effect: particles.Flame}, particles.Vec{}), 120+12)
	assert.Equal(t, 1, logs.FilterMessageSnippet("invalid settings for style invocation, using defaults").Len())
}

func TestMixedOverrideIsDiscarded(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	r := particles.NewRegistry(zap.New(core).Sugar())
	RegisterDefaults(r, nil, map[string]map[string]interface{}{
		"invocation": {"Points": "many", "NumSteps": 10},
		"companion":  {"UpdateInterval": "often", "Fixable": false, "ParticlesPerIteration": 2},
	})

	//the valid NumSteps must not leak through next to the bad Points
	inv, _ := r.Lookup("invocation")
	assert.Len(t, inv.Generate(&particles.EffectConfig{Effect: particles.Flame}, particles.Vec{}), 120+12)
	assert.Equal(t, 1, logs.FilterMessageSnippet("invalid settings for style invocation, using defaults").Len())

	//companion settings decode cleanly; only the shared keys are rejected
	comp, _ := r.Lookup("companion")
	assert.Len(t, comp.Generate(&particles.EffectConfig{Effect: particles.Flame}, particles.Vec{}), 2)
	assert.True(t, comp.Fixable())
	assert.Equal(t, 1.0, comp.UpdateInterval())
	assert.Equal(t, 1, logs.FilterMessageSnippet("invalid settings for style companion, keeping interval and fixable").Len())
}
