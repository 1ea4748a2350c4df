package normal

import (
	"testing"

	"github.com/srliao/particles/pkg/particles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinglePointPerEffect(t *testing.T) {
	n := New(DefaultSettings())

	pts := n.Generate(&particles.EffectConfig{Effect: particles.Flame}, particles.Vec{})
	require.Len(t, pts, 1)
	assert.Equal(t, particles.Vec{}, pts[0].Offset)
	assert.Equal(t, particles.Vec{X: 0.1, Y: 0.1, Z: 0.1}, pts[0].Direction)
	assert.Equal(t, 0.05, pts[0].Speed)

	pts = n.Generate(&particles.EffectConfig{Effect: particles.Heart}, particles.Vec{})
	require.Len(t, pts, 1)
	assert.Equal(t, 1.8, pts[0].Offset.Y)

	//effects without an entry use the default spread
	pts = n.Generate(&particles.EffectConfig{Effect: particles.Spit}, particles.Vec{})
	require.Len(t, pts, 1)
	assert.Equal(t, particles.Vec{X: 0.4, Y: 0.4, Z: 0.4}, pts[0].Direction)
}

func TestCountAndBadInput(t *testing.T) {
	n := New(Settings{Count: 3})
	assert.Len(t, n.Generate(&particles.EffectConfig{Effect: particles.Crit}, particles.Vec{}), 3)
	assert.Empty(t, n.Generate(nil, particles.Vec{}))
	assert.Empty(t, n.Generate(&particles.EffectConfig{Effect: particles.Effect(99)}, particles.Vec{}))
	assert.Len(t, New(Settings{}).Generate(&particles.EffectConfig{Effect: particles.Crit}, particles.Vec{}), 1)
}
