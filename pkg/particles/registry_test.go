package particles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRejectsCaseInsensitiveDuplicate(t *testing.T) {
	log, logs := observed()
	r := NewRegistry(log)

	first := newFake("Spiral")
	second := newFake("sPIRAL")
	r.Register(first)
	r.Register(second)

	list := r.List()
	require.Len(t, list, 1)
	assert.Same(t, first, list[0])
	assert.Equal(t, 1, logs.FilterMessageSnippet("same name spelling").Len())

	s, ok := r.Lookup("SPIRAL")
	require.True(t, ok)
	assert.Same(t, first, s)
	assert.False(t, r.Contains(second))
}

func TestRegisterSameStyleTwice(t *testing.T) {
	log, logs := observed()
	r := NewRegistry(log)

	s := newFake("orbit")
	r.Register(s)
	r.RegisterEventDriven(s)

	assert.Len(t, r.List(), 1)
	assert.Equal(t, 1, logs.FilterMessageSnippet("same style twice").Len())
	//the failed event driven registration must not flip the existing entry
	assert.False(t, r.IsEventDriven(s))
}

func TestRegisterNilAndNonComparable(t *testing.T) {
	log, logs := observed()
	r := NewRegistry(log)

	r.Register(nil)
	assert.Equal(t, 1, logs.FilterMessageSnippet("nil style").Len())

	a := funcStyle{name: "a", gen: func() []Point { return nil }}
	b := funcStyle{name: "b", gen: func() []Point { return nil }}
	assert.NotPanics(t, func() {
		r.Register(a)
		r.Register(b)
		//funcStyle is not comparable so the identity check is skipped; the name check
		//is what rejects a here
		r.Register(a)
	})
	assert.Equal(t, []string{"a", "b"}, r.Names())
	assert.Equal(t, 1, logs.FilterMessageSnippet("same name spelling").Len())
	assert.Zero(t, logs.FilterMessageSnippet("same style twice").Len())
}

func TestEventDrivenClassification(t *testing.T) {
	r := NewRegistry(nil)
	a := newFake("a")
	b := newFake("b")
	c := newFake("c")
	r.Register(a)
	r.RegisterEventDriven(b)
	r.Register(c)

	assert.False(t, r.IsEventDriven(a))
	assert.True(t, r.IsEventDriven(b))
	assert.False(t, r.IsEventDriven(newFake("b")), "same name but another identity")
	assert.False(t, r.IsEventDriven(nil))

	assert.Equal(t, []string{"a", "b", "c"}, r.Names())
	tick := r.TickDriven()
	require.Len(t, tick, 2)
	assert.Same(t, a, tick[0])
	assert.Same(t, c, tick[1])
}

func TestListIsACopy(t *testing.T) {
	r := NewRegistry(nil)
	r.Register(newFake("a"))
	l := r.List()
	l[0] = newFake("z")
	assert.Equal(t, []string{"a"}, r.Names())
}
