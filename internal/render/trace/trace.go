//Package trace is a Dispatcher that only logs what would be rendered
package trace

import (
	"sync/atomic"

	"github.com/srliao/particles/pkg/particles"
	"go.uber.org/zap"
)

type Trace struct {
	Log *zap.SugaredLogger

	calls  atomic.Int64
	points atomic.Int64
}

func New(log *zap.SugaredLogger) *Trace {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Trace{Log: log}
}

func (t *Trace) Display(a *particles.Actor, cfg *particles.EffectConfig, origin particles.Vec, pts []particles.Point) {
	t.calls.Add(1)
	t.points.Add(int64(len(pts)))
	t.Log.Debugw("display",
		"actor", a.Name,
		"world", a.Location.World,
		"style", cfg.Style.Name(),
		"effect", cfg.Effect.String(),
		"origin", origin,
		"points", len(pts),
	)
}

func (t *Trace) Calls() int64 {
	return t.calls.Load()
}

func (t *Trace) Points() int64 {
	return t.points.Load()
}
