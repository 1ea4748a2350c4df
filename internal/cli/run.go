package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/srliao/particles/internal/render/trace"
	"github.com/srliao/particles/pkg/particles"
)

type runOptions struct {
	ticks    int
	realtime bool
}

func NewRunCommand(opts *RootOptions) *cobra.Command {
	ro := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "run the profile's actors and scripted events through the engine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile(cmd.Context(), cmd.OutOrStdout(), opts.Profile, ro)
		},
	}
	cmd.Flags().IntVarP(&ro.ticks, "ticks", "t", 200, "how many ticks to run")
	cmd.Flags().BoolVar(&ro.realtime, "realtime", false, "tick on the wall clock at the configured interval")
	return cmd
}

func runProfile(ctx context.Context, w io.Writer, p particles.Profile, ro *runOptions) error {
	if ro.ticks < 0 {
		return fmt.Errorf("invalid tick count %v", ro.ticks)
	}
	d := trace.New(nil)
	a, err := newApp(p, d)
	if err != nil {
		return err
	}
	d.Log = a.Log
	defer a.Log.Sync()

	for i, v := range p.Events {
		ev, err := a.damageEvent(v)
		if err != nil {
			return err
		}
		a.Engine.AddTask(func(e *particles.Engine) {
			n := a.Adapter.Deliver(ev)
			e.Log.Infof("[%v] event %v from %v dispatched %v effects", e.Frame(), i, v.Damager, n)
		}, fmt.Sprintf("event-%v", i), v.Tick)
	}

	start := time.Now()
	var stats particles.Stats
	if ro.realtime {
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
		//the stop task ends the run; the deadline is a backstop
		ctx, cancel := context.WithTimeout(ctx, time.Duration(ro.ticks+1)*a.Engine.Interval()+time.Second)
		defer cancel()
		if ro.ticks == 0 {
			cancel()
		} else {
			a.Engine.AddTask(func(*particles.Engine) { cancel() }, "stop", ro.ticks-1)
		}
		err := a.Engine.Start(ctx)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		stats = a.Engine.Stats()
	} else {
		stats = a.Engine.Run(ro.ticks)
	}
	elapsed := time.Since(start)

	writeStats(w, a.Registry, stats, a.Adapter.Dispatched())
	fmt.Fprintf(w, "ran %v ticks in %s\n", stats.Ticks, elapsed)
	return nil
}

func writeStats(w io.Writer, r *particles.Registry, s particles.Stats, events int64) {
	for _, st := range r.List() {
		n := s.Dispatches[st.Name()]
		if n == 0 {
			continue
		}
		fmt.Fprintf(w, "%v: %v dispatches, %v points\n", st.Name(), n, s.Points[st.Name()])
	}
	fmt.Fprintf(w, "event dispatches: %v\n", events)
	fmt.Fprintf(w, "skipped: %v, failed: %v\n", s.Skipped, s.Failures)
}
