package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/srliao/particles/internal/render/chart"
	"github.com/srliao/particles/pkg/particles"
)

type previewOptions struct {
	style  string
	effect string
	ticks  int
	out    string
}

//NewPreviewCommand renders one style for a synthetic actor standing at the origin
func NewPreviewCommand(opts *RootOptions) *cobra.Command {
	po := &previewOptions{}
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "render a style's emission points to an html 3d scatter chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(po.out)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()
			n, err := preview(f, opts.Profile, po)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %v points to %v\n", n, po.out)
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&po.style, "style", "s", "invocation", "style to preview")
	cmd.Flags().StringVarP(&po.effect, "effect", "e", "flame", "effect to preview")
	cmd.Flags().IntVarP(&po.ticks, "ticks", "t", 120, "how many ticks to collect")
	cmd.Flags().StringVarP(&po.out, "out", "o", "preview.html", "output html file")
	return cmd
}

func preview(w io.Writer, p particles.Profile, po *previewOptions) (int, error) {
	c := chart.New(fmt.Sprintf("%v / %v", po.style, po.effect))
	p.Actors = nil
	p.Events = nil
	a, err := newApp(p, c)
	if err != nil {
		return 0, err
	}
	defer a.Log.Sync()

	st, ok := a.Registry.Lookup(po.style)
	if !ok {
		return 0, fmt.Errorf("invalid style %v", po.style)
	}
	actor, err := particles.NewActor(particles.ActorProfile{
		Name:        "preview",
		Location:    particles.Location{World: "preview"},
		HeldItem:    "DIAMOND_SWORD",
		Permissions: []string{"*"},
		Effects:     []particles.EffectProfile{{Effect: po.effect, Style: st.Name()}},
	}, a.Registry)
	if err != nil {
		return 0, err
	}
	a.Store.Put(actor)

	if a.Registry.IsEventDriven(st) {
		//strike a target a few blocks away on every tick
		ev := particles.DamageEvent{
			Damager: particles.Entity{ID: actor.ID, Player: true, Living: true, HeldItem: actor.HeldItem},
			Target:  particles.Entity{Living: true, Location: particles.Location{World: "preview", Vec: particles.Vec{X: 2}}},
		}
		for i := 0; i < po.ticks; i++ {
			a.Engine.AddTask(func(*particles.Engine) { a.Adapter.Deliver(ev) }, "strike", i)
		}
	}
	a.Engine.Run(po.ticks)

	if err := c.Render(w); err != nil {
		return 0, fmt.Errorf("render chart: %w", err)
	}
	return c.Total(), nil
}
