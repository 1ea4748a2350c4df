package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/srliao/particles/pkg/particles"
)

func NewStylesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "list registered styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts.Profile, nil)
			if err != nil {
				return err
			}
			return writeStyles(cmd.OutOrStdout(), a.Registry)
		},
	}
}

func writeStyles(w io.Writer, r *particles.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDRIVER\tFIXABLE\tMOVE TOGGLE\tINTERVAL")
	for _, s := range r.List() {
		driver := "tick"
		if r.IsEventDriven(s) {
			driver = "event"
		}
		fmt.Fprintf(tw, "%v\t%v\t%v\t%v\t%v\n", s.Name(), driver, s.Fixable(), s.ToggleWithMovement(), s.UpdateInterval())
	}
	return tw.Flush()
}
