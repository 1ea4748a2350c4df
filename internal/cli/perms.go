package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/srliao/particles/pkg/particles"
)

func NewPermsCommand(opts *RootOptions) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "perms",
		Short: "show permission and quota decisions for a profile actor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts.Profile, nil)
			if err != nil {
				return err
			}
			actor, ok := a.Store.ByName(name)
			if !ok {
				return fmt.Errorf("invalid actor %v", name)
			}
			writePerms(cmd.OutOrStdout(), a.Engine.Policy, &actor)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "actor", "a", "", "actor name from the profile")
	_ = cmd.MarkFlagRequired("actor")
	return cmd
}

func writePerms(w io.Writer, p *particles.Policy, a *particles.Actor) {
	limit := func(n int) string {
		if n == particles.Unlimited {
			return "unlimited"
		}
		return fmt.Sprint(n)
	}
	fmt.Fprintf(w, "actor: %v (%v)\n", a.Name, a.ID)
	fmt.Fprintf(w, "world %v enabled: %v\n", a.Location.World, p.IsWorldEnabled(a.Location.World))
	fmt.Fprintf(w, "effects: %v\n", strings.Join(p.AllowedEffectNames(a.Caps), ", "))
	fmt.Fprintf(w, "styles: %v\n", strings.Join(p.AllowedStyleNames(a.Caps), ", "))
	fmt.Fprintf(w, "fixable styles: %v\n", strings.Join(p.AllowedFixableStyleNames(a.Caps), ", "))
	fmt.Fprintf(w, "active effects: %v/%v reached: %v\n", a.State.ActiveCount(), limit(p.MaxAllowedEffects(a.Caps)), p.HasReachedMaxActiveEffects(&a.State, a.Caps))
	fmt.Fprintf(w, "saved groups: %v can save: %v reached: %v\n", a.State.GroupCount(), p.CanSaveGroups(a.Caps), p.HasReachedMaxGroups(&a.State, a.Caps))
	fmt.Fprintf(w, "fixed effects: %v can fix: %v reached: %v max distance: %v\n", a.State.FixedCount(), p.CanUseFixedEffects(a.Caps), p.HasReachedMaxFixedEffects(&a.State, a.Caps), p.MaxFixedEffectDistance())
}
