package cli

import (
	"github.com/spf13/cobra"
	"github.com/srliao/particles/pkg/particles"
)

//RootOptions holds global flags and the profile they resolve to
type RootOptions struct {
	ConfigPath string
	LogLevel   string

	Profile particles.Profile
}

//NewRootCommand creates the root command of the particles CLI
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "particles",
		Short:         "per actor particle style engine",
		Long:          "Runs, previews and inspects particle styles and the permission rules that gate them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			p, err := LoadProfile(opts.ConfigPath)
			if err != nil {
				return err
			}
			if opts.LogLevel != "" {
				p.LogConfig.LogLevel = opts.LogLevel
			}
			opts.Profile = p
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "profile yaml file (defaults apply when empty)")
	cmd.PersistentFlags().StringVarP(&opts.LogLevel, "log-level", "d", "", "output level: debug, info, warn, error")

	cmd.AddCommand(NewStylesCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewPreviewCommand(opts))
	cmd.AddCommand(NewPermsCommand(opts))

	return cmd
}
