package cmd

import (
	"fmt"

	"github.com/hashicorp/go-version"
	"github.com/spf13/cobra"
)

const AppName = "factory-method"

// AppVersion is overridden at build time with -ldflags "-X".
var AppVersion = "v1.0.0"

// Version parses AppVersion as a semantic version.
func Version() (*version.Version, error) {
	v, err := version.NewVersion(AppVersion)
	if err != nil {
		return nil, fmt.Errorf("invalid build version %q: %w", AppVersion, err)
	}
	return v, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := Version()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", AppName, v.String())
			return err
		},
	}
}
