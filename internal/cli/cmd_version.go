package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoStore: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(a.out, "TeamVault %s\n", a.build.BuildVersion())
			fmt.Fprintf(a.out, "Build date: %s\n", a.build.BuildDate())
			fmt.Fprintf(a.out, "Build commit: %s\n", a.build.BuildCommit())
			return nil
		},
	}
}
