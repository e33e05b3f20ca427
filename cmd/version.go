package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

// displayVersion returns the canonical semver form of v, or "(devel)" for
// builds without a release tag.
func displayVersion(v string) string {
	if !semver.IsValid(v) {
		return "(devel)"
	}
	return semver.Canonical(v)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "realitycheck", displayVersion(version))
		},
	}
}
