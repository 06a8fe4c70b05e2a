package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "mathlab", displayVersion(version))
	},
}

// displayVersion normalizes release tags to canonical semver ("1.2" becomes
// "v1.2.0"). Anything else, such as a development build, is shown as is.
func displayVersion(v string) string {
	tag := v
	if len(tag) > 0 && tag[0] != 'v' {
		tag = "v" + tag
	}
	if semver.IsValid(tag) {
		return semver.Canonical(tag)
	}
	return v
}
