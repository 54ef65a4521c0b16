package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/threadly/threadly/internal/threadly/form"
)

// validModes returns the form modes for shell completion of --mode.
func validModes(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var modes []string
	for _, m := range form.Modes {
		if strings.HasPrefix(m.String(), toComplete) {
			modes = append(modes, m.String())
		}
	}
	return modes, cobra.ShellCompDirectiveNoFileComp
}

// validPictures completes --picture with image files.
func validPictures(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"png", "jpg", "jpeg", "gif", "webp"}, cobra.ShellCompDirectiveFilterFileExt
}
