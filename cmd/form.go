package cmd

import (
	"github.com/spf13/cobra"

	"github.com/threadly/threadly/internal/log"
	"github.com/threadly/threadly/internal/threadly/form"
	"github.com/threadly/threadly/internal/threadly/view"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the interactive login/registration form",
	Long: `Open the interactive form.

Fill in the fields, switch between logging in and signing up, and submit. After a
successful login the splash screen is shown before the home view.`,
	Example: `  # Start on the login form
  threadly form

  # Start on the sign-up form
  threadly form --mode register`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		mode, _ := cmd.Flags().GetString("mode")
		runFormCommand(cmd, mode)
	},
}

func runFormCommand(cmd *cobra.Command, modeName string) {
	if err := runForm(cmd, modeName, view.NewSurveyPrompter()); err != nil {
		log.Fatal(err)
	}
}

func runForm(cmd *cobra.Command, modeName string, prompter view.Prompter) error {
	mode, err := form.ParseMode(modeName)
	if err != nil {
		return err
	}

	app, err := newApp(cmd, mode)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Interactive(cmd.Context(), prompter)
}

func init() {
	rootCmd.AddCommand(formCmd)

	formCmd.Flags().String("mode", form.ModeLogin.String(), "Initial mode: login or register")
	_ = formCmd.RegisterFlagCompletionFunc("mode", validModes)
}
