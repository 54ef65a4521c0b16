package cmd

import (
	"github.com/spf13/cobra"

	"github.com/threadly/threadly/internal/log"
	"github.com/threadly/threadly/internal/threadly/form"
	"github.com/threadly/threadly/internal/threadly/view"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with an email and password",
	Long: `Log in to Threadly without the interactive form.

The password is prompted for when --password is not given. On success the splash
screen is shown, followed by your profile.`,
	Example: `  # Prompt for the password
  threadly login --email ada@example.com

  # Against another backend
  threadly login --email ada@example.com --password secret --url https://api.threadly.dev`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		password := loginPassword
		if password == "" {
			var err error
			if password, err = view.NewSurveyPrompter().Password("Password"); err != nil {
				log.Fatal(err)
			}
		}

		log.Info("Logging in as %s", loginEmail)
		if err := runLogin(cmd, loginEmail, password); err != nil {
			reportSubmitError(err)
			log.Fatal("Login failed")
		}
	},
}

func runLogin(cmd *cobra.Command, email, password string) error {
	app, err := newApp(cmd, form.ModeLogin)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Login(cmd.Context(), email, password)
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when empty)")
	_ = loginCmd.MarkFlagRequired("email")
}
