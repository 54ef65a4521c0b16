package cmd

import (
	"github.com/sethvargo/go-password/password"
	"github.com/spf13/cobra"

	"github.com/threadly/threadly/internal/log"
	"github.com/threadly/threadly/internal/threadly/form"
)

var registerFlags struct {
	firstName        string
	lastName         string
	email            string
	password         string
	location         string
	occupation       string
	picture          string
	generatePassword bool
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a Threadly account",
	Long: `Create a Threadly account without the interactive form.

Every field is required, the picture included. With --generate-password a random
password is created and printed once.`,
	Example: `  threadly register --first-name Ada --last-name Lovelace --email ada@example.com \
    --location London --occupation Mathematician --picture ./ada.png --generate-password`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		values, generated, err := registerValues()
		if err != nil {
			log.Fatal(err)
		}

		if err := runRegister(cmd, values); err != nil {
			reportSubmitError(err)
			log.Fatal("Registration failed")
		}

		log.Success("Account created for %s", values.Email)
		if generated {
			log.InfoH2("Generated password: %s", values.Password)
			log.InfoH3("It is not shown again")
		}
		log.InfoH2("You can now log in with: threadly login --email %s", values.Email)
	},
}

func runRegister(cmd *cobra.Command, values form.RegisterValues) error {
	app, err := newApp(cmd, form.ModeRegister)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Register(cmd.Context(), values)
}

// registerValues builds the register form from flags. A missing picture file is left for
// validation to report.
func registerValues() (form.RegisterValues, bool, error) {
	f := registerFlags
	values := form.RegisterValues{
		FirstName:  f.firstName,
		LastName:   f.lastName,
		Email:      f.email,
		Password:   f.password,
		Location:   f.location,
		Occupation: f.occupation,
	}

	generated := false
	if f.generatePassword && values.Password == "" {
		pass, err := password.Generate(24, 10, 0, false, false)
		if err != nil {
			return values, false, err
		}
		values.Password = pass
		generated = true
	}

	if f.picture != "" {
		picture, err := form.OpenPicture(f.picture)
		if err != nil {
			return values, false, err
		}
		values.Picture = picture
	}
	return values, generated, nil
}

func init() {
	rootCmd.AddCommand(registerCmd)

	flags := registerCmd.Flags()
	flags.StringVar(&registerFlags.firstName, "first-name", "", "First name")
	flags.StringVar(&registerFlags.lastName, "last-name", "", "Last name")
	flags.StringVar(&registerFlags.email, "email", "", "Account email")
	flags.StringVar(&registerFlags.password, "password", "", "Account password")
	flags.StringVar(&registerFlags.location, "location", "", "Location")
	flags.StringVar(&registerFlags.occupation, "occupation", "", "Occupation")
	flags.StringVar(&registerFlags.picture, "picture", "", "Path to a profile picture")
	flags.BoolVar(&registerFlags.generatePassword, "generate-password", false, "Generate a random password when --password is empty")

	_ = registerCmd.RegisterFlagCompletionFunc("picture", validPictures)
}
