// Package view holds the terminal presentation of the form, the splash and the home screen.
package view

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/threadly/threadly/internal/threadly/router"
	"github.com/threadly/threadly/internal/threadly/store"
)

// Home renders the authenticated landing view from the store's current state.
func Home(st *store.Store, w io.Writer) router.View {
	return func() error {
		state := st.State()
		if !state.LoggedIn() {
			_, err := fmt.Fprintln(w, "You are not logged in.")
			return err
		}

		profile, err := state.User.Profile()
		if err != nil {
			return err
		}

		heading := color.New(color.FgGreen, color.Bold)
		_, _ = fmt.Fprintln(w, heading.Sprintf("Welcome to Threadly, %s!", orDefault(profile.DisplayName(), "friend")))
		rows := []struct{ label, value string }{
			{"Email", profile.Email},
			{"Location", profile.Location},
			{"Occupation", profile.Occupation},
			{"Picture", profile.PicturePath},
		}
		for _, row := range rows {
			if row.value == "" {
				continue
			}
			_, _ = fmt.Fprintf(w, "  %-11s %s\n", row.label+":", row.value)
		}
		_, err = fmt.Fprintf(w, "  %-11s %d viewed, %d impressions, %d friends\n",
			"Profile:", profile.ViewedProfile, profile.Impressions, len(profile.Friends))
		return err
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
