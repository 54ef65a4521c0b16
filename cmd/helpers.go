package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/threadly/threadly/internal/log"
	"github.com/threadly/threadly/internal/threadly"
	"github.com/threadly/threadly/internal/threadly/api"
	"github.com/threadly/threadly/internal/threadly/config"
	"github.com/threadly/threadly/internal/threadly/errors"
	"github.com/threadly/threadly/internal/threadly/form"
)

// loadConfig reads the config from the working directory and applies the --url flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	conf, err := config.LoadFromWorkDir()
	if err != nil {
		return nil, err
	}
	if url, _ := cmd.Flags().GetString("url"); strings.TrimSpace(url) != "" {
		conf.Url = strings.TrimSpace(url)
		if err := conf.Validate(); err != nil {
			return nil, err
		}
	}
	log.Debug("Using backend %s", conf.Url)
	log.DebugH2("splashDelay=%v timeout=%v homeRoute=%s", conf.SplashDelay, conf.Timeout, conf.HomeRoute)
	return conf, nil
}

// newApp builds a client session for cmd starting in mode.
func newApp(cmd *cobra.Command, mode form.Mode) (*threadly.Threadly, error) {
	conf, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	insecure, _ := cmd.Flags().GetBool("insecure")
	return threadly.New(conf, threadly.Options{
		Mode:     mode,
		Out:      cmd.OutOrStdout(),
		Insecure: insecure,
	})
}

// reportSubmitError logs a submission failure the way the form shows it.
func reportSubmitError(err error) {
	var verr *form.ValidationError
	var httpErr *api.HTTPError
	switch {
	case errors.As(err, &verr):
		log.Error("Please fix the following fields:")
		for _, field := range verr.Fields.Fields() {
			log.ErrorH2("%s: %s", form.Label(field), verr.Fields[field])
		}
	case errors.As(err, &httpErr):
		log.Error("Server rejected the request (%d): %s", httpErr.StatusCode, httpErr.Message)
	default:
		log.Error("%v", err)
	}
}
