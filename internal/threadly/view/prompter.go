package view

import (
	"io"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Prompter asks the user for input. SurveyPrompter is the terminal implementation.
type Prompter interface {
	Input(message, def string) (string, error)
	Path(message, def string) (string, error)
	Password(message string) (string, error)
	Select(message string, options []string, def string) (string, error)
}

// SurveyPrompter prompts on a terminal through survey.
type SurveyPrompter struct {
	In  terminal.FileReader
	Out terminal.FileWriter
	Err io.Writer
}

// NewSurveyPrompter prompts on the process's standard streams.
func NewSurveyPrompter() *SurveyPrompter {
	return &SurveyPrompter{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

func (p *SurveyPrompter) opts() []survey.AskOpt {
	return []survey.AskOpt{survey.WithStdio(p.In, p.Out, p.Err)}
}

// Input implements Prompter
func (p *SurveyPrompter) Input(message, def string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &answer, p.opts()...)
	return answer, err
}

// Path implements Prompter. Tab completes file names.
func (p *SurveyPrompter) Path(message, def string) (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: message,
		Default: def,
		Help:    "Path to an image file; press tab to complete",
		Suggest: func(toComplete string) []string {
			matches, _ := filepath.Glob(toComplete + "*")
			return matches
		},
	}
	err := survey.AskOne(prompt, &answer, p.opts()...)
	return answer, err
}

// Password implements Prompter
func (p *SurveyPrompter) Password(message string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Password{Message: message}, &answer, p.opts()...)
	return answer, err
}

// Select implements Prompter
func (p *SurveyPrompter) Select(message string, options []string, def string) (string, error) {
	var answer string
	prompt := &survey.Select{Message: message, Options: options}
	if def != "" {
		prompt.Default = def
	}
	err := survey.AskOne(prompt, &answer, p.opts()...)
	return answer, err
}
