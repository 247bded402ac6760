package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/cli"
	"github.com/posener/complete"
	"github.com/roots/asc-meta/cli_config"
	"github.com/roots/asc-meta/metadata"
)

type ValidateCommand struct {
	UI       cli.Ui
	Prompter Prompter
	Config   cli_config.Config
	ctx      context.Context
	flags    *flag.FlagSet
	values   map[string]*string
}

func NewValidateCommand(ctx context.Context, ui cli.Ui, prompter Prompter, conf cli_config.Config) *ValidateCommand {
	c := &ValidateCommand{UI: ui, Prompter: prompter, Config: conf, ctx: ctx}
	c.init()
	return c
}

func (c *ValidateCommand) init() {
	c.flags = flag.NewFlagSet("", flag.ContinueOnError)
	c.flags.SetOutput(io.Discard)
	c.flags.Usage = func() { c.UI.Info(c.Help()) }
	c.values = make(map[string]*string)

	for _, field := range metadata.Fields() {
		c.values[field.ID] = c.flags.String(field.Flag, "", field.Usage)
	}
}

func (c *ValidateCommand) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			c.UI.Error(err.Error())
		}
		return 1
	}

	args = c.flags.Args()

	commandArgumentValidator := &CommandArgumentValidator{required: 0, optional: 0}
	commandArgumentErr := commandArgumentValidator.validate(args)
	if commandArgumentErr != nil {
		c.UI.Error(commandArgumentErr.Error())
		c.UI.Output(c.Help())
		return 1
	}

	submission := c.flagSubmission()

	if submission.Len() == 0 {
		var err error
		submission, err = c.interactiveSubmission()

		if errors.Is(err, ErrAborted) {
			c.UI.Warn("\nValidation interrupted.")
			return 0
		}

		if err != nil {
			c.UI.Error(err.Error())
			return 1
		}
	}

	report := metadata.NewReport(submission)
	c.UI.Output(strings.TrimSuffix(c.renderer().Render(report), "\n"))

	return 0
}

// flagSubmission only includes flags with a non-empty value.
func (c *ValidateCommand) flagSubmission() *metadata.Submission {
	submission := metadata.NewSubmission()

	for _, field := range metadata.Fields() {
		if value := *c.values[field.ID]; value != "" {
			submission.Set(field.ID, value)
		}
	}

	return submission
}

// interactiveSubmission discards everything collected so far when any
// prompt is aborted.
func (c *ValidateCommand) interactiveSubmission() (*metadata.Submission, error) {
	if c.Config.InteractiveHints {
		c.UI.Output("\nApple App Store Metadata Validator")
		c.UI.Output(strings.Repeat("=", 60))
		c.UI.Output("Enter metadata for validation. Press Ctrl+D (Unix) or Ctrl+Z (Windows) when done.\n")
	}

	submission := metadata.NewSubmission()

	for _, field := range metadata.Fields() {
		c.UI.Output(fmt.Sprintf("\n%s (max %d chars):", field.Label, field.Limit))

		var text string
		var err error

		if field.Multiline {
			if c.Config.InteractiveHints {
				c.UI.Output("(Multi-line input - press Ctrl+D/Ctrl+Z on a new line when done)")
			}
			text, err = c.Prompter.Block(c.ctx, "")
		} else {
			text, err = c.Prompter.Line(c.ctx, ">")
		}

		if err != nil {
			return nil, err
		}

		submission.Set(field.ID, text)
	}

	return submission, nil
}

func (c *ValidateCommand) renderer() metadata.Renderer {
	renderer := metadata.DefaultRenderer
	if c.Config.ASCII {
		renderer = metadata.ASCIIRenderer
	}

	renderer.Color = !c.Config.NoColor
	return renderer
}

func (c *ValidateCommand) Synopsis() string {
	return "Validates App Store metadata against character limits"
}

func (c *ValidateCommand) Help() string {
	helpText := `
Usage: asc-meta validate [options]

Validates Apple App Store metadata against its character limits.
Characters are counted per Unicode code point, not per byte.

When no field options are given, each field is prompted for interactively.
Description and What's New accept multiple lines; finish them with Ctrl+D.

Validate an app name and subtitle:

  $ asc-meta validate --app-name "MyApp" --subtitle "Do things faster"

The validate command is the default, so this is equivalent:

  $ asc-meta --app-name "MyApp" --subtitle "Do things faster"

Options:
      --app-name          App name (max 30 chars)
      --subtitle          Subtitle (max 30 chars)
      --promotional-text  Promotional text (max 170 chars)
      --description       Description (max 4000 chars)
      --keywords          Keywords (max 100 chars, comma-separated)
      --whats-new         What's New text (max 4000 chars)
  -h, --help              show this help
`

	return strings.TrimSpace(helpText)
}

func (c *ValidateCommand) AutocompleteArgs() complete.Predictor {
	return complete.PredictNothing
}

func (c *ValidateCommand) AutocompleteFlags() complete.Flags {
	flags := complete.Flags{}

	for _, field := range metadata.Fields() {
		flags["--"+field.Flag] = complete.PredictAnything
	}

	return flags
}
