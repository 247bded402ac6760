package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mitchellh/cli"
	"github.com/roots/asc-meta/app_paths"
	"github.com/roots/asc-meta/cli_config"
	"github.com/roots/asc-meta/cmd"
)

const Version = "0.1.0"

const envPrefix = "ASC_META_"

const defaultCommand = "validate"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stdin := bufio.NewReader(os.Stdin)

	ui := &cli.ColoredUi{
		ErrorColor: cli.UiColorRed,
		WarnColor:  cli.UiColorYellow,
		Ui: &cli.BasicUi{
			Reader:      stdin,
			Writer:      os.Stdout,
			ErrorWriter: os.Stderr,
		},
	}

	conf, err := loadConfig()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	if !isTerminal(os.Stdout) {
		conf.NoColor = true
	}

	var prompter cmd.Prompter = cmd.NewReaderPrompter(ui, stdin)
	if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		prompter = &cmd.TerminalPrompter{}
	}

	commands := map[string]cli.CommandFactory{
		"validate": func() (cli.Command, error) {
			return cmd.NewValidateCommand(ctx, ui, prompter, conf), nil
		},
		"limits": func() (cli.Command, error) {
			return &cmd.LimitsCommand{UI: ui}, nil
		},
	}

	c := &cli.CLI{
		Name:         "asc-meta",
		Version:      Version,
		Autocomplete: true,
		HelpFunc:     HelpFunc("asc-meta"),
		Commands:     commands,
		Args:         withDefaultCommand(args),
	}

	exitStatus, err := c.Run()

	if err != nil {
		ui.Error(err.Error())
	}

	return exitStatus
}

func loadConfig() (cli_config.Config, error) {
	conf := cli_config.NewConfig(cli_config.Config{
		InteractiveHints: true,
	})

	if err := conf.LoadFile(app_paths.ConfigPath("cli.yml")); err != nil {
		return conf, err
	}

	if err := conf.LoadEnv(envPrefix); err != nil {
		return conf, err
	}

	return conf, nil
}

// withDefaultCommand routes bare field flags (or no arguments at all) to the
// validate command. Flags handled by the CLI itself are left alone.
func withDefaultCommand(args []string) []string {
	if len(args) == 0 {
		return []string{defaultCommand}
	}

	first := args[0]
	if !strings.HasPrefix(first, "-") {
		return args
	}

	switch strings.TrimLeft(first, "-") {
	case "h", "help", "v", "version", "autocomplete-install", "autocomplete-uninstall":
		return args
	}

	return append([]string{defaultCommand}, args...)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
