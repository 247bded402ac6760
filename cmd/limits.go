package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/cli"
	"github.com/posener/complete"
	"github.com/roots/asc-meta/metadata"
)

type LimitsCommand struct {
	UI cli.Ui
}

func (c *LimitsCommand) Run(args []string) int {
	commandArgumentValidator := &CommandArgumentValidator{required: 0, optional: 0}
	commandArgumentErr := commandArgumentValidator.validate(args)
	if commandArgumentErr != nil {
		c.UI.Error(commandArgumentErr.Error())
		c.UI.Output(c.Help())
		return 1
	}

	headers := []string{"Field", "Identifier", "Option", "Limit"}
	rows := [][]string{}

	for _, field := range metadata.Fields() {
		rows = append(rows, []string{
			field.Label,
			field.ID,
			"--" + field.Flag,
			fmt.Sprintf("%d", field.Limit),
		})
	}

	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}

	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	c.UI.Output(color.New(color.Bold).Sprint(formatRow(headers, widths)))

	for _, row := range rows {
		c.UI.Output(formatRow(row, widths))
	}

	return 0
}

func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))

	for i, cell := range cells {
		if i == len(cells)-1 {
			padded[i] = runewidth.FillLeft(cell, widths[i])
		} else {
			padded[i] = runewidth.FillRight(cell, widths[i])
		}
	}

	return strings.Join(padded, "  ")
}

func (c *LimitsCommand) Synopsis() string {
	return "Lists the character limit of every metadata field"
}

func (c *LimitsCommand) Help() string {
	helpText := `
Usage: asc-meta limits

Lists the App Store metadata fields and their character limits.

Options:
  -h, --help  show this help
`

	return strings.TrimSpace(helpText)
}

func (c *LimitsCommand) AutocompleteArgs() complete.Predictor {
	return complete.PredictNothing
}

func (c *LimitsCommand) AutocompleteFlags() complete.Flags {
	return complete.Flags{}
}
