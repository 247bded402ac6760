package cmd

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mitchellh/cli"
)

// ErrAborted is returned when input is interrupted or ends before a field
// is complete.
var ErrAborted = errors.New("input aborted")

type Prompter interface {
	// Line reads a single line of input.
	Line(ctx context.Context, label string) (string, error)
	// Block reads lines until end of input and joins them with newlines.
	Block(ctx context.Context, label string) (string, error)
}

// ReaderPrompter reads from a shared buffered reader. UI must read from the
// same Reader so that buffered input is not lost between prompts.
type ReaderPrompter struct {
	UI     cli.Ui
	Reader *bufio.Reader
}

func NewReaderPrompter(ui cli.Ui, reader *bufio.Reader) *ReaderPrompter {
	return &ReaderPrompter{UI: ui, Reader: reader}
}

func (p *ReaderPrompter) Line(ctx context.Context, label string) (string, error) {
	line, err := readWithContext(ctx, func() (string, error) {
		return p.UI.Ask(label)
	})

	if err != nil {
		return "", ErrAborted
	}

	return line, nil
}

func (p *ReaderPrompter) Block(ctx context.Context, label string) (string, error) {
	if label != "" {
		p.UI.Output(label)
	}

	return readWithContext(ctx, func() (string, error) {
		var lines []string

		for {
			line, err := p.Reader.ReadString('\n')

			if err == io.EOF {
				if line != "" {
					lines = append(lines, strings.TrimRight(line, "\r\n"))
				}
				break
			}

			if err != nil {
				return "", ErrAborted
			}

			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}

		return strings.Join(lines, "\n"), nil
	})
}

// TerminalPrompter uses promptui line editing when attached to a terminal.
type TerminalPrompter struct{}

func (p *TerminalPrompter) Line(ctx context.Context, label string) (string, error) {
	if ctx.Err() != nil {
		return "", ErrAborted
	}

	prompt := promptui.Prompt{Label: label}

	line, err := prompt.Run()
	if err != nil {
		return "", ErrAborted
	}

	return line, nil
}

// Block ends on Ctrl+D at an empty line. Ctrl+C aborts.
func (p *TerminalPrompter) Block(ctx context.Context, label string) (string, error) {
	var lines []string

	for {
		if ctx.Err() != nil {
			return "", ErrAborted
		}

		prompt := promptui.Prompt{
			Label: label,
			Templates: &promptui.PromptTemplates{
				Prompt:  `{{ "|" | faint }} `,
				Valid:   `{{ "|" | faint }} `,
				Invalid: `{{ "|" | faint }} `,
				Success: `{{ "|" | faint }} `,
			},
		}

		line, err := prompt.Run()

		if errors.Is(err, promptui.ErrEOF) {
			break
		}

		if err != nil {
			return "", ErrAborted
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), nil
}

func readWithContext(ctx context.Context, read func() (string, error)) (string, error) {
	if ctx.Err() != nil {
		return "", ErrAborted
	}

	type result struct {
		text string
		err  error
	}

	resultCh := make(chan result, 1)

	go func() {
		text, err := read()
		resultCh <- result{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrAborted
	case r := <-resultCh:
		return r.text, r.err
	}
}
