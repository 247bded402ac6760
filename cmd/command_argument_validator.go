package cmd

import "fmt"

type CommandArgumentValidator struct {
	required int
	optional int
}

func (c *CommandArgumentValidator) validate(args []string) error {
	argCount := len(args)
	max := c.required + c.optional

	expectedCount := fmt.Sprintf("exactly %d", c.required)
	if c.optional > 0 {
		expectedCount = fmt.Sprintf("between %d and %d", c.required, max)
	}

	switch {
	case argCount > max:
		return fmt.Errorf("Error: too many arguments (expected %s, got %d)\n", expectedCount, argCount)
	case argCount < c.required:
		return fmt.Errorf("Error: missing arguments (expected %s, got %d)\n", expectedCount, argCount)
	}

	return nil
}
