package main

import (
	"bytes"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/mitchellh/cli"
)

func HelpFunc(app string) cli.HelpFunc {
	return func(commands map[string]cli.CommandFactory) string {
		var buf bytes.Buffer

		buf.WriteString(fmt.Sprintf(
			"Usage: %s [--version] [--help] [<command>] [<args>]\n\n",
			app))
		buf.WriteString(fmt.Sprintf(
			"Running %s without a command is the same as `%s %s`.\n\n",
			app, app, defaultCommand))
		buf.WriteString("Available commands are:\n")
		printCommand(&buf, commands)

		return buf.String()
	}
}

func printCommand(buf *bytes.Buffer, commands map[string]cli.CommandFactory) *bytes.Buffer {
	keys := make([]string, 0, len(commands))
	maxKeyLen := 0
	for key := range commands {
		if len(key) > maxKeyLen {
			maxKeyLen = len(key)
		}

		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		command, err := commands[key]()
		if err != nil {
			log.Printf("[ERR] cli: Command '%s' failed to load: %s",
				key, err)
			continue
		}

		key = fmt.Sprintf("%s%s", key, strings.Repeat(" ", maxKeyLen-len(key)))
		buf.WriteString(fmt.Sprintf("    %s    %s\n", key, command.Synopsis()))
	}

	return buf
}
