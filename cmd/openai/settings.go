package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	// Packages
	settings "github.com/mutablelogic/go-openai/pkg/settings"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type SettingsCommands struct {
	Settings struct {
		Get    SettingsGetCommand    `cmd:"" name:"get" help:"Print stored settings."`
		Set    SettingsSetCommand    `cmd:"" name:"set" help:"Store a setting, prompting for the value when not given."`
		Delete SettingsDeleteCommand `cmd:"" name:"delete" help:"Remove a stored setting."`
	} `cmd:"" name:"settings" help:"Manage stored settings." group:"SETTINGS"`
}

type SettingsGetCommand struct {
	Name   string `arg:"" optional:"" help:"Setting name, or all settings when empty"`
	Reveal bool   `name:"reveal" help:"Print the API key without redaction"`
}

type SettingsSetCommand struct {
	Value string `arg:"" optional:"" help:"Setting value"`
	Name  string `name:"name" default:"${api_key_option}" help:"Setting name"`
}

type SettingsDeleteCommand struct {
	Name string `arg:"" optional:"" default:"${api_key_option}" help:"Setting name"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *SettingsGetCommand) Run(ctx *Globals) error {
	names := ctx.store.Keys()
	if cmd.Name != "" {
		names = []string{cmd.Name}
	}
	for _, name := range names {
		value := ctx.store.Get(name)
		if name == settings.OptionAPIKey {
			if value = ctx.store.APIKey(); !cmd.Reveal {
				value = redact(value)
			}
		}
		fmt.Printf("%s: %s\n", name, value)
	}
	return nil
}

func (cmd *SettingsSetCommand) Run(ctx *Globals) error {
	value := cmd.Value
	if value == "" {
		if v, err := readValue(cmd.Name); err != nil {
			return err
		} else {
			value = v
		}
	}
	if value = settings.Sanitize(value); value == "" {
		return fmt.Errorf("%s: value is required", cmd.Name)
	}
	return ctx.store.Set(cmd.Name, value)
}

func (cmd *SettingsDeleteCommand) Run(ctx *Globals) error {
	return ctx.store.Set(cmd.Name, "")
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// readValue reads a value from stdin, without echo on a terminal
func readValue(name string) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprintf(os.Stderr, "%s: ", name)
		data, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		return string(data), err
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if line != "" {
		err = nil
	}
	return strings.TrimSpace(line), err
}

func redact(value string) string {
	if len(value) <= 6 {
		return strings.Repeat("*", len(value))
	}
	return value[:3] + strings.Repeat("*", len(value)-3)
}
