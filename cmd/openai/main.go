package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	client "github.com/mutablelogic/go-client"
	openai "github.com/mutablelogic/go-openai"
	settings "github.com/mutablelogic/go-openai/pkg/settings"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// OpenAI
	OpenAI `embed:"" help:"OpenAI configuration"`

	// Settings
	Config  string        `name:"config" type:"path" default:"${config}" help:"Settings file, which holds the API key"`
	Timeout time.Duration `name:"timeout" default:"0" help:"Request timeout, or zero for no timeout"`

	// Passphrase for sealing the stored API key
	Passphrase string `name:"passphrase" env:"OPENAI_SETTINGS_PASSPHRASE" help:"Passphrase used to seal the stored API key"`

	// Context
	ctx      context.Context
	store    *settings.Store
	execName string
}

type OpenAI struct {
	OpenAIKey      string `name:"api-key" env:"OPENAI_API_KEY" help:"OpenAI API key, or the stored key when empty"`
	OpenAIEndpoint string `name:"endpoint" env:"OPENAI_ENDPOINT" help:"OpenAI endpoint"`
}

type CLI struct {
	Globals
	RequestCommands
	ArticleCommands
	SettingsCommands
	ServerCommands

	Version VersionCommand `cmd:"" name:"version" help:"Print version information."`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("OpenAI chat completion command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"config":         settingsPath(execName()),
			"api_key_option": settings.OptionAPIKey,
		},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx
	cli.Globals.execName = execName()

	// Open the settings store
	storeOpts := []settings.Opt{}
	if cli.Passphrase != "" {
		storeOpts = append(storeOpts, settings.WithPassphrase(cli.Passphrase))
	}
	store, err := settings.New(cli.Config, storeOpts...)
	cmd.FatalIfErrorf(err)
	cli.Globals.store = store

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// APIKey returns the key from the command line or environment, or else the
// stored key
func (g *Globals) APIKey() string {
	if key := strings.TrimSpace(g.OpenAIKey); key != "" {
		return key
	}
	return g.store.APIKey()
}

// Opts returns the client options set by the global flags
func (g *Globals) Opts() []openai.Opt {
	clientOpts := []client.ClientOpt{}
	if g.Debug || g.Verbose {
		clientOpts = append(clientOpts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.Timeout > 0 {
		clientOpts = append(clientOpts, client.OptTimeout(g.Timeout))
	}
	opts := []openai.Opt{openai.WithClientOpts(clientOpts...)}
	if g.OpenAIEndpoint != "" {
		opts = append(opts, openai.WithEndpoint(g.OpenAIEndpoint))
	}
	return opts
}

// Client returns a client for the API key
func (g *Globals) Client() (*openai.OpenAI, error) {
	return openai.New(g.APIKey(), g.Opts()...)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}

func settingsPath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, name, "settings.yaml")
}
