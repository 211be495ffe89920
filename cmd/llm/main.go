package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	log "github.com/charmbracelet/log"
	otel "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Configuration
	Config   string        `name:"config" type:"path" help:"YAML configuration file" optional:""`
	Endpoint string        `name:"endpoint" env:"OPENAI_API_BASE" help:"Server endpoint, including the version path" optional:""`
	Token    string        `name:"token" env:"OPENAI_API_KEY" help:"API token, if the server requires one" optional:""`
	Proxy    string        `name:"proxy" env:"OPENAI_PROXY" help:"Outbound proxy URL" optional:""`
	Model    string        `name:"model" short:"m" help:"Model name" optional:""`
	Timeout  time.Duration `name:"timeout" help:"Request timeout" optional:""`

	// Private fields
	ctx      context.Context
	name     string
	logger   *log.Logger
	tracer   trace.Tracer
	defaults *Defaults
}

type CLI struct {
	Globals
	ModelCommands    `embed:""`
	GenerateCommands `embed:""`
	Version VersionCommand `cmd:"" name:"version" help:"Print version information."`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	name := execName()
	cli := new(CLI)
	cmd := kong.Parse(cli,
		kong.Name(name),
		kong.Description("Command line interface for a local OpenAI-compatible LLM server"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	os.Exit(run(cmd, name, &cli.Globals))
}

func run(cmd *kong.Context, name string, globals *Globals) int {
	// Create a context which is cancelled on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	globals.ctx = ctx
	globals.name = name

	// Logger
	globals.logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          name,
		ReportTimestamp: globals.Verbose,
		Level:           logLevel(globals),
	})

	// Tracer from the global provider, which is a no-op unless one is registered
	globals.tracer = otel.Tracer(name)

	// Saved defaults
	if path, err := defaultsPath(name); err != nil {
		globals.logger.Error(err)
		return -1
	} else if defaults, err := NewDefaults(path); err != nil {
		globals.logger.Error(err)
		return -1
	} else {
		globals.defaults = defaults
	}

	// Run the command
	if err := cmd.Run(globals); err != nil {
		globals.logger.Error(err)
		return -1
	}
	return 0
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	name, err := os.Executable()
	if err != nil {
		panic(err)
	}
	return filepath.Base(name)
}

func logLevel(globals *Globals) log.Level {
	switch {
	case globals.Debug:
		return log.DebugLevel
	case globals.Verbose:
		return log.InfoLevel
	default:
		return log.WarnLevel
	}
}
