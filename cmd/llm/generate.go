package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	llm "github.com/mutablelogic/go-llm-local"
	opt "github.com/mutablelogic/go-llm-local/pkg/opt"
	local "github.com/mutablelogic/go-llm-local/pkg/provider/local"
	schema "github.com/mutablelogic/go-llm-local/pkg/schema"
	wordwrap "github.com/muesli/reflow/wordwrap"
	attribute "go.opentelemetry.io/otel/attribute"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type GenerateCommands struct {
	Complete CompleteCommand `cmd:"" name:"complete" help:"Send a single message and print the response." group:"GENERATE"`
	Chat     ChatCommand     `cmd:"" name:"chat" help:"Start a conversation, one message per line." group:"GENERATE"`
}

type GenerateOpts struct {
	System      string   `name:"system" help:"System prompt" optional:""`
	Temperature *float64 `name:"temperature" short:"t" help:"Temperature for sampling (0 to 2)" optional:""`
	MaxTokens   *uint    `name:"max-tokens" help:"Maximum number of tokens to generate" optional:""`
	Stop        []string `name:"stop" help:"Stop sequences" optional:""`
	Seed        *uint    `name:"seed" help:"Random seed" optional:""`
}

type CompleteCommand struct {
	GenerateOpts `embed:""`
	Text string `arg:"" name:"text" help:"Message text, or - to read from stdin" optional:""`
}

type ChatCommand struct {
	GenerateOpts `embed:""`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *CompleteCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// Message from the argument, and from stdin when piped
	text, err := readText(cmd.Text)
	if err != nil {
		return err
	} else if text == "" {
		return llm.ErrBadParameter.With("missing message text")
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "CompleteCommand",
		attribute.String("model", client.Model()),
		attribute.String("kind", client.Kind().String()),
	)
	defer func() { endSpan(err) }()

	response, err := client.WithoutSession(parent, schema.NewUserMessage(text), cmd.opts()...)
	if errors.Is(err, llm.ErrMaxTokens) && response != nil {
		ctx.logger.Warn("response truncated", "max_tokens", client.MaxTokens())
	} else if err != nil {
		return err
	}

	fmt.Println(wrap(response.Text()))
	return nil
}

func (cmd *ChatCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ChatCommand",
		attribute.String("model", client.Model()),
	)
	defer func() { endSpan(err) }()

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	scanner := bufio.NewScanner(os.Stdin)
	var conversation schema.Conversation
	for {
		if interactive {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		response, err := client.WithSession(parent, &conversation, schema.NewUserMessage(text), cmd.opts()...)
		if errors.Is(err, llm.ErrMaxTokens) && response != nil {
			ctx.logger.Warn("response truncated", "max_tokens", client.MaxTokens())
		} else if err != nil {
			return err
		}
		fmt.Println(wrap(response.Text()))
		ctx.logger.Debug("conversation", "messages", len(conversation), "tokens", conversation.Tokens())
	}
	return scanner.Err()
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (cmd GenerateOpts) opts() []opt.Opt {
	opts := []opt.Opt{}
	if cmd.System != "" {
		opts = append(opts, local.WithSystemPrompt(cmd.System))
	}
	if cmd.Temperature != nil {
		opts = append(opts, local.WithTemperature(*cmd.Temperature))
	}
	if cmd.MaxTokens != nil {
		opts = append(opts, local.WithMaxTokens(*cmd.MaxTokens))
	}
	if len(cmd.Stop) > 0 {
		opts = append(opts, local.WithStopSequences(cmd.Stop...))
	}
	if cmd.Seed != nil {
		opts = append(opts, local.WithSeed(*cmd.Seed))
	}
	return opts
}

// readText returns the argument, with stdin prepended when stdin is not a
// terminal or the argument is "-"
func readText(arg string) (string, error) {
	var parts []string
	if arg == "-" || !term.IsTerminal(int(os.Stdin.Fd())) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		parts = append(parts, string(data))
	}
	if arg != "-" {
		parts = append(parts, arg)
	}
	return strings.TrimSpace(strings.Join(parts, "\n\n")), nil
}

// wrap word-wraps text to the terminal width
func wrap(text string) string {
	if width := termWidth(); width > 0 {
		return wordwrap.String(text, width)
	}
	return text
}

// termWidth returns the width of stdout, or zero when it is not a terminal
func termWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	if width, _, err := term.GetSize(fd); err == nil {
		return width
	}
	return 0
}
