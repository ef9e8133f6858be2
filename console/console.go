// Package console serves the bot on standard input and output. Every line read is a message
// written by the configured user in the configured guild.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/napalu/chatopt/command"
	"github.com/napalu/chatopt/logging"
	"golang.org/x/sync/errgroup"
)

// Prompt is written before every line when the console is interactive
const Prompt = "> "

// Options configures a Console
type Options struct {
	In  io.Reader
	Out io.Writer
	// Author writes every message
	Author *command.Member
	// Guild receives every message. nil simulates direct messages.
	Guild *command.Guild
	// Workers bounds the number of messages handled concurrently
	Workers     int
	Interactive bool
	NoColor     bool
	Logger      *slog.Logger
}

// Console reads messages line by line and dispatches them
type Console struct {
	dispatcher *command.Dispatcher
	opts       Options
	mu         sync.Mutex
	errColor   *color.Color
	dmColor    *color.Color
}

// New creates a Console dispatching with dispatcher
func New(dispatcher *command.Dispatcher, opts Options) *Console {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	c := &Console{
		dispatcher: dispatcher,
		opts:       opts,
		errColor:   color.New(color.FgRed),
		dmColor:    color.New(color.FgCyan),
	}
	if opts.NoColor {
		c.errColor.DisableColor()
		c.dmColor.DisableColor()
	}

	return c
}

// Run dispatches every line read until the input ends or ctx is done. Errors returned by
// commands are printed and do not stop the console.
func (c *Console) Run(ctx context.Context) error {
	var g errgroup.Group
	g.SetLimit(c.opts.Workers)

	scanner := bufio.NewScanner(c.opts.In)
	c.prompt()
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			c.prompt()
			continue
		}
		msg := &command.Message{Content: line, Author: c.opts.Author, Guild: c.opts.Guild}
		g.Go(func() error {
			if err := c.dispatcher.Dispatch(ctx, msg, c); err != nil {
				c.opts.Logger.Error("dispatch failed", "content", msg.Content, "error", err)
				c.write(c.errColor, "error: "+err.Error()+"\n")
			}
			return nil
		})
		if c.opts.Workers == 1 {
			// the prompt follows the replies of the previous line
			_ = g.Wait()
		}
		c.prompt()
	}

	_ = g.Wait()
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	return ctx.Err()
}

// Send writes reply to the output
func (c *Console) Send(ctx context.Context, reply command.Reply) error {
	return c.write(nil, Render(reply))
}

// SendDM writes reply to the output, marked as a direct message
func (c *Console) SendDM(ctx context.Context, reply command.Reply) error {
	return c.write(c.dmColor, "(DM)\n"+Render(reply))
}

func (c *Console) prompt() {
	if c.opts.Interactive {
		c.write(nil, Prompt)
	}
}

func (c *Console) write(col *color.Color, s string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	if col != nil {
		_, err = col.Fprint(c.opts.Out, s)
	} else {
		_, err = io.WriteString(c.opts.Out, s)
	}

	return err
}
