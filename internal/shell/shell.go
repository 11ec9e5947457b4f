// Package shell is the interactive graphops command shell.
//
// Every input line is split into words and dispatched through a cobra
// command tree owned by the Shell. Commands print the messages produced by
// package render; only I/O failures of the store surface as errors.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/muesli/cancelreader"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/santhosh-kumar-karthikeyan/graph-ops/core"
	"github.com/santhosh-kumar-karthikeyan/graph-ops/internal/config"
	"github.com/santhosh-kumar-karthikeyan/graph-ops/internal/metrics"
	"github.com/santhosh-kumar-karthikeyan/graph-ops/internal/store"
)

// Intro is printed once when the REPL starts.
const Intro = "Welcome to the Graph shell. Type help or ? to list commands."

// Shell runs graph commands against one graph and one store.
type Shell struct {
	graph    *core.Graph
	store    *store.Store
	out      io.Writer
	logger   zerolog.Logger
	metrics  *metrics.Metrics
	prompt   string
	autosave bool
	trace    bool

	root   *cobra.Command
	ctx    context.Context
	exited bool
}

// Option configures a Shell.
type Option func(*Shell)

// WithPrompt sets the REPL prompt.
func WithPrompt(p string) Option {
	return func(s *Shell) { s.prompt = p }
}

// WithAutosave makes exit save the graph.
func WithAutosave(on bool) Option {
	return func(s *Shell) { s.autosave = on }
}

// WithTrace prints the search trace table before every search result.
func WithTrace(on bool) Option {
	return func(s *Shell) { s.trace = on }
}

// WithLogger sets the logger used for command failures.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Shell) { s.logger = l }
}

// WithMetrics sets the collectors updated by every command.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Shell) {
		if m != nil {
			s.metrics = m
		}
	}
}

// New returns a Shell over g that persists through st and prints to out.
// Without options the shell uses the config defaults, no logging and
// unregistered metrics.
func New(g *core.Graph, st *store.Store, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		graph:    g,
		store:    st,
		out:      &syncWriter{w: out},
		logger:   zerolog.Nop(),
		metrics:  metrics.New(nil),
		prompt:   config.DefaultPrompt,
		autosave: true,
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.root = s.newRoot()
	s.metrics.Observe(g)

	return s
}

// Exec runs a single command line. It reports whether the line asked the
// shell to exit. Blank lines do nothing.
func (s *Shell) Exec(ctx context.Context, line string) (exit bool, err error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}

	cmd, _, ferr := s.root.Find(args)
	if ferr != nil || cmd == s.root {
		s.println("*** Unknown syntax: " + strings.TrimSpace(line))
		return false, nil
	}

	s.ctx = ctx
	s.exited = false
	s.root.SetArgs(args)
	if err := s.root.ExecuteContext(ctx); err != nil {
		s.logger.Error().Err(err).Str("command", args[0]).Msg("command failed")
		s.println("Error: " + err.Error())

		return s.exited, err
	}

	return s.exited, nil
}

// Run prints the intro and reads commands from in until exit, end of input
// or ctx is done. End of input behaves like exit. Cancelling ctx interrupts a
// pending read. A failed save on exit is returned.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	cr, err := cancelreader.NewReader(in)
	if err != nil {
		return fmt.Errorf("shell: input: %w", err)
	}
	defer cr.Close()
	stop := context.AfterFunc(ctx, func() { cr.Cancel() })
	defer stop()

	s.println(Intro)
	sc := bufio.NewScanner(cr)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.print(s.prompt)
		if !sc.Scan() {
			err := sc.Err()
			if errors.Is(err, cancelreader.ErrCanceled) {
				return ctx.Err()
			}
			if err != nil {
				return fmt.Errorf("shell: read input: %w", err)
			}
			s.println("")
			_, err = s.Exec(ctx, "exit")

			return err
		}

		exit, err := s.Exec(ctx, sc.Text())
		if exit {
			return err
		}
	}
}

// Reloaded reports a reload of the data file triggered outside the shell.
// It is shaped to be passed to store.Watch.
func (s *Shell) Reloaded(err error) {
	if err != nil {
		s.logger.Warn().Err(err).Str("path", s.store.Path()).Msg("reload failed")
		s.println("Reload failed: " + err.Error())

		return
	}
	s.metrics.Observe(s.graph)
	s.println("Graph reloaded from " + s.store.Path())
}

func (s *Shell) print(msg string) {
	fmt.Fprint(s.out, msg)
}

func (s *Shell) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

// syncWriter serializes writes from the shell and from reload callbacks.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (sw *syncWriter) Write(p []byte) (int, error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	return sw.w.Write(p)
}
