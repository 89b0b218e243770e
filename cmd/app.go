package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leonardinius/loxfront/internal/config"
	"github.com/leonardinius/loxfront/internal/loxerrors"
	"github.com/leonardinius/loxfront/internal/parser"
	"github.com/leonardinius/loxfront/internal/scanner"
)

// Exit codes, sysexits(3) style.
const (
	ExitOK       = 0
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitNoInput  = 66
	ExitSoftware = 70
)

var ErrStatic = errors.New("static errors found")

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

type LoxApp struct {
	opts    *appOpts
	cfg     config.Config
	printer parser.Printer
	logger  *slog.Logger
}

func NewLoxApp(options ...AppOption) *LoxApp {
	app := &LoxApp{opts: newAppOpts(options...), cfg: config.Default()}
	app.printer = parser.NewAstPrinter()
	app.logger = newLogger(app.opts.stderr, false)
	return app
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newPrinter(name string) (parser.Printer, error) {
	switch name {
	case "ast":
		return parser.NewAstPrinter(), nil
	case "rpn":
		return parser.NewRPNPrinter(), nil
	case "tree":
		return parser.NewTreePrinter(), nil
	}
	return nil, fmt.Errorf("%w %q", config.ErrInvalidPrinter, name)
}

// Main runs golox with the command line arguments and returns the process exit status.
func (app *LoxApp) Main(args []string) int {
	if args == nil {
		args = []string{}
	}

	root := app.newRootCommand()
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return ExitOK
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		if !errors.Is(err, ErrStatic) {
			fmt.Fprintln(app.opts.stderr, err)
		}
		return exitErr.code
	}

	fmt.Fprintln(app.opts.stderr, err)
	fmt.Fprintln(app.opts.stderr, "Usage: golox [script]")
	return ExitUsage
}

func (app *LoxApp) configure(cmd *cobra.Command, f *flags) error {
	cfg, err := config.Load(f.cfgFile)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("printer") {
		cfg.Printer = f.printer
	}
	if cmd.Flags().Changed("tokens") {
		cfg.ShowTokens = f.showTokens
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = f.verbose
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	printer, err := newPrinter(cfg.Printer)
	if err != nil {
		return err
	}

	app.cfg = cfg
	app.printer = printer
	app.logger = newLogger(app.opts.stderr, cfg.Verbose)
	app.logger.Debug("configured", "config", f.cfgFile, "printer", cfg.Printer, "tokens", cfg.ShowTokens)

	return nil
}

// lineReader is the part of *readline.Instance the prompt loop uses.
type lineReader interface {
	Readline() (string, error)
}

func (app *LoxApp) runPrompt() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      app.cfg.Prompt,
		HistoryFile: app.cfg.HistoryFile,
		Stdout:      app.opts.stdout,
		Stderr:      app.opts.stderr,
	})
	if err != nil {
		return &exitError{code: ExitSoftware, err: err}
	}
	defer rl.Close()

	return app.repl(rl)
}

func (app *LoxApp) repl(rl lineReader) error {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return &exitError{code: ExitSoftware, err: err}
		}

		if err := app.run(line); err != nil && !loxerrors.IsStatic(err) {
			app.logger.Error("internal error", "error", err)
		}

		// one bad line must not poison the next ones
		app.opts.reporter.Reset()
	}
}

func (app *LoxApp) runFile(scriptPath string) error {
	bytes, err := os.ReadFile(scriptPath)
	if err != nil {
		return &exitError{code: ExitNoInput, err: err}
	}

	app.logger.Debug("running file", "path", scriptPath, "bytes", len(bytes))

	err = app.run(string(bytes))
	if err != nil && !loxerrors.IsStatic(err) {
		return &exitError{code: ExitSoftware, err: err}
	}

	if app.opts.reporter.HadError() {
		return &exitError{code: ExitDataErr, err: ErrStatic}
	}

	return nil
}

// run scans and parses one unit of input and prints the resulting trees.
// Diagnostics are reported as they are found; the returned error only tells
// the caller that something went wrong.
func (app *LoxApp) run(input string) error {
	s := scanner.NewScanner(input, scanner.WithReporter(app.opts.reporter))

	tokens, err := s.Scan()
	app.logger.Debug("scanned", "tokens", len(tokens), "error", err)

	if app.cfg.ShowTokens {
		for _, tok := range tokens {
			fmt.Fprintln(app.opts.stdout, tok.GoString())
		}
	}

	if err != nil {
		return err
	}

	p := parser.NewParser(tokens, parser.WithReporter(app.opts.reporter))
	exprs, err := p.ParseAll()
	app.logger.Debug("parsed", "expressions", len(exprs), "error", err)
	if err != nil {
		return err
	}

	for _, expr := range exprs {
		fmt.Fprintln(app.opts.stdout, app.printer.Print(expr))
	}

	return nil
}
