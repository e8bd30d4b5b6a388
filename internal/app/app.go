package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/agbru/fibs/internal/cli"
	"github.com/agbru/fibs/internal/config"
	apperrors "github.com/agbru/fibs/internal/errors"
	"github.com/agbru/fibs/internal/fibonacci"
	"github.com/agbru/fibs/internal/logging"
	"github.com/agbru/fibs/internal/metrics"
	"github.com/agbru/fibs/internal/ui"
)

// Application represents the fibs application instance.
type Application struct {
	Config    config.AppConfig
	Registry  *fibonacci.Registry
	Logger    logging.Logger
	Recorder  *metrics.Recorder
	Memory    *metrics.MemoryCollector
	In        io.Reader
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry sets a custom kind registry.
func WithRegistry(r *fibonacci.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// WithLogger sets the logger instead of the console logger on ErrWriter.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithInput sets the REPL input (os.Stdin by default).
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}
	if app.Registry == nil {
		app.Registry = fibonacci.DefaultRegistry()
	}

	programName := "fibs"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Registry.Names())
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	switch {
	case app.Logger != nil:
	case cfg.Quiet && !cfg.Debug:
		app.Logger = logging.NewNopLogger()
	default:
		app.Logger = logging.NewConsoleLogger(errWriter, "fibs", cfg.Debug, cfg.NoColor).
			With(logging.String("version", Version))
	}
	app.Memory = metrics.NewMemoryCollector()
	app.Recorder = metrics.NewRecorder(app.Memory)
	return app, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code. Modes are checked in order: completion, limits,
// interactive, sequence (count > 0) and lookup.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor)
	a.Logger.Debug("starting",
		logging.String("type", a.Config.Type),
		logging.Duration("timeout", a.Config.Timeout),
		logging.Bool("quiet", a.Config.Quiet))

	start := time.Now()
	var code int
	var mode string
	switch {
	case a.Config.Limits:
		mode, code = "limits", a.runLimits(ctx, out)
	case a.Config.Interactive:
		mode, code = "interactive", a.runREPL(ctx, out)
	case a.Config.Count > 0:
		mode, code = "sequence", a.runSequence(ctx, out)
	default:
		mode, code = "lookup", a.runLookup(ctx, out)
	}

	if a.Config.Metrics {
		// Quiet runs keep stdout for values only.
		metricsOut := out
		if a.Config.Quiet {
			metricsOut = a.ErrWriter
		}
		fmt.Fprintln(metricsOut)
		if err := a.Recorder.WriteText(metricsOut); err != nil {
			a.Logger.Error("writing metrics", err)
		}
	}
	a.Logger.Info("run finished",
		logging.String("mode", mode),
		logging.String("type", a.Config.Type),
		logging.Int("exit_code", code),
		logging.Duration("elapsed", time.Since(start)))
	return code
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Registry.Names()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runREPL starts the interactive session. Each command gets the configured
// timeout; the session itself only ends on exit, EOF or a signal.
func (a *Application) runREPL(ctx context.Context, out io.Writer) int {
	ctx, cleanup := SetupLifecycle(ctx, 0)
	defer cleanup()

	repl := cli.NewREPL(a.Registry, cli.REPLConfig{DefaultType: a.Config.Type, Timeout: a.Config.Timeout})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start(ctx)
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
