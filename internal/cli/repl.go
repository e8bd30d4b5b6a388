// Package cli provides terminal presentation for fibs: result display, the
// capacity table, shell completion and the interactive REPL.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/fibs/internal/errors"
	"github.com/agbru/fibs/internal/fibonacci"
	"github.com/agbru/fibs/internal/orchestration"
	"github.com/agbru/fibs/internal/ui"
)

// replMaxCount caps "seq" output in the REPL.
const replMaxCount = 1000

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// DefaultType is the numeric kind selected at startup.
	DefaultType string
	// Timeout is the maximum duration for each command.
	Timeout time.Duration
}

// REPL represents an interactive session over the kind registry.
type REPL struct {
	config      REPLConfig
	registry    *fibonacci.Registry
	currentType string
	in          io.Reader
	out         io.Writer
}

// NewREPL creates a new REPL instance.
//
// Parameters:
//   - registry: The kinds available to the session.
//   - config: REPL configuration.
func NewREPL(registry *fibonacci.Registry, config REPLConfig) *REPL {
	current := config.DefaultType
	if !registry.Has(current) {
		current = fibonacci.DefaultKind
	}
	return &REPL{
		config:      config,
		registry:    registry,
		currentType: current,
		in:          os.Stdin,
		out:         os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// CurrentType returns the name of the selected kind.
func (r *REPL) CurrentType() string {
	return r.currentType
}

// Start runs the session until "exit", EOF or ctx is canceled.
func (r *REPL) Start(ctx context.Context) {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	scanner := bufio.NewScanner(r.in)
	for {
		if ctx.Err() != nil {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
		fmt.Fprint(r.out, ui.ColorGreen()+"fibs> "+ui.ColorReset())

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
				fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			}
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if !r.processCommand(ctx, input) {
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %sfibs - interactive Fibonacci lookup%s    %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sf <n>%s              - Look up F(n) with the current type (or just type n)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sseq <start> [count]%s - Print consecutive terms (count defaults to all that fit)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %stype <name>%s        - Change numeric type\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %stypes%s              - List numeric types\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %slimits%s             - Show the capacity of every bounded type\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s             - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s               - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s        - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(ctx context.Context, input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "f", "fib":
		r.cmdLookup(ctx, args)
	case "seq", "s":
		r.cmdSequence(ctx, args)
	case "type", "t":
		r.cmdType(args)
	case "types", "ls":
		fmt.Fprintln(r.out)
		DisplayKinds(r.out, r.registry.Kinds(), r.currentType)
		fmt.Fprintln(r.out)
	case "limits":
		r.cmdLimits(ctx)
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		if n, err := strconv.ParseUint(cmd, 10, 64); err == nil {
			r.lookup(ctx, n)
		} else {
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		}
	}
	return true
}

func (r *REPL) parseIndex(arg string) (uint64, bool) {
	n, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorRed(), arg, ui.ColorReset())
		return 0, false
	}
	return n, true
}

func (r *REPL) cmdLookup(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: f <n>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	if n, ok := r.parseIndex(args[0]); ok {
		r.lookup(ctx, n)
	}
}

func (r *REPL) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.config.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.config.Timeout)
}

// lookup computes F(n) with the current kind and prints it.
func (r *REPL) lookup(ctx context.Context, n uint64) {
	kind, err := r.registry.Get(r.currentType)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	term, err := kind.Lookup(ctx, n)
	duration := time.Since(start)
	if err != nil {
		r.printError(err, duration)
		return
	}
	DisplayTerm(r.out, kind.Name(), term, duration, true)
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdSequence(ctx context.Context, args []string) {
	if len(args) == 0 || len(args) > 2 {
		fmt.Fprintf(r.out, "%sUsage: seq <start> [count]%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	start, ok := r.parseIndex(args[0])
	if !ok {
		return
	}
	var count uint64
	if len(args) == 2 {
		if count, ok = r.parseIndex(args[1]); !ok {
			return
		}
	}
	if count > replMaxCount {
		fmt.Fprintf(r.out, "%sCount capped at %d.%s\n", ui.ColorYellow(), replMaxCount, ui.ColorReset())
		count = replMaxCount
	}

	kind, err := r.registry.Get(r.currentType)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	if count == 0 && !kind.Bounded() {
		count = replMaxCount
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := kind.Sequence(ctx, start, count)
	if err != nil {
		r.printError(err, 0)
		return
	}
	if len(res.Terms) == 0 && res.Exhausted {
		fmt.Fprintf(r.out, "%sF(%d) does not fit in %s.%s\n", ui.ColorYellow(), start, kind.Name(), ui.ColorReset())
		return
	}
	DisplaySequence(r.out, kind.Name(), res, false)
}

func (r *REPL) cmdType(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: type <name>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Available types: %s\n", strings.Join(r.registry.Names(), ", "))
		return
	}

	name := strings.ToLower(args[0])
	if !r.registry.Has(name) {
		fmt.Fprintf(r.out, "%sUnknown type: %s%s\n", ui.ColorRed(), name, ui.ColorReset())
		fmt.Fprintf(r.out, "Available types: %s\n", strings.Join(r.registry.Names(), ", "))
		return
	}
	r.currentType = name
	fmt.Fprintf(r.out, "Type changed to: %s%s%s\n", ui.ColorGreen(), name, ui.ColorReset())
}

func (r *REPL) cmdLimits(ctx context.Context) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	results := orchestration.ComputeLimits(ctx, orchestration.BoundedKinds(r.registry))
	orchestration.SortLimitResults(results)
	fmt.Fprintln(r.out, RenderLimitsTable(results))
}

func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Type:     %s%s%s\n", ui.ColorCyan(), r.currentType, ui.ColorReset())
	if kind, err := r.registry.Get(r.currentType); err == nil {
		fmt.Fprintf(r.out, "  Bounded:  %s%t%s\n", ui.ColorCyan(), kind.Bounded(), ui.ColorReset())
	}
	fmt.Fprintf(r.out, "  Timeout:  %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintln(r.out)
}

// printError reports a failed command without ending the session.
func (r *REPL) printError(err error, duration time.Duration) {
	apperrors.HandleCalculationError(err, duration, r.out, ui.Colors{})
}
