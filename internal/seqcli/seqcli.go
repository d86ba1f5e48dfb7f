// Package seqcli holds the command handlers of the seqkit binary.
//
// Every command builds one fresh container and runs a script of operations against it.
// An operation is either a bare name ("pop") or a name with a value ("push=hello").
package seqcli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/convkit"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
)

const (
	StorageArray = "array"
	StorageList  = "list"
)

const (
	ErrUnknownOperation errorkit.Error = "unknown operation"
	ErrMissingValue     errorkit.Error = "missing operation value"
	ErrUnexpectedValue  errorkit.Error = "unexpected operation value"
	ErrMalformedValue   errorkit.Error = "malformed operation value"
	ErrUnknownStorage   errorkit.Error = "unknown storage"
)

// NewMux registers every seqkit command.
func NewMux(logger *logging.Logger) *cli.Mux {
	var m cli.Mux
	m.Handle("stack", StackCommand{Logger: logger})
	m.Handle("queue", QueueCommand{Logger: logger})
	m.Handle("deque", DequeCommand{Logger: logger})
	m.Handle("seq", SequenceCommand{Logger: logger})
	m.Handle("clutch", ClutchCommand{Logger: logger})
	return &m
}

// operation is a single step that the script runner can execute.
// A nil output means that the step has nothing to print.
type operation struct {
	Value bool
	Do    func(value string) (any, error)
}

type script map[string]operation

type step struct {
	Raw   string
	Name  string
	Value string
	Op    operation
}

func (sc script) parse(args []string) ([]step, error) {
	var steps []step
	for _, raw := range args {
		name, value, hasValue := strings.Cut(raw, "=")
		op, ok := sc[name]
		if !ok {
			return nil, ErrUnknownOperation.F("%q", raw)
		}
		if op.Value && !hasValue {
			return nil, ErrMissingValue.F("%s requires a value (%s=VALUE)", name, name)
		}
		if !op.Value && hasValue {
			return nil, ErrUnexpectedValue.F("%s does not take a value", name)
		}
		steps = append(steps, step{
			Raw:   raw,
			Name:  name,
			Value: value,
			Op:    op,
		})
	}
	return steps, nil
}

// run executes the script operations in order and stops at the first failing one.
func run(ctx context.Context, w cli.Response, logger *logging.Logger, sc script, args []string) {
	steps, err := sc.parse(args)
	if err != nil {
		w.ExitCode(cli.ExitCodeBadRequest)
		writeError(w, err)
		return
	}
	for _, st := range steps {
		logger.Debug(ctx, "executing operation", logging.Field("op", st.Name))
		out, err := st.Op.Do(st.Value)
		if err != nil {
			logger.Error(ctx, "operation failed",
				logging.Field("op", st.Raw),
				logging.ErrField(err))
			w.ExitCode(cli.ExitCodeError)
			fmt.Fprintf(errOut(w), "%s: %s\n", st.Raw, err.Error())
			return
		}
		if out != nil {
			writeLine(w, out)
		}
	}
	logger.Info(ctx, "script finished", logging.Field("steps", len(steps)))
}

func errOut(w cli.Response) io.Writer {
	if ew, ok := w.(cli.ErrorWriter); ok {
		return ew.Stderr()
	}
	return w
}

func writeLine(w io.Writer, v any) {
	fmt.Fprintln(w, v)
}

func writeError(w cli.Response, err error) {
	fmt.Fprintln(errOut(w), err.Error())
}

func loggerOrDiscard(l *logging.Logger) *logging.Logger {
	if l != nil {
		return l
	}
	return &logging.Logger{Out: io.Discard}
}

func parseIndex(raw string) (int, error) {
	index, err := convkit.Parse[int](raw)
	if err != nil {
		return 0, ErrMalformedValue.F("index %q: %w", raw, err)
	}
	return index, nil
}

// parsePair parses a "LEFT:RIGHT" shaped value.
func parsePair(raw string) (string, string, error) {
	l, r, ok := strings.Cut(raw, ":")
	if !ok {
		return "", "", ErrMalformedValue.F("%q is not in the LEFT:RIGHT format", raw)
	}
	return l, r, nil
}

func parseRange(raw string) (int, int, error) {
	l, r, err := parsePair(raw)
	if err != nil {
		return 0, 0, err
	}
	lo, err := parseIndex(l)
	if err != nil {
		return 0, 0, err
	}
	hi, err := parseIndex(r)
	if err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

func parseList[T any](raw string) ([]T, error) {
	if raw == "" {
		return nil, nil
	}
	vs, err := convkit.Parse[[]T](raw, convkit.Options{Separator: ","})
	if err != nil {
		return nil, ErrMalformedValue.F("list %q: %w", raw, err)
	}
	return vs, nil
}
