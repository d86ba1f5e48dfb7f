package seqcli

import (
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/seqkit/pkg/datastruct"
	"go.llib.dev/seqkit/pkg/deque"
	"go.llib.dev/seqkit/pkg/queue"
	"go.llib.dev/seqkit/pkg/sequence"
	"go.llib.dev/seqkit/pkg/stack"
)

type StackCommand struct {
	Storage string `flag:"storage" env:"SEQKIT_STORAGE" env-default:"array" desc:"backing storage: array or list (default array)"`

	Logger *logging.Logger
}

func (cmd StackCommand) Summary() string {
	return "run push, pop, top, get, len, empty and print operations on a stack"
}

func (cmd StackCommand) ServeCLI(w cli.Response, r *cli.Request) {
	if !checkStorage(w, cmd.Storage) {
		return
	}
	var st stack.Stack[string] = stack.NewArray[string]()
	if cmd.Storage == StorageList {
		st = stack.NewList[string]()
	}
	sc := script{
		"push": {Value: true, Do: func(v string) (any, error) {
			st.Push(v)
			return nil, nil
		}},
		"pop": {Do: func(string) (any, error) { return st.Pop() }},
		"top": {Do: func(string) (any, error) { return st.Top() }},
	}
	addCommon(sc, st)
	ctx := logging.ContextWith(r.Context(),
		logging.Field("command", "stack"),
		logging.Field("storage", storageName(cmd.Storage)))
	run(ctx, w, loggerOrDiscard(cmd.Logger), sc, r.Args)
}

type QueueCommand struct {
	Storage string `flag:"storage" env:"SEQKIT_STORAGE" env-default:"array" desc:"backing storage: array or list (default array)"`

	Logger *logging.Logger
}

func (cmd QueueCommand) Summary() string {
	return "run enqueue, dequeue, peek, get, len, empty and print operations on a queue"
}

func (cmd QueueCommand) ServeCLI(w cli.Response, r *cli.Request) {
	if !checkStorage(w, cmd.Storage) {
		return
	}
	var q queue.Queue[string] = queue.NewArray[string]()
	if cmd.Storage == StorageList {
		q = queue.NewList[string]()
	}
	sc := script{
		"enqueue": {Value: true, Do: func(v string) (any, error) {
			q.Enqueue(v)
			return nil, nil
		}},
		"dequeue": {Do: func(string) (any, error) { return q.Dequeue() }},
		"peek":    {Do: func(string) (any, error) { return q.Peek() }},
	}
	addCommon(sc, q)
	ctx := logging.ContextWith(r.Context(),
		logging.Field("command", "queue"),
		logging.Field("storage", storageName(cmd.Storage)))
	run(ctx, w, loggerOrDiscard(cmd.Logger), sc, r.Args)
}

type DequeCommand struct {
	Storage string `flag:"storage" env:"SEQKIT_STORAGE" env-default:"array" desc:"backing storage: array or list (default array)"`

	Logger *logging.Logger
}

func (cmd DequeCommand) Summary() string {
	return "run push-front, push-back, pop-front, pop-back, front and back operations on a deque"
}

func (cmd DequeCommand) ServeCLI(w cli.Response, r *cli.Request) {
	if !checkStorage(w, cmd.Storage) {
		return
	}
	var d deque.Deque[string] = deque.NewArray[string]()
	if cmd.Storage == StorageList {
		d = deque.NewList[string]()
	}
	sc := script{
		"push-front": {Value: true, Do: func(v string) (any, error) {
			d.PushFront(v)
			return nil, nil
		}},
		"push-back": {Value: true, Do: func(v string) (any, error) {
			d.PushBack(v)
			return nil, nil
		}},
		"pop-front": {Do: func(string) (any, error) { return d.PopFront() }},
		"pop-back":  {Do: func(string) (any, error) { return d.PopBack() }},
		"front":     {Do: func(string) (any, error) { return d.Front() }},
		"back":      {Do: func(string) (any, error) { return d.Back() }},
	}
	addCommon(sc, d)
	ctx := logging.ContextWith(r.Context(),
		logging.Field("command", "deque"),
		logging.Field("storage", storageName(cmd.Storage)))
	run(ctx, w, loggerOrDiscard(cmd.Logger), sc, r.Args)
}

// SequenceCommand drives a plain sequence.
// With the immutable flag every edit produces a new sequence which replaces the current one.
type SequenceCommand struct {
	Storage   string `flag:"storage" env:"SEQKIT_STORAGE" env-default:"array" desc:"backing storage: array or list (default array)"`
	Immutable bool   `flag:"immutable" desc:"use the copy-on-write sequence variant"`

	Logger *logging.Logger
}

func (cmd SequenceCommand) Summary() string {
	return "run append, prepend, insert, remove, sub, concat and query operations on a sequence"
}

func (cmd SequenceCommand) kind() sequence.Kind {
	kind := sequence.KindMutableArray
	if cmd.Storage == StorageList {
		kind.Storage = sequence.StorageList
	}
	if cmd.Immutable {
		kind.Variant = sequence.VariantImmutable
	}
	return kind
}

func (cmd SequenceCommand) ServeCLI(w cli.Response, r *cli.Request) {
	if !checkStorage(w, cmd.Storage) {
		return
	}
	var logger = loggerOrDiscard(cmd.Logger)
	ctx := logging.ContextWith(r.Context(),
		logging.Field("command", "seq"),
		logging.Field("kind", cmd.kind().String()))

	seq, err := sequence.Make[string](cmd.kind(), nil, 0)
	if err != nil {
		logger.Error(ctx, "failed to make sequence", logging.ErrField(err))
		cli.HandleError(w, r, err)
		return
	}
	sc := script{
		"append": {Value: true, Do: func(v string) (any, error) {
			seq = seq.Append(v)
			return nil, nil
		}},
		"prepend": {Value: true, Do: func(v string) (any, error) {
			seq = seq.Prepend(v)
			return nil, nil
		}},
		"insert": {Value: true, Do: func(raw string) (any, error) {
			rawIndex, v, err := parsePair(raw)
			if err != nil {
				return nil, err
			}
			index, err := parseIndex(rawIndex)
			if err != nil {
				return nil, err
			}
			out, err := seq.InsertAt(index, v)
			if err != nil {
				return nil, err
			}
			seq = out
			return nil, nil
		}},
		"remove": {Value: true, Do: func(raw string) (any, error) {
			index, err := parseIndex(raw)
			if err != nil {
				return nil, err
			}
			out, err := seq.Remove(index)
			if err != nil {
				return nil, err
			}
			seq = out
			return nil, nil
		}},
		"first": {Do: func(string) (any, error) { return seq.First() }},
		"last":  {Do: func(string) (any, error) { return seq.Last() }},
		"sub": {Value: true, Do: func(raw string) (any, error) {
			lo, hi, err := parseRange(raw)
			if err != nil {
				return nil, err
			}
			return seq.Subsequence(lo, hi)
		}},
		"concat": {Value: true, Do: func(raw string) (any, error) {
			vs, err := parseList[string](raw)
			if err != nil {
				return nil, err
			}
			oth, err := sequence.Make(seq.Kind(), vs, len(vs))
			if err != nil {
				return nil, err
			}
			out, err := seq.Concat(oth)
			if err != nil {
				return nil, err
			}
			seq = out
			return nil, nil
		}},
		"kind": {Do: func(string) (any, error) { return seq.Kind(), nil }},
	}
	addCommon(sc, sequenceRef(func() sequence.Sequence[string] { return seq }))
	run(ctx, w, logger, sc, r.Args)
}

// ClutchCommand interleaves two queues, see queue.Array.Clutch.
type ClutchCommand struct {
	Storage string `flag:"storage" env:"SEQKIT_STORAGE" env-default:"array" desc:"backing storage: array or list (default array)"`
	A       string `flag:"a" desc:"comma separated integers of the first queue"`
	B       string `flag:"b" desc:"comma separated integers of the second queue"`

	Logger *logging.Logger
}

func (cmd ClutchCommand) Summary() string {
	return "interleave two integer queues"
}

func (cmd ClutchCommand) ServeCLI(w cli.Response, r *cli.Request) {
	if !checkStorage(w, cmd.Storage) {
		return
	}
	var logger = loggerOrDiscard(cmd.Logger)
	ctx := logging.ContextWith(r.Context(),
		logging.Field("command", "clutch"),
		logging.Field("storage", storageName(cmd.Storage)))

	a, err := parseList[int](cmd.A)
	if err != nil {
		w.ExitCode(cli.ExitCodeBadRequest)
		writeError(w, err)
		return
	}
	b, err := parseList[int](cmd.B)
	if err != nil {
		w.ExitCode(cli.ExitCodeBadRequest)
		writeError(w, err)
		return
	}

	var out sequence.Sequence[int]
	if cmd.Storage == StorageList {
		out = queue.NewList(a...).Clutch(queue.NewList(b...))
	} else {
		out = queue.NewArray(a...).Clutch(queue.NewArray(b...))
	}
	logger.Info(ctx, "queues clutched",
		logging.Field("a", len(a)),
		logging.Field("b", len(b)))
	writeLine(w, out)
}

// sequenceRef lets the common operations follow a sequence variable that is reassigned by edits.
type sequenceRef func() sequence.Sequence[string]

type container interface {
	datastruct.Sizer
	Get(index int) (string, error)
	String() string
}

func (ref sequenceRef) Len() int                      { return ref().Len() }
func (ref sequenceRef) Get(index int) (string, error) { return ref().Get(index) }
func (ref sequenceRef) String() string                { return ref().String() }

func addCommon(sc script, c container) {
	sc["get"] = operation{Value: true, Do: func(raw string) (any, error) {
		index, err := parseIndex(raw)
		if err != nil {
			return nil, err
		}
		return c.Get(index)
	}}
	sc["len"] = operation{Do: func(string) (any, error) { return c.Len(), nil }}
	sc["empty"] = operation{Do: func(string) (any, error) { return c.Len() == 0, nil }}
	sc["print"] = operation{Do: func(string) (any, error) { return c.String(), nil }}
}

// checkStorage reports a bad request when storage names neither of the known storages.
func checkStorage(w cli.Response, storage string) bool {
	switch storage {
	case "", StorageArray, StorageList:
		return true
	default:
		w.ExitCode(cli.ExitCodeBadRequest)
		writeError(w, ErrUnknownStorage.F("%q, expected %s or %s", storage, StorageArray, StorageList))
		return false
	}
}

func storageName(storage string) string {
	if storage == "" {
		return StorageArray
	}
	return storage
}
