package script

import (
	"context"
	"fmt"
	"io"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/skyline93/deque/internal/deque"
	"github.com/skyline93/deque/internal/errors"
)

// Options control how a script is run.
type Options struct {
	// ContinueOnError prints failed operations as "error: ..." and carries on
	// instead of stopping at the first one.
	ContinueOnError bool
}

// Result summarizes a run.
type Result struct {
	Ops    int // number of ops executed
	Failed int // number of ops that returned an error
}

// Run applies ops to d in order. Ops that observe the deque (pops, at, front,
// back, size, print) write one line to w.
func Run(ctx context.Context, d *deque.Deque, ops []Op, w io.Writer, opts Options) (Result, error) {
	var res Result

	log.Debugf("running %d ops", len(ops))
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		out, err := apply(d, op)
		res.Ops++
		if err != nil {
			res.Failed++
			if !opts.ContinueOnError {
				return res, errors.Wrapf(err, "line %d: %v", op.Line, op.Cmd)
			}

			log.Debugf("line %d: %v failed: %v", op.Line, op.Cmd, err)
			out = "error: " + err.Error()
		}

		if out == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return res, errors.Wrap(err, "Write")
		}
	}

	return res, nil
}

func apply(d *deque.Deque, op Op) (string, error) {
	switch op.Cmd {
	case PushBack:
		for _, v := range op.Args {
			d.PushBack(v)
		}
	case PushFront:
		// the last argument ends up at the front
		for _, v := range op.Args {
			d.PushFront(v)
		}
	case PopBack:
		return value(d.PopBack())
	case PopFront:
		return value(d.PopFront())
	case At:
		return value(d.At(op.Args[0]))
	case Set:
		return "", d.Set(op.Args[0], op.Args[1])
	case Front:
		return value(d.Front())
	case Back:
		return value(d.Back())
	case Size:
		return strconv.Itoa(d.Size()), nil
	case Clear:
		d.Clear()
	case Print:
		return fmt.Sprint(d.Values()), nil
	default:
		return "", errors.Errorf("invalid command %d", op.Cmd)
	}

	return "", nil
}

func value(v int, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strconv.Itoa(v), nil
}
