// Package script reads line-oriented deque scripts and runs them.
//
// Each line holds one command followed by its integer arguments, for example
//
//	push_back 1 2 3
//	push_front 0
//	pop_back
//	at 1
//
// Everything after a '#' is a comment. Command names are case-insensitive.
package script

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/skyline93/deque/internal/errors"
)

// Parse reads all ops from rd.
func Parse(rd io.Reader) ([]Op, error) {
	var ops []Op

	sc := bufio.NewScanner(rd)
	line := 0
	for sc.Scan() {
		line++

		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}

		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		op, err := parseOp(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		op.Line = line
		ops = append(ops, op)
	}

	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "Scan")
	}

	return ops, nil
}

func parseOp(fields []string) (Op, error) {
	cmd, ok := commands[strings.ToLower(fields[0])]
	if !ok {
		return Op{}, errors.Errorf("unknown command %q", fields[0])
	}

	args := make([]int, 0, len(fields)-1)
	for _, f := range fields[1:] {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Op{}, errors.Errorf("invalid argument %q for %v", f, cmd)
		}
		args = append(args, v)
	}

	lo, hi := cmd.arity()
	if len(args) < lo || (hi >= 0 && len(args) > hi) {
		return Op{}, errors.Errorf("%v: wrong number of arguments (%d)", cmd, len(args))
	}

	return Op{Cmd: cmd, Args: args}, nil
}
