package script

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/skyline93/deque/internal/deque"
	"github.com/skyline93/deque/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	src := `
# build [0 1 2]
push_back 1 2
PUSH_FRONT 0   # mixed case is fine

pop_back
set 0 9
at 0
print
`
	ops, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []Op{
		{Line: 3, Cmd: PushBack, Args: []int{1, 2}},
		{Line: 4, Cmd: PushFront, Args: []int{0}},
		{Line: 6, Cmd: PopBack, Args: []int{}},
		{Line: 7, Cmd: Set, Args: []int{0, 9}},
		{Line: 8, Cmd: At, Args: []int{0}},
		{Line: 9, Cmd: Print, Args: []int{}},
	}, ops)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"unknown command", "push_back 1\nshift 3\n", "line 2: unknown command \"shift\""},
		{"invalid argument", "push_back 1 x\n", "line 1: invalid argument \"x\" for push_back"},
		{"missing argument", "at\n", "line 1: at: wrong number of arguments (0)"},
		{"too many arguments", "pop_front 1\n", "line 1: pop_front: wrong number of arguments (1)"},
		{"push without values", "\n\npush_front\n", "line 3: push_front: wrong number of arguments (0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestCommandString(t *testing.T) {
	for name, cmd := range commands {
		assert.Equal(t, name, cmd.String())
	}
	assert.Equal(t, "invalid", Command(0).String())
}

func run(t *testing.T, src string, opts Options) (*deque.Deque, string, Result, error) {
	t.Helper()

	ops, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	d := deque.New()
	var out bytes.Buffer
	res, err := Run(context.Background(), d, ops, &out, opts)
	return d, out.String(), res, err
}

func TestRun(t *testing.T) {
	src := `
push_back 1 2
push_front 0
print
size
pop_front
print
pop_back
print
front
back
push_front 3 4 5
print
at 2
`
	d, out, res, err := run(t, src, Options{})
	require.NoError(t, err)

	assert.Equal(t, "[0 1 2]\n3\n0\n[1 2]\n2\n[1]\n1\n1\n[5 4 3 1]\n3\n", out)
	assert.Equal(t, Result{Ops: 13}, res)
	assert.Equal(t, []int{5, 4, 3, 1}, d.Values())
}

func TestRunStopsOnError(t *testing.T) {
	_, out, res, err := run(t, "push_back 1\npop_back\npop_back\nsize\n", Options{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, deque.ErrEmpty))
	assert.Equal(t, "line 3: pop_back: deque is empty", err.Error())
	assert.Equal(t, "1\n", out)
	assert.Equal(t, Result{Ops: 3, Failed: 1}, res)
}

func TestRunContinueOnError(t *testing.T) {
	src := "pop_front\nat 3\npush_back 7\nset 1 0\nsize\n"
	_, out, res, err := run(t, src, Options{ContinueOnError: true})

	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"error: deque is empty",
		"error: index 3, size 0: index out of range",
		"error: index 1, size 1: index out of range",
		"1",
	}, "\n")+"\n", out)
	assert.Equal(t, Result{Ops: 5, Failed: 3}, res)
}

func TestRunClear(t *testing.T) {
	d, out, _, err := run(t, "push_back 1 2 3\nclear\nsize\npush_back 4\nprint\n", Options{})
	require.NoError(t, err)
	assert.Equal(t, "0\n[4]\n", out)
	assert.Equal(t, 1, d.Size())
}

func TestRunCancelled(t *testing.T) {
	ops, err := Parse(strings.NewReader("push_back 1\n"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, deque.New(), ops, &bytes.Buffer{}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, res.Ops)
}
