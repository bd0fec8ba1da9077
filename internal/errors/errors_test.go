package errors_test

import (
	"testing"

	"github.com/skyline93/deque/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestFatal(t *testing.T) {
	for _, v := range []struct {
		err      error
		expected bool
	}{
		{errors.Fatal("broken"), true},
		{errors.Fatalf("broken %d", 42), true},
		{errors.New("error"), false},
		{nil, false},
	} {
		assert.Equal(t, v.expected, errors.IsFatal(v.err), "IsFatal for %q", v.err)
	}
}

func TestFatalWrapped(t *testing.T) {
	err := errors.Wrap(errors.Fatal("script not found"), "replay")
	assert.True(t, errors.IsFatal(err))
	assert.Equal(t, "replay: script not found", err.Error())
}

func TestCause(t *testing.T) {
	sentinel := errors.New("empty")
	err := errors.Wrapf(sentinel, "pop at position %d", 3)

	assert.Same(t, sentinel, errors.Cause(err))
	assert.True(t, errors.Is(err, sentinel))
	assert.Nil(t, errors.Wrap(nil, "nothing"))
}
