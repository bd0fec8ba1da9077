package script

// Command is an operation on a deque.
type Command uint8

// These are the commands a script can contain.
const (
	PushBack Command = 1 + iota
	PushFront
	PopBack
	PopFront
	At
	Set
	Front
	Back
	Size
	Clear
	Print
)

var commands = map[string]Command{
	"push_back":  PushBack,
	"push_front": PushFront,
	"pop_back":   PopBack,
	"pop_front":  PopFront,
	"at":         At,
	"set":        Set,
	"front":      Front,
	"back":       Back,
	"size":       Size,
	"clear":      Clear,
	"print":      Print,
}

func (c Command) String() string {
	for name, cmd := range commands {
		if cmd == c {
			return name
		}
	}
	return "invalid"
}

// arity returns the minimum and maximum number of arguments of c. A maximum
// of -1 means unlimited.
func (c Command) arity() (lo, hi int) {
	switch c {
	case PushBack, PushFront:
		return 1, -1
	case At:
		return 1, 1
	case Set:
		return 2, 2
	}
	return 0, 0
}

// Op is a single command read from a script.
type Op struct {
	Line int // line number in the script, starting at 1
	Cmd  Command
	Args []int
}
