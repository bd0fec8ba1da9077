package main

import (
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/skyline93/deque/internal/deque"
	"github.com/skyline93/deque/internal/digest"
	"github.com/skyline93/deque/internal/errors"
	"github.com/skyline93/deque/internal/script"
	"github.com/spf13/cobra"
)

var cmdReplay = &cobra.Command{
	Use:   "replay [flags] [FILE]",
	Short: "Run an operation script against a fresh deque",
	Long: `
The "replay" command reads a script of deque operations from FILE, or from
standard input if no FILE is given, and runs it against an empty deque. Each
line holds one command with its arguments:

  push_back V...   push_front V...   pop_back   pop_front
  at I             set I V           front      back
  size             clear             print

Values produced by the script are printed one per line, followed by the final
size and the short digest of the contents.

EXIT STATUS
===========

Exit status is 0 if the script ran to completion, and non-zero if the script
could not be parsed or an operation failed.
`,
	Args:              cobra.MaximumNArgs(1),
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReplay(cmd.Context(), replayOptions, args, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// ReplayOptions bundles all options for the replay command.
type ReplayOptions struct {
	ContinueOnError bool
}

var replayOptions ReplayOptions

func init() {
	cmdRoot.AddCommand(cmdReplay)

	f := cmdReplay.Flags()
	f.BoolVar(&replayOptions.ContinueOnError, "continue-on-error", false, "print failed operations and keep going")
}

func runReplay(ctx context.Context, opts ReplayOptions, args []string, stdin io.Reader, stdout io.Writer) error {
	rd := stdin
	name := "stdin"
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Fatalf("unable to open script: %v", err)
		}
		defer func() {
			_ = f.Close()
		}()
		rd = f
		name = args[0]
	}

	ops, err := script.Parse(rd)
	if err != nil {
		return errors.Fatalf("%v: %v", name, err)
	}
	log.Debugf("read %d ops from %v", len(ops), name)

	d := deque.New()
	res, err := script.Run(ctx, d, ops, stdout, script.Options{ContinueOnError: opts.ContinueOnError})
	if err != nil {
		return err
	}

	if res.Failed > 0 {
		log.Warnf("%d of %d operations failed", res.Failed, res.Ops)
	}

	id := digest.Sum(d)
	_, err = fmt.Fprintf(stdout, "size=%d digest=%s\n", d.Size(), id.Str())
	return err
}
