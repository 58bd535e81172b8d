// Package admin implements the operator command line. It talks to the
// services directly, which is how reset and verification tokens reach a
// person while no mail transport is configured.
package admin

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dmitrijs2005/presskit/internal/common"
	"github.com/dmitrijs2005/presskit/internal/flagx"
	"golang.org/x/term"

	gs "github.com/dmitrijs2005/presskit/internal/server/grpc"
)

// ErrUsage is returned for an unknown command or missing arguments.
var ErrUsage = errors.New("usage error")

type command struct {
	help     string
	flags    []string
	required []string
	run      func(a *Admin, ctx context.Context, opts options) error
}

// options maps flag names to their values.
type options map[string]string

var commands = map[string]command{
	"register": {
		help:     "register -email E -first F -last L [-artist A]",
		flags:    []string{"email", "first", "last", "artist"},
		required: []string{"email", "first", "last"},
		run:      (*Admin).register,
	},
	"issue-reset": {
		help:     "issue-reset -email E",
		flags:    []string{"email"},
		required: []string{"email"},
		run:      (*Admin).issueReset,
	},
	"consume-reset": {
		help:     "consume-reset -token T",
		flags:    []string{"token"},
		required: []string{"token"},
		run:      (*Admin).consumeReset,
	},
	"issue-verification": {
		help:     "issue-verification -email E",
		flags:    []string{"email"},
		required: []string{"email"},
		run:      (*Admin).issueVerification,
	},
	"confirm-verification": {
		help:     "confirm-verification -token T",
		flags:    []string{"token"},
		required: []string{"token"},
		run:      (*Admin).confirmVerification,
	},
	"presign-download": {
		help:     "presign-download -key K",
		flags:    []string{"key"},
		required: []string{"key"},
		run:      (*Admin).presignDownload,
	},
}

type Admin struct {
	svc      gs.Services
	in       *bufio.Reader
	out      io.Writer
	terminal int
}

// New builds an Admin reading answers from in. Passwords are read without
// echo when in is a terminal.
func New(svc gs.Services, in io.Reader, out io.Writer) *Admin {
	a := &Admin{svc: svc, in: bufio.NewReader(in), out: out, terminal: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		a.terminal = int(f.Fd())
	}
	return a
}

// Run executes the command named in args.
func (a *Admin) Run(ctx context.Context, args []string) error {
	name, rest := flagx.SplitCommand(args)
	cmd, ok := commands[name]
	if !ok {
		a.usage()
		if name == "" {
			return fmt.Errorf("%w: no command given", ErrUsage)
		}
		return fmt.Errorf("%w: unknown command %q", ErrUsage, name)
	}

	opts, err := a.parse(name, cmd, rest)
	if err != nil {
		return err
	}
	for _, f := range cmd.required {
		if strings.TrimSpace(opts[f]) == "" {
			return fmt.Errorf("%w: %s", ErrUsage, cmd.help)
		}
	}
	return cmd.run(a, ctx, opts)
}

func (a *Admin) usage() {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	fmt.Fprintln(a.out, "Commands:")
	for _, n := range names {
		fmt.Fprintln(a.out, "  "+commands[n].help)
	}
}

// parse keeps only the command's own flags; the rest of args belongs to
// the server configuration.
func (a *Admin) parse(name string, cmd command, args []string) (options, error) {
	allowed := make([]string, 0, 2*len(cmd.flags))
	values := make(map[string]*string, len(cmd.flags))

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	for _, f := range cmd.flags {
		allowed = append(allowed, "-"+f, "--"+f)
		values[f] = fs.String(f, "", f)
	}
	if err := fs.Parse(flagx.FilterArgs(args, allowed)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	opts := make(options, len(values))
	for f, v := range values {
		opts[f] = *v
	}
	return opts, nil
}

func (a *Admin) password(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt+": ")
	if a.terminal >= 0 {
		pw, err := term.ReadPassword(a.terminal)
		fmt.Fprintln(a.out)
		defer common.WipeByteArray(pw)
		return string(pw), err
	}
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
