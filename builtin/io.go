/*
File   : builtin/io.go
Package: builtin

Console and file I/O built-ins: print, rprint, input, input_int, clear,
open, read, write, close. File handles are native *os.File values
stashed behind value.File.Handle -- the core treats the handle
opaquely (per the spec's "file I/O built-ins beyond their interface
contracts" being an external collaborator), and this package is the
one place that ever type-asserts it back out.
*/
package builtin

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shepherdp/SAFyR-dev/errors"
	"github.com/shepherdp/SAFyR-dev/source"
	"github.com/shepherdp/SAFyR-dev/value"
)

func init() {
	register("print", []string{"args"}, printFn)
	register("rprint", []string{"args"}, rprintFn)
	register("input", []string{"prompt"}, inputFn)
	register("input_int", []string{"prompt"}, inputIntFn)
	register("clear", nil, clearFn)
	register("open", []string{"name", "mode"}, openFn)
	register("read", []string{"file"}, readFn)
	register("write", []string{"file", "text"}, writeFn)
	register("close", []string{"file"}, closeFn)
}

func joinArgs(args []value.Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}

// print writes its arguments space-joined, with no trailing newline.
func printFn(rt Runtime, w io.Writer, args ...value.Value) (value.Value, *errors.Error) {
	fmt.Fprint(w, joinArgs(args))
	return value.NewNil(), nil
}

// rprint is print plus a trailing newline.
func rprintFn(rt Runtime, w io.Writer, args ...value.Value) (value.Value, *errors.Error) {
	fmt.Fprintln(w, joinArgs(args))
	return value.NewNil(), nil
}

// input writes an optional prompt, reads one line from the runtime's
// input reader, and returns it (trailing newline stripped) as a String.
func inputFn(rt Runtime, w io.Writer, args ...value.Value) (value.Value, *errors.Error) {
	if len(args) > 0 {
		fmt.Fprint(w, args[0].String())
	}
	line, err := rt.InputReader().ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" && err != io.EOF {
		return nil, errors.New(errors.RuntimeErr, source.Span{}, "input: %v", err)
	}
	return value.NewString(line), nil
}

// input_int is input followed by INT parsing.
func inputIntFn(rt Runtime, w io.Writer, args ...value.Value) (value.Value, *errors.Error) {
	v, err := inputFn(rt, w, args...)
	if err != nil {
		return nil, err
	}
	s := v.(*value.String).Val
	n, perr := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if perr != nil {
		return nil, errors.New(errors.RuntimeErr, source.Span{}, "input_int: %q is not an integer", s)
	}
	return value.NewInt(n), nil
}

// clear emits the ANSI clear-screen-and-home sequence. Actual terminal
// control lives with the host CLI (see the spec's Non-goals); this is
// the one escape sequence simple enough to belong to the core registry
// rather than to the REPL.
func clearFn(rt Runtime, w io.Writer, args ...value.Value) (value.Value, *errors.Error) {
	fmt.Fprint(w, "\x1b[2J\x1b[H")
	return value.NewNil(), nil
}

func openFn(rt Runtime, w io.Writer, args ...value.Value) (value.Value, *errors.Error) {
	if len(args) != 2 {
		return nil, arityError("open", 2, len(args))
	}
	name, ok := args[0].(*value.String)
	if !ok {
		return nil, typeError("open", 1, "STR", args[0])
	}
	mode, ok := args[1].(*value.String)
	if !ok {
		return nil, typeError("open", 2, "STR", args[1])
	}
	var flag int
	switch mode.Val {
	case "r":
		flag = os.O_RDONLY
	case "w":
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case "a":
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	default:
		return nil, errors.New(errors.InvalidSpecifier, source.Span{}, "open: unknown mode %q (want r, w, or a)", mode.Val)
	}
	f, oerr := os.OpenFile(name.Val, flag, 0644)
	if oerr != nil {
		return nil, errors.New(errors.RuntimeErr, source.Span{}, "open: %v", oerr)
	}
	fv := value.NewFile(name.Val, mode.Val)
	fv.Handle = f
	return fv, nil
}

func asFile(name string, v value.Value) (*value.File, *os.File, *errors.Error) {
	fv, ok := v.(*value.File)
	if !ok {
		return nil, nil, typeError(name, 1, "FILE", v)
	}
	if fv.Closed {
		return nil, nil, errors.New(errors.RuntimeErr, source.Span{}, "%s: file %q is closed", name, fv.Filename)
	}
	f, ok := fv.Handle.(*os.File)
	if !ok {
		return nil, nil, errors.New(errors.RuntimeErr, source.Span{}, "%s: %q has no open handle", name, fv.Filename)
	}
	return fv, f, nil
}

func readFn(rt Runtime, w io.Writer, args ...value.Value) (value.Value, *errors.Error) {
	if len(args) != 1 {
		return nil, arityError("read", 1, len(args))
	}
	_, f, ferr := asFile("read", args[0])
	if ferr != nil {
		return nil, ferr
	}
	data, rerr := io.ReadAll(bufio.NewReader(f))
	if rerr != nil {
		return nil, errors.New(errors.RuntimeErr, source.Span{}, "read: %v", rerr)
	}
	return value.NewString(string(data)), nil
}

func writeFn(rt Runtime, w io.Writer, args ...value.Value) (value.Value, *errors.Error) {
	if len(args) != 2 {
		return nil, arityError("write", 2, len(args))
	}
	_, f, ferr := asFile("write", args[0])
	if ferr != nil {
		return nil, ferr
	}
	text, ok := args[1].(*value.String)
	if !ok {
		return nil, typeError("write", 2, "STR", args[1])
	}
	if _, werr := f.WriteString(text.Val); werr != nil {
		return nil, errors.New(errors.RuntimeErr, source.Span{}, "write: %v", werr)
	}
	return value.NewNil(), nil
}

func closeFn(rt Runtime, w io.Writer, args ...value.Value) (value.Value, *errors.Error) {
	if len(args) != 1 {
		return nil, arityError("close", 1, len(args))
	}
	fv, f, ferr := asFile("close", args[0])
	if ferr != nil {
		return nil, ferr
	}
	if cerr := f.Close(); cerr != nil {
		return nil, errors.New(errors.RuntimeErr, source.Span{}, "close: %v", cerr)
	}
	fv.Closed = true
	return value.NewNil(), nil
}
