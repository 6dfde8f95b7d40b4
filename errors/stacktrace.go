package errors

import (
	"fmt"
	"io"
	"reflect"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// stackTracer is implemented by errors that carry a call stack, as attached
// by the github.com/pkg/errors helpers.
type stackTracer interface {
	error
	StackTrace() errors.StackTrace
}

// stackTrace returns the innermost stack trace attached to any error in the
// cause chain, or nil when no stack information was recorded.
func stackTrace(err error) errors.StackTrace {
	var stack errors.StackTrace
	for {
		if st, ok := err.(stackTracer); ok {
			stack = st.StackTrace()
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return stack
		}
	}
}

func matchesFunc(f errors.Frame, prefixes ...string) bool {
	fn := funcName(f)
	for _, prefix := range prefixes {
		if strings.HasPrefix(fn, prefix) {
			return true
		}
	}
	return false
}

// funcName returns the name of this function, if known.
func funcName(f errors.Frame) string {
	// this looks a bit like magic, but follows example here:
	// https://github.com/pkg/errors/blob/v0.8.1/stack.go#L43-L50
	pc := uintptr(f) - 1
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}

func fileLine(f errors.Frame) (string, int) {
	pc := uintptr(f) - 1
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown", 0
	}
	return fn.FileLine(pc)
}

// trimInternal removes the frames that belong to this package's wrapping
// helpers and to the runtime, so the printed trace starts where the error
// was created.
func trimInternal(st errors.StackTrace) errors.StackTrace {
	// manual error creation, or runtime for caught panics
	for len(st) > 1 && matchesFunc(st[0],
		"github.com/pythocooks/onlyagents-tipping/errors.Wrap",
		"github.com/pythocooks/onlyagents-tipping/errors.Wrapf",
		"github.com/pythocooks/onlyagents-tipping/errors.(*Error).New",
		"github.com/pythocooks/onlyagents-tipping/errors.(*Error).Newf",
		// runtime are added on panics
		"runtime.",
		// testing is added on tests
		"testing.",
	) {
		st = st[1:]
	}
	// trim out outer wrappers (runtime.goexit and test library if present)
	for l := len(st) - 1; l > 0 && matchesFunc(st[l], "runtime.", "testing."); l-- {
		st = st[:l]
	}
	return st
}

func writeSimpleFrame(s io.Writer, f errors.Frame) {
	file, line := fileLine(f)
	// cut file at "github.com/"
	// TODO: generalize better for other hosts?
	chunks := strings.SplitN(file, "github.com/", 2)
	if len(chunks) == 2 {
		file = chunks[1]
	}
	fmt.Fprintf(s, " [%s:%d]", file, line)
}

// Format works like pkg/errors, with additions.
// %s is just the error message
// %+v is the full stack trace
// %v appends a compressed [filename:line] where the error
//    was created
func (e *wrappedError) Format(s fmt.State, verb rune) {
	fmt.Fprint(s, e.Error())
	stack := trimInternal(stackTrace(e))
	if len(stack) == 0 {
		return
	}
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%+v", stack)
	} else if verb == 'v' {
		writeSimpleFrame(s, stack[0])
	}
}

// isNilErr returns true if value represented by the given error is nil.
func isNilErr(err error) bool {
	// Reflect usage is necessary to correctly compare with
	// a nil implementation of an error.
	if err == nil {
		return true
	}
	if reflect.ValueOf(err).Kind() == reflect.Ptr && reflect.ValueOf(err).IsNil() {
		return true
	}
	return false
}
