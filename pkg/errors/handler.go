package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler installs h for Report and Recover and returns the handler it
// replaces. Nil installs a plain LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := handler
	handler = h
	return prev
}

func currentHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report stamps err with the current time if it has none and passes it to
// the installed handler.
func Report(err *DriftError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	currentHandler().HandleError(err)
}

// Recover reports an in-flight panic as a PanicError for op.
// Usage: defer errors.Recover("layout.FlushLayoutForRoot")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	currentHandler().HandlePanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: callers(3),
		Timestamp:  time.Now(),
	})
}

// callers formats the goroutine's stack, dropping the innermost skip frames.
func callers(skip int) string {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			return sb.String()
		}
	}
}
