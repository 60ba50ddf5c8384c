package dsl

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// callerSource describes the call site skip frames above its caller as
// "file.go:line (func)".
func callerSource(skip int) string {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}
	src := fmt.Sprintf("%s:%d", filepath.Base(file), line)
	if fn := runtime.FuncForPC(pc); fn != nil {
		src += " (" + filepath.Base(fn.Name()) + ")"
	}
	return src
}
