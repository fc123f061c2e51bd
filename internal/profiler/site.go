package profiler

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
)

// Site identifies a traced function: its name plus the source location
// of its definition. Every CallRecord is keyed by a Site.
type Site struct {
	Function string
	File     string
	Line     int
}

func (s Site) String() string {
	return fmt.Sprintf("%s:%d(%s)", s.File, s.Line, s.Function)
}

// SiteFor derives a Site from a function value using runtime metadata.
// Resolution happens once, at registration time, never on the hot path.
func SiteFor(fn any) Site {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return Site{Function: "unknown"}
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return Site{Function: "unknown"}
	}
	file, line := f.FileLine(f.Entry())
	return Site{
		Function: shortFuncName(f.Name()),
		File:     filepath.Base(file),
		Line:     line,
	}
}

// shortFuncName strips the module path prefix, keeping "pkg.Func".
func shortFuncName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}
