// Package export persists profiler snapshots for external tools: a
// pprof binary dump, a plain-text statistics table, and a generated
// standalone harness source for out-of-process instrumentation.
package export

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"profdemo/internal/profiler"
)

// Kind tags an export artifact.
type Kind string

const (
	KindBinary Kind = "binary-dump"
	KindText   Kind = "text-dump"
	KindScript Kind = "external-script"
)

// Destinations selects which artifacts to write and where. An empty
// path skips that artifact.
type Destinations struct {
	BinaryPath string
	TextPath   string
	ScriptPath string
}

// Artifact is the per-destination outcome. Err is nil on success.
type Artifact struct {
	Kind Kind
	Path string
	Size int64
	Err  error
}

// Export writes the requested artifacts. Artifacts are independent: a
// failure on one never prevents the others from being attempted, and
// each outcome is reported on its own.
func Export(snap *profiler.Snapshot, dest Destinations) []Artifact {
	var out []Artifact
	if dest.BinaryPath != "" {
		out = append(out, write(KindBinary, dest.BinaryPath, snap.WritePprof))
	}
	if dest.TextPath != "" {
		out = append(out, write(KindText, dest.TextPath, snap.WriteTable))
	}
	if dest.ScriptPath != "" {
		out = append(out, write(KindScript, dest.ScriptPath, func(w io.Writer) error {
			_, err := io.WriteString(w, HarnessSource())
			return err
		}))
	}
	return out
}

func write(kind Kind, path string, encode func(io.Writer) error) Artifact {
	a := Artifact{Kind: kind, Path: path}

	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		a.Err = fmt.Errorf("encode %s: %w", kind, err)
		return a
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		a.Err = fmt.Errorf("write %s: %w", kind, err)
		return a
	}
	a.Size = int64(buf.Len())
	return a
}
