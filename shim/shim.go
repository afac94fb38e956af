// Package shim lets an existing mesh-writing call gain canonical
// formatting without changing its call sites. Instead of patching the
// writer at runtime, the caller wraps its write function in a Shim and
// hands that out as the writer capability.
//
// A Shim is owned by a single execution context. Apply, Restore, Scope and
// Write must not be called concurrently; callers needing parallel writers
// should construct one Shim per goroutine.
package shim

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/notargets/gmshfmt/msh"
)

// WriteFunc is the signature of the original mesh writer being augmented.
type WriteFunc func(path string) error

// Shim wraps a mesh writer together with its own copy of the formatting
// defaults. While applied, every successful write is followed by an
// in-place formatting pass over the just-written file.
type Shim struct {
	write   WriteFunc
	opts    msh.Options
	applied bool
}

// New wraps write. A nil opts uses msh.DefaultOptions.
func New(write WriteFunc, opts *msh.Options) *Shim {
	s := &Shim{write: write, opts: msh.DefaultOptions()}
	if opts != nil {
		s.opts = *opts
	}
	return s
}

// Options returns a copy of the shim's current formatting defaults.
func (s *Shim) Options() msh.Options {
	return s.opts
}

func (s *Shim) Applied() bool {
	return s.applied
}

// Apply turns on post-write formatting. Applying an already-applied shim
// is a no-op with a warning.
func (s *Shim) Apply() {
	if s.applied {
		warnf("formatting shim already applied")
		return
	}
	s.applied = true
}

// Restore turns post-write formatting back off. Restoring an un-applied
// shim is a no-op with a warning.
func (s *Shim) Restore() {
	if !s.applied {
		warnf("no formatting shim to restore")
		return
	}
	s.applied = false
}

// Write delegates to the wrapped writer, then, when the shim is applied,
// formats the written file in place (which leaves a backup alongside it).
// A formatting failure is reported as a warning and the unformatted file
// is left intact; it never fails the write.
func (s *Shim) Write(path string) (err error) {
	if err = s.write(path); err != nil {
		return err
	}
	if !s.applied {
		return nil
	}
	s.formatWritten(path, s.opts)
	return nil
}

// WriteWith is Write with per-call option overrides: the formatting pass
// runs with opts regardless of the applied state, mirroring a writer call
// that carries explicit formatting arguments.
func (s *Shim) WriteWith(path string, opts msh.Options) (err error) {
	if err = s.write(path); err != nil {
		return err
	}
	s.formatWritten(path, opts)
	return nil
}

// Scope merges opts over the shim's defaults and applies the shim. The
// returned restore function must be deferred by the caller; it
// unconditionally restores the prior defaults and applied state, on panic
// as well as on normal return.
func (s *Shim) Scope(opts msh.Options) (restore func()) {
	var (
		prevOpts    = s.opts
		prevApplied = s.applied
	)
	s.opts = opts
	s.Apply()
	return func() {
		s.opts = prevOpts
		s.applied = prevApplied
	}
}

func (s *Shim) formatWritten(path string, opts msh.Options) {
	if err := msh.FormatFile(path, "", &opts); err != nil {
		warnf("MSH formatting failed: %s", err)
		warnf("original unformatted file preserved")
	}
}

var warnColor = color.New(color.FgYellow)

func warnf(format string, args ...interface{}) {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		warnColor.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
		return
	}
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}
