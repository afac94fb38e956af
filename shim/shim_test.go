package shim

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gmshfmt/msh"
)

var meshFile = []byte(`$MeshFormat
4.1 0 8
$EndMeshFormat
$Nodes
1 1 1 1
0 1 0 1
1
0.1 0.2 0.3
$EndNodes
`)

// rawWriter stands in for the original mesh writer being augmented.
func rawWriter(calls *int) WriteFunc {
	return func(path string) error {
		*calls++
		return os.WriteFile(path, meshFile, 0644)
	}
}

func plainOptions() msh.Options {
	o := msh.DefaultOptions()
	o.AlignColumns = false
	o.AddComments = false
	o.Precision = 2
	return o
}

func TestWriteDelegation(t *testing.T) {
	var (
		calls int
		dir   = t.TempDir()
		path  = filepath.Join(dir, "out.msh")
	)
	o := plainOptions()
	s := New(rawWriter(&calls), &o)

	{ // Not applied: the wrapped writer runs, output stays unformatted
		err := s.Write(path)
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
		data, _ := os.ReadFile(path)
		assert.Equal(t, meshFile, data)
	}
	{ // Applied: post-write formatting pass, with backup
		s.Apply()
		err := s.Write(path)
		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
		data, _ := os.ReadFile(path)
		assert.Equal(t, "0.10 0.20 0.30", strings.Split(string(data), "\n")[8])
		backup, err := os.ReadFile(path + msh.BackupSuffix)
		assert.NoError(t, err)
		assert.Equal(t, meshFile, backup)
	}
}

func TestWriteWith(t *testing.T) {
	var (
		calls int
		dir   = t.TempDir()
		path  = filepath.Join(dir, "out.msh")
	)
	// Explicit per-call options format even when the shim is not applied
	s := New(rawWriter(&calls), nil)
	o := plainOptions()
	o.SectionSpacing = 0
	err := s.WriteWith(path, o)
	assert.NoError(t, err)
	data, _ := os.ReadFile(path)
	assert.False(t, strings.Contains(string(data), "\n\n"))
	assert.True(t, strings.Contains(string(data), "0.10 0.20 0.30"))
}

func TestApplyRestoreIdempotent(t *testing.T) {
	s := New(rawWriter(new(int)), nil)
	assert.False(t, s.Applied())
	s.Apply()
	assert.True(t, s.Applied())
	s.Apply() // no-op with a warning
	assert.True(t, s.Applied())
	s.Restore()
	assert.False(t, s.Applied())
	s.Restore() // no-op with a warning
	assert.False(t, s.Applied())
}

func TestScope(t *testing.T) {
	s := New(rawWriter(new(int)), nil)
	prev := s.Options()

	{ // Scope applies and swaps options; restore puts both back
		o := s.Options()
		o.Precision = 4
		restore := s.Scope(o)
		assert.True(t, s.Applied())
		assert.Equal(t, 4, s.Options().Precision)
		restore()
		assert.False(t, s.Applied())
		assert.Equal(t, prev, s.Options())
	}
	{ // Restoration also happens on abnormal exit
		func() {
			defer func() {
				assert.NotNil(t, recover())
			}()
			o := s.Options()
			o.Precision = 4
			defer s.Scope(o)()
			panic("writer blew up")
		}()
		assert.False(t, s.Applied())
		assert.Equal(t, prev, s.Options())
	}
}

func TestFormattingFailurePreservesWrite(t *testing.T) {
	var (
		dir  = t.TempDir()
		path = filepath.Join(dir, "out.msh")
	)
	// A writer that produces nothing: the post-write format pass cannot
	// read the file, which must surface as a warning, not an error
	s := New(func(string) error { return nil }, nil)
	s.Apply()
	err := s.Write(path)
	assert.NoError(t, err)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteErrorPropagates(t *testing.T) {
	s := New(func(string) error { return os.ErrPermission }, nil)
	s.Apply()
	err := s.Write(filepath.Join(t.TempDir(), "out.msh"))
	assert.Error(t, err)
}
