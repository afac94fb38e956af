package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/notargets/gmshfmt/msh"
)

func TestFormatOptionsFile(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Precision: 8
AlignColumns: false
ColumnWidth: 18
NodeCommentFreq: 100
`)
	o := msh.DefaultOptions()
	if err = o.Parse(fileInput); err != nil {
		panic(err)
	}
	// Check fields set by the file
	assert.Equal(t, o.Precision, 8)
	assert.Equal(t, o.AlignColumns, false)
	assert.Equal(t, o.ColumnWidth, 18)
	assert.Equal(t, o.NodeCommentFreq, 100)
	// Fields absent from the file keep their defaults
	assert.Equal(t, o.AddComments, true)
	assert.Equal(t, o.SectionSpacing, 1)
	assert.Equal(t, o.ScientificThreshold, 1.e-6)
	o.Print()
}
