package msh

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Options controls how an MSH file is re-rendered. The zero value is not
// useful; start from DefaultOptions. Options values are plain data owned
// by the caller and are never mutated by the formatter.
type Options struct {
	Precision           int     `yaml:"Precision"`           // Decimal places for floating point
	AlignColumns        bool    `yaml:"AlignColumns"`        // Enable column alignment
	AddComments         bool    `yaml:"AddComments"`         // Add explanatory comments
	CompactMode         bool    `yaml:"CompactMode"`         // Suppress inter-section spacing
	ScientificThreshold float64 `yaml:"ScientificThreshold"` // Magnitude below which nonzero floats go scientific
	ColumnWidth         int     `yaml:"ColumnWidth"`         // Width for aligned float columns
	SectionSpacing      int     `yaml:"SectionSpacing"`      // Blank lines between sections
	NodeCommentFreq     int     `yaml:"NodeCommentFreq"`     // Progress comment every N nodes (0=disable)
	ElementCommentFreq  int     `yaml:"ElementCommentFreq"`  // Progress comment every N elements (0=disable)
}

func DefaultOptions() Options {
	return Options{
		Precision:           16,
		AlignColumns:        true,
		AddComments:         true,
		CompactMode:         false,
		ScientificThreshold: 1.e-6,
		ColumnWidth:         20,
		SectionSpacing:      1,
		NodeCommentFreq:     0,
		ElementCommentFreq:  0,
	}
}

// Parse overlays fields present in the YAML data onto the receiver, so a
// partial options file merges with whatever defaults are already set.
func (o *Options) Parse(data []byte) error {
	return yaml.Unmarshal(data, o)
}

func (o *Options) Print() {
	fmt.Printf("[%d]\t\t\t= Precision\n", o.Precision)
	fmt.Printf("[%v]\t\t\t= AlignColumns\n", o.AlignColumns)
	fmt.Printf("[%v]\t\t\t= AddComments\n", o.AddComments)
	fmt.Printf("[%v]\t\t\t= CompactMode\n", o.CompactMode)
	fmt.Printf("%8.2e\t\t= ScientificThreshold\n", o.ScientificThreshold)
	fmt.Printf("[%d]\t\t\t= ColumnWidth\n", o.ColumnWidth)
	fmt.Printf("[%d]\t\t\t= SectionSpacing\n", o.SectionSpacing)
	fmt.Printf("[%d]\t\t\t= NodeCommentFreq\n", o.NodeCommentFreq)
	fmt.Printf("[%d]\t\t\t= ElementCommentFreq\n", o.ElementCommentFreq)
}
