/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/profile"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/notargets/gmshfmt/msh"
)

type FormatRun struct {
	MeshFile    string
	OutputFile  string
	OptionsFile string
	ShowDiff    bool
	Profile     bool
	Verbose     bool
}

// FormatCmd represents the format command
var FormatCmd = &cobra.Command{
	Use:   "format",
	Short: "Reformat an MSH mesh file into canonical layout",
	Long: `
Reformats an MSH 4.1 mesh file: sections are reordered into canonical
sequence and node/element/entity records are re-rendered with the
configured precision and alignment. Without -o the file is formatted in
place and the original is kept at <file>.backup.

gmshfmt format -F mesh.msh`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fr := &FormatRun{}
		if fr.MeshFile, err = cmd.Flags().GetString("meshFile"); err != nil {
			panic(err)
		}
		fr.OutputFile, _ = cmd.Flags().GetString("output")
		fr.OptionsFile, _ = cmd.Flags().GetString("optionsFile")
		fr.ShowDiff, _ = cmd.Flags().GetBool("diff")
		fr.Profile, _ = cmd.Flags().GetBool("profile")
		fr.Verbose, _ = cmd.Flags().GetBool("verbose")
		o := processFormatInput(cmd, fr)
		RunFormat(fr, o)
	},
}

func processFormatInput(cmd *cobra.Command, fr *FormatRun) (o msh.Options) {
	var (
		err      error
		willExit bool
	)
	if len(fr.MeshFile) == 0 {
		err = fmt.Errorf("must supply a mesh file (-F, --meshFile) in MSH 4.1 ASCII format")
		fmt.Printf("error: %s\n", err.Error())
		willExit = true
	}
	o = msh.DefaultOptions()
	if len(fr.OptionsFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(fr.OptionsFile); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			exampleFile := `
########################################
Precision: 8
AlignColumns: true
AddComments: false
ColumnWidth: 18
SectionSpacing: 1
########################################
`
			fmt.Printf("Example File:%s\n", exampleFile)
			willExit = true
		} else if err = o.Parse(data); err != nil {
			fmt.Printf("error: unable to parse options file %s: %s\n", fr.OptionsFile, err.Error())
			willExit = true
		}
	}
	if willExit {
		os.Exit(1)
	}
	// Individual flags override the options file
	if cmd.Flags().Changed("precision") {
		o.Precision, _ = cmd.Flags().GetInt("precision")
	}
	if cmd.Flags().Changed("align") {
		o.AlignColumns, _ = cmd.Flags().GetBool("align")
	}
	if cmd.Flags().Changed("comments") {
		o.AddComments, _ = cmd.Flags().GetBool("comments")
	}
	if cmd.Flags().Changed("compact") {
		o.CompactMode, _ = cmd.Flags().GetBool("compact")
	}
	if cmd.Flags().Changed("scientificThreshold") {
		o.ScientificThreshold, _ = cmd.Flags().GetFloat64("scientificThreshold")
	}
	if cmd.Flags().Changed("columnWidth") {
		o.ColumnWidth, _ = cmd.Flags().GetInt("columnWidth")
	}
	if cmd.Flags().Changed("sectionSpacing") {
		o.SectionSpacing, _ = cmd.Flags().GetInt("sectionSpacing")
	}
	if cmd.Flags().Changed("nodeCommentFreq") {
		o.NodeCommentFreq, _ = cmd.Flags().GetInt("nodeCommentFreq")
	}
	if cmd.Flags().Changed("elementCommentFreq") {
		o.ElementCommentFreq, _ = cmd.Flags().GetInt("elementCommentFreq")
	}
	return
}

func init() {
	rootCmd.AddCommand(FormatCmd)
	FormatCmd.Flags().StringP("meshFile", "F", "", "Mesh file to reformat, in MSH 4.1 ASCII format")
	FormatCmd.Flags().StringP("output", "o", "", "Output file (default: overwrite input, keeping a .backup)")
	FormatCmd.Flags().StringP("optionsFile", "I", "", "YAML file of formatting options like:\n\t- Precision\n\t- ColumnWidth")
	FormatCmd.Flags().IntP("precision", "p", 16, "decimal places for floating point values")
	FormatCmd.Flags().Bool("align", true, "right-align values into fixed-width columns")
	FormatCmd.Flags().Bool("comments", true, "add explanatory comments to the output")
	FormatCmd.Flags().Bool("compact", false, "suppress blank lines between sections")
	FormatCmd.Flags().Float64("scientificThreshold", 1.e-6, "magnitude below which nonzero floats use scientific notation")
	FormatCmd.Flags().IntP("columnWidth", "w", 20, "column width for aligned float values")
	FormatCmd.Flags().Int("sectionSpacing", 1, "blank lines between sections")
	FormatCmd.Flags().Int("nodeCommentFreq", 0, "progress comment every N nodes (0=disable)")
	FormatCmd.Flags().Int("elementCommentFreq", 0, "progress comment every N elements (0=disable)")
	FormatCmd.Flags().Bool("diff", false, "print a diff of the rewrite to stdout")
	FormatCmd.Flags().Bool("profile", false, "write a CPU profile of the formatting run")
	FormatCmd.Flags().BoolP("verbose", "v", false, "print the effective options and progress")
}

func RunFormat(fr *FormatRun, o msh.Options) {
	if fr.Profile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}
	if fr.Verbose {
		fmt.Printf("Formatting MSH file named: %s\n", fr.MeshFile)
		o.Print()
	}
	var before []byte
	if fr.ShowDiff {
		var err error
		if before, err = os.ReadFile(fr.MeshFile); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	}
	if err := msh.FormatFile(fr.MeshFile, fr.OutputFile, &o); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if fr.ShowDiff {
		outPath := fr.OutputFile
		if len(outPath) == 0 {
			outPath = fr.MeshFile
		}
		after, err := os.ReadFile(outPath)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		printDiff(string(before), string(after))
	}
}

// printDiff shows the rewrite as a character diff when stdout is a
// terminal, or as an insert/delete summary when piped.
func printDiff(before, after string) {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(before, after, true)
	if isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(dmp.DiffPrettyText(diffs))
		return
	}
	var inserted, deleted int
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			inserted += len(d.Text)
		case diffpatch.DiffDelete:
			deleted += len(d.Text)
		}
	}
	fmt.Printf("diff: +%d -%d bytes\n", inserted, deleted)
}
