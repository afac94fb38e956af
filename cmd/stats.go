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

	"github.com/spf13/cobra"

	"github.com/notargets/gmshfmt/msh"
)

// StatsCmd represents the stats command
var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print a summary of an MSH mesh file",
	Long: `
Prints the section inventory, node and element counts, and coordinate
bounding box of an MSH 4.1 mesh file. Read only, no reformatting.

gmshfmt stats -F mesh.msh`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err      error
			meshFile string
		)
		if meshFile, err = cmd.Flags().GetString("meshFile"); err != nil {
			panic(err)
		}
		if len(meshFile) == 0 {
			fmt.Printf("error: must supply a mesh file (-F, --meshFile)\n")
			os.Exit(1)
		}
		data, err := os.ReadFile(meshFile)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("Reading MSH file named: %s\n", meshFile)
		stats := msh.ComputeStats(string(data))
		stats.Print()
	},
}

func init() {
	rootCmd.AddCommand(StatsCmd)
	StatsCmd.Flags().StringP("meshFile", "F", "", "Mesh file to summarize, in MSH 4.1 ASCII format")
}
