package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/railway-sim/railway-sim/banker"
	"github.com/railway-sim/railway-sim/banker/dot"
	"github.com/railway-sim/railway-sim/banker/scenario"
)

var exportOut string // Output DOT file path

// exportCmd writes the allocation and wait-for graphs of a scenario as a
// Graphviz digraph, without entering the interactive loop.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a scenario's allocation/wait-for graphs as Graphviz DOT",
	Run: func(cmd *cobra.Command, args []string) {
		state := scenario.Sample()
		if scenarioFile != "" {
			var err error
			if state, err = scenario.Load(scenarioFile); err != nil {
				logrus.Fatalf("loading scenario: %v", err)
			}
		}

		f, err := os.Create(exportOut)
		if err != nil {
			logrus.Fatalf("creating %s: %v", exportOut, err)
		}
		defer f.Close()

		g := banker.BuildWaitForGraph(state)
		if err := dot.Export(f, state, g); err != nil {
			logrus.Fatalf("writing DOT: %v", err)
		}
		logrus.Infof("DOT written to %s", exportOut)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "railway.dot", "Output DOT file path")
}
