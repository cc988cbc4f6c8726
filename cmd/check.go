package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/railway-sim/railway-sim/banker"
	"github.com/railway-sim/railway-sim/banker/scenario"
)

// checkCmd runs a one-shot safety and deadlock report over a scenario file.
// Exit code 0 means safe and cycle-free; 1 means unsafe or deadlocked, so
// the command is usable from scripts.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report safety and wait-for cycles for a scenario file",
	Run: func(cmd *cobra.Command, args []string) {
		if scenarioFile == "" {
			logrus.Fatal("--scenario is required")
		}
		state, err := scenario.Load(scenarioFile)
		if err != nil {
			logrus.Fatalf("loading scenario: %v", err)
		}

		healthy := true

		g := banker.BuildWaitForGraph(state)
		if cycle, found := banker.FindCycle(g); found {
			fmt.Printf("DEADLOCK: %s\n", renderCycle(state, cycle))
			healthy = false
		} else {
			fmt.Println("No wait-for cycle.")
		}

		if safe, seq := banker.IsSafe(state); safe {
			fmt.Printf("SAFE: %s\n", renderSafeSequence(state, seq))
		} else {
			fmt.Println("UNSAFE: no completion order exists.")
			healthy = false
		}

		if !healthy {
			os.Exit(1)
		}
	},
}
