package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/railway-sim/railway-sim/banker"
	"github.com/railway-sim/railway-sim/banker/dot"
	"github.com/railway-sim/railway-sim/banker/scenario"
)

// session holds the live ledger and its checkpoint pool for one interactive
// run. The core assumes exclusive access to the state; the menu loop is the
// single caller, so no locking is needed.
type session struct {
	state       *banker.State
	checkpoints *banker.CheckpointStore
	in          *bufio.Scanner
	out         io.Writer
}

// runCmd drives the interactive menu loop over a live scenario.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Interactive railway deadlock simulator",
	Run: func(cmd *cobra.Command, args []string) {
		sess := &session{
			state:       scenario.Sample(),
			checkpoints: banker.NewCheckpointStore(banker.DefaultCheckpointSlots),
			in:          bufio.NewScanner(os.Stdin),
			out:         os.Stdout,
		}
		fmt.Fprintln(sess.out, "Railway Deadlock Simulator — sample scenario loaded")
		sess.loop()
	},
}

func (sess *session) loop() {
	for {
		fmt.Fprint(sess.out, `
MENU
 1) Load sample scenario
 2) Generate random scenario
 3) Load scenario from YAML file
 4) Show current state
 5) Request tracks for a train (Banker's avoidance)
 6) Detect deadlock (wait-for graph + safety check)
 7) Recover: terminate train
 8) Recover: preempt tracks from train
 9) Save checkpoint
10) Restore checkpoint
11) Export DOT for Graphviz
 q) Quit
Choice: `)
		choice, ok := sess.readLine()
		if !ok {
			return
		}
		switch strings.TrimSpace(choice) {
		case "1":
			sess.state = scenario.Sample()
			fmt.Fprintln(sess.out, "Sample scenario loaded.")
		case "2":
			sess.loadRandom()
		case "3":
			sess.loadFile()
		case "4":
			renderState(sess.out, sess.state)
		case "5":
			sess.requestTracks()
		case "6":
			sess.detect()
		case "7":
			sess.terminate()
		case "8":
			sess.preempt()
		case "9":
			sess.saveCheckpoint()
		case "10":
			sess.restoreCheckpoint()
		case "11":
			sess.exportDOT()
		case "q", "Q":
			fmt.Fprintln(sess.out, "Goodbye.")
			return
		default:
			fmt.Fprintln(sess.out, "Unknown choice.")
		}
	}
}

func (sess *session) loadRandom() {
	trains := sess.readInt("Number of trains", 1, banker.MaxConsumers)
	tracks := sess.readInt("Number of track sections", 1, banker.MaxResources)
	maxUnits := sess.readInt("Max units per track", 1, 64)
	seed := sess.readInt("Seed", 0, 1<<30)
	st, err := scenario.Random(scenario.RandomConfig{
		Consumers: trains, Resources: tracks, MaxUnits: maxUnits, Seed: int64(seed),
	})
	if err != nil {
		fmt.Fprintf(sess.out, "Random scenario failed: %v\n", err)
		return
	}
	sess.state = st
	fmt.Fprintln(sess.out, "Random scenario created.")
}

func (sess *session) loadFile() {
	fmt.Fprint(sess.out, "Scenario file path: ")
	path, ok := sess.readLine()
	if !ok {
		return
	}
	st, err := scenario.Load(strings.TrimSpace(path))
	if err != nil {
		fmt.Fprintf(sess.out, "Load failed: %v\n", err)
		return
	}
	sess.state = st
	fmt.Fprintln(sess.out, "Scenario loaded.")
}

func (sess *session) requestTracks() {
	tid := sess.readInt("Train id", 0, sess.state.NumConsumers()-1)
	req := make([]int, sess.state.NumResources())
	for j := range req {
		req[j] = sess.readInt(fmt.Sprintf("Units of track %d", j), 0, 1<<30)
	}

	// Snapshot before the risky mutation; a full pool is not fatal.
	if _, err := sess.checkpoints.Save(sess.state, "pre-request"); err != nil {
		fmt.Fprintf(sess.out, "Warning: %v\n", err)
	}
	decision := banker.Request(sess.state, tid, req)
	if decision.Granted {
		fmt.Fprintln(sess.out, "Request granted safely.")
	} else {
		fmt.Fprintf(sess.out, "Request denied: %s\n", decision.Reason)
	}
}

func (sess *session) detect() {
	g := banker.BuildWaitForGraph(sess.state)
	renderWaitForGraph(sess.out, sess.state, g)

	if cycle, found := banker.FindCycle(g); found {
		fmt.Fprintf(sess.out, "Deadlock detected! Cycle: %s\n", renderCycle(sess.state, cycle))
	} else {
		fmt.Fprintln(sess.out, "No wait-for cycle found.")
	}

	// The two checks are complementary: run the Banker's check regardless.
	if safe, seq := banker.IsSafe(sess.state); safe {
		fmt.Fprintf(sess.out, "System is SAFE. Completion order: %s\n", renderSafeSequence(sess.state, seq))
	} else {
		fmt.Fprintln(sess.out, "System is UNSAFE (no completion order exists).")
	}
}

func (sess *session) terminate() {
	tid := sess.readInt("Train id to terminate", 0, sess.state.NumConsumers()-1)
	if _, err := sess.checkpoints.Save(sess.state, "pre-terminate"); err != nil {
		fmt.Fprintf(sess.out, "Warning: %v\n", err)
	}
	if err := banker.Terminate(sess.state, tid); err != nil {
		fmt.Fprintf(sess.out, "Termination failed: %v\n", err)
		return
	}
	fmt.Fprintf(sess.out, "Train %d terminated and tracks released.\n", tid)
}

func (sess *session) preempt() {
	tid := sess.readInt("Victim train id", 0, sess.state.NumConsumers()-1)
	vec := make([]int, sess.state.NumResources())
	for j := range vec {
		vec[j] = sess.readInt(fmt.Sprintf("Units to preempt from track %d", j), 0, 1<<30)
	}
	if _, err := sess.checkpoints.Save(sess.state, "pre-preempt"); err != nil {
		fmt.Fprintf(sess.out, "Warning: %v\n", err)
	}
	if err := banker.Preempt(sess.state, tid, vec); err != nil {
		fmt.Fprintf(sess.out, "Preemption failed: %v\n", err)
		return
	}
	fmt.Fprintf(sess.out, "Preemption done from train %d.\n", tid)
}

func (sess *session) saveCheckpoint() {
	fmt.Fprint(sess.out, "Checkpoint label: ")
	label, _ := sess.readLine()
	id, err := sess.checkpoints.Save(sess.state, strings.TrimSpace(label))
	if err != nil {
		fmt.Fprintf(sess.out, "Save failed: %v\n", err)
		return
	}
	fmt.Fprintf(sess.out, "Saved checkpoint %d.\n", id)
}

func (sess *session) restoreCheckpoint() {
	live := sess.checkpoints.List()
	if len(live) == 0 {
		fmt.Fprintln(sess.out, "No checkpoints available.")
		return
	}
	fmt.Fprintln(sess.out, "Available checkpoints:")
	for _, info := range live {
		fmt.Fprintf(sess.out, "  %d: %s\n", info.Slot, info.Label)
	}
	id := sess.readInt("Slot to restore", 0, sess.checkpoints.Capacity()-1)
	st, err := sess.checkpoints.Restore(id)
	if err != nil {
		fmt.Fprintf(sess.out, "Restore failed: %v\n", err)
		return
	}
	sess.state = st
	fmt.Fprintf(sess.out, "Restored checkpoint %d.\n", id)
}

func (sess *session) exportDOT() {
	fmt.Fprint(sess.out, "Output filename (e.g. railway.dot): ")
	name, ok := sess.readLine()
	if !ok {
		return
	}
	name = strings.TrimSpace(name)
	f, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(sess.out, "Cannot create %s: %v\n", name, err)
		return
	}
	defer f.Close()
	g := banker.BuildWaitForGraph(sess.state)
	if err := dot.Export(f, sess.state, g); err != nil {
		fmt.Fprintf(sess.out, "Export failed: %v\n", err)
		return
	}
	fmt.Fprintf(sess.out, "DOT written to %s. Render with: dot -Tpng %s -o out.png\n", name, name)
}

// readLine returns the next input line, or ok=false on EOF.
func (sess *session) readLine() (string, bool) {
	if !sess.in.Scan() {
		return "", false
	}
	return sess.in.Text(), true
}

// readInt prompts until it reads an integer in [lo, hi]. EOF yields lo.
func (sess *session) readInt(prompt string, lo, hi int) int {
	for {
		fmt.Fprintf(sess.out, "%s (%d-%d): ", prompt, lo, hi)
		line, ok := sess.readLine()
		if !ok {
			return lo
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || v < lo || v > hi {
			fmt.Fprintln(sess.out, "Invalid value.")
			continue
		}
		return v
	}
}
