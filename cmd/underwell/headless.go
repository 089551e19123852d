package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lixenwraith/underwell/command"
	"github.com/lixenwraith/underwell/engine"
)

// runHeadless starts the world and steps it directly, without wall-clock pacing
// Stops early at game over. Returns the process exit code
func runHeadless(w *engine.World, ticks int, dumpPath string, out io.Writer) int {
	command.Dispatch(w, command.Start{})

	ran := 0
	for ; ran < ticks; ran++ {
		if !w.Step() {
			break
		}
	}

	snap := w.Snapshot()
	fmt.Fprintf(out, "ticks=%d time=%.2f running=%v high=%.1f produced=%d everstone_hp=%.0f monsters=%d blocks=%d\n",
		ran, snap.Time, snap.Running, snap.High, snap.Produced(), snap.EverstoneHP(), len(snap.Monsters), len(snap.Blocks))
	for _, line := range w.Status.Lines() {
		fmt.Fprintln(out, line)
	}

	if dumpPath == "" {
		return 0
	}

	f, err := os.Create(dumpPath)
	if err != nil {
		log.Printf("snapshot dump: %v", err)
		fmt.Fprintf(os.Stderr, "underwell: %v\n", err)
		return 1
	}
	defer f.Close()

	if err := engine.EncodeSnapshot(f, &snap); err != nil {
		fmt.Fprintf(os.Stderr, "underwell: %v\n", err)
		return 1
	}
	return 0
}
