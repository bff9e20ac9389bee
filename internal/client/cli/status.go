package cli

import "fmt"

// SyncStatus prints one line per registered polling task: last run, run and
// skip counters, and the last error if the most recent run failed.
func (a *App) SyncStatus() {
	names := a.poller.Names()
	if len(names) == 0 {
		printlnFn("No polling tasks registered.")
		return
	}
	for _, name := range names {
		snap, ok := a.poller.Status(name)
		if !ok {
			continue
		}
		line := fmt.Sprintf("%-15s runs=%d skipped=%d", name, snap.Runs, snap.Skipped)
		if !snap.LastRun.IsZero() {
			line += " last=" + snap.LastRun.Format("15:04:05")
		}
		if snap.LastError != nil {
			line += " error=" + snap.LastError.Error()
		}
		printlnFn(line)
	}
}
