package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
)

// Team refreshes and prints the duty roster grouped by status.
func (a *App) Team(ctx context.Context) error {
	if err := a.team.Refresh(ctx); err != nil {
		log.Printf("refreshing roster: %v", err)
	}
	roster := a.team.Roster()
	if len(roster) == 0 {
		printlnFn("No officers online.")
		return nil
	}
	for _, status := range dutyStatuses() {
		officers := roster[status]
		if len(officers) == 0 {
			continue
		}
		printlnFn(status + ":")
		for _, u := range officers {
			printlnFn(fmt.Sprintf("  %s (%s)", u.Username, u.Department))
		}
	}
	printlnFn(fmt.Sprintf("Im Dienst: %d", a.team.OnDutyCount()))
	return nil
}

// SetStatus prompts for a duty status and updates the profile.
func (a *App) SetStatus(ctx context.Context) error {
	statuses := dutyStatuses()
	for i, s := range statuses {
		printlnFn(fmt.Sprintf("%d. %s", i+1, s))
	}
	choice, err := GetSimpleText(a.reader, "Choose status", os.Stdout)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(statuses) {
		printlnFn("Invalid choice.")
		return nil
	}

	if err := a.team.SetStatus(ctx, statuses[n-1]); err != nil {
		log.Printf("updating status: %v", err)
		return err
	}
	printlnFn("Status: " + statuses[n-1])
	return nil
}
