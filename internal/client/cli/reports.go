package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/stadtwache/patrol/internal/client/models"
)

// Reports refreshes and prints the shift reports.
func (a *App) Reports(ctx context.Context) error {
	if err := a.reports.Refresh(ctx); err != nil {
		log.Printf("refreshing reports: %v", err)
	}
	list := a.reports.List()
	if len(list) == 0 {
		printlnFn("No reports.")
		return nil
	}
	for _, r := range list {
		printlnFn(fmt.Sprintf("%s  %s  %s", r.ID, r.ShiftDate, r.Title))
	}
	return nil
}

// AddReport prompts for the shift report fields and files it.
func (a *App) AddReport(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetSimpleText(a.reader, "Content", os.Stdout)
	if err != nil {
		return err
	}
	shiftDate, err := GetSimpleText(a.reader, "Shift date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.reports.Create(ctx, models.NewReport{Title: title, Content: content, ShiftDate: shiftDate})
	if err != nil {
		log.Printf("creating report: %v", err)
		return err
	}
	printlnFn("Report filed: " + created.ID)
	return nil
}
