package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/stadtwache/patrol/internal/client/models"
)

// Incidents refreshes and prints the incident list.
func (a *App) Incidents(ctx context.Context) error {
	if err := a.incidents.Refresh(ctx); err != nil {
		log.Printf("refreshing incidents: %v", err)
	}
	list := a.incidents.List()
	if len(list) == 0 {
		printlnFn("No incidents.")
		return nil
	}
	for _, inc := range list {
		printlnFn(fmt.Sprintf("%s  [%s/%s]  %s — %s", inc.ID, inc.Priority, inc.Status, inc.Title, inc.Address))
	}
	return nil
}

// ReportIncident prompts for the incident fields and files a new incident.
func (a *App) ReportIncident(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	address, err := GetSimpleText(a.reader, "Address", os.Stdout)
	if err != nil {
		return err
	}
	priority, err := GetSimpleText(a.reader, "Priority (low/medium/high, empty for default)", os.Stdout)
	if err != nil {
		return err
	}
	lat, err := GetSimpleText(a.reader, "Latitude (optional)", os.Stdout)
	if err != nil {
		return err
	}
	lng, err := GetSimpleText(a.reader, "Longitude (optional)", os.Stdout)
	if err != nil {
		return err
	}

	inc := models.NewIncident{
		Title:       title,
		Description: description,
		Address:     address,
		Priority:    priority,
	}
	if lat != "" && lng != "" {
		la, err1 := strconv.ParseFloat(lat, 64)
		ln, err2 := strconv.ParseFloat(lng, 64)
		if err1 != nil || err2 != nil {
			printlnFn("Invalid coordinates, ignoring.")
		} else {
			inc.Location = models.Location{Lat: la, Lng: ln}
		}
	}

	created, err := a.incidents.Report(ctx, inc)
	if err != nil {
		log.Printf("reporting incident: %v", err)
		return err
	}
	printlnFn("Incident filed: " + created.ID)
	return nil
}

// Assign takes over an incident.
func (a *App) Assign(ctx context.Context, id string) error {
	if err := a.incidents.Assign(ctx, id); err != nil {
		log.Printf("assigning incident: %v", err)
		return err
	}
	printlnFn("Incident übernommen.")
	return nil
}

// Complete closes an incident.
func (a *App) Complete(ctx context.Context, id string) error {
	if err := a.incidents.Complete(ctx, id); err != nil {
		log.Printf("completing incident: %v", err)
		return err
	}
	printlnFn("Incident abgeschlossen.")
	return nil
}
