package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/stadtwache/patrol/internal/client/models"
)

// Persons refreshes and prints the missing/wanted registry with its stats.
func (a *App) Persons(ctx context.Context) error {
	if err := a.persons.Refresh(ctx); err != nil {
		log.Printf("refreshing persons: %v", err)
	}
	stats := a.persons.Stats()
	printlnFn(fmt.Sprintf("Total %d | missing %d | wanted %d | found %d",
		stats.TotalPersons, stats.MissingPersons, stats.WantedPersons, stats.FoundPersons))
	for _, p := range a.persons.List() {
		printlnFn(fmt.Sprintf("%s  [%s]  %s %s — %s", p.ID, p.Status, p.FirstName, p.LastName, p.CaseNumber))
	}
	return nil
}

// AddPerson prompts for the registry fields and files a new entry.
func (a *App) AddPerson(ctx context.Context) error {
	first, err := GetSimpleText(a.reader, "First name", os.Stdout)
	if err != nil {
		return err
	}
	last, err := GetSimpleText(a.reader, "Last name", os.Stdout)
	if err != nil {
		return err
	}
	status, err := GetSimpleText(a.reader, "Status (missing/wanted/found)", os.Stdout)
	if err != nil {
		return err
	}
	ageText, err := GetSimpleText(a.reader, "Age (optional)", os.Stdout)
	if err != nil {
		return err
	}

	p := models.Person{FirstName: first, LastName: last, Status: status}
	if ageText != "" {
		age, err := strconv.Atoi(ageText)
		if err != nil {
			printlnFn("Invalid age, ignoring.")
		} else {
			p.Age = &age
		}
	}

	saved, err := a.persons.Save(ctx, p)
	if err != nil {
		log.Printf("saving person: %v", err)
		return err
	}
	printlnFn("Person filed: " + saved.ID)
	return nil
}
