package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/releve-app/releve/internal/client/api"
)

// Businesses lists venues, optionally narrowed by a category slug and a
// free-text search, the same filters the mobile app sends.
func (a *App) Businesses(ctx context.Context) error {
	category, err := getSimpleText(a.reader, "Category slug (empty for all)", a.out)
	if err != nil {
		return err
	}
	query, err := getSimpleText(a.reader, "Search (empty for none)", a.out)
	if err != nil {
		return err
	}

	businesses, err := a.api.ListBusinesses(ctx, api.BusinessFilter{Category: category, Query: query})
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	if len(businesses) == 0 {
		fmt.Fprintln(a.out, "No businesses found")
		return nil
	}

	for _, b := range businesses {
		fmt.Fprintf(a.out, "%s  %s [%s] credit $%d\n", b.ID, b.Name, b.CategoryName, b.DefaultVisitCredit)
	}
	return nil
}

// Venue shows one business with its requirements and visit slots, and offers
// a visit pass for a chosen slot. The pass is rendered locally; there is no
// redeem endpoint.
func (a *App) Venue(ctx context.Context, id string) error {
	if id == "" {
		var err error
		id, err = getSimpleText(a.reader, "Business id", a.out)
		if err != nil {
			return err
		}
	}

	venue, err := a.api.GetBusiness(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	fmt.Fprintf(a.out, "%s [%s]\n", venue.Name, venue.CategoryName)
	if venue.Description != "" {
		fmt.Fprintln(a.out, venue.Description)
	}
	fmt.Fprintf(a.out, "Visit credit: $%d\n", venue.DefaultVisitCredit)
	for _, r := range venue.Requirements {
		fmt.Fprintf(a.out, "- %s\n", r)
	}

	slots, err := a.api.ListSlots(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Error loading slots: %s\n", err)
		return err
	}
	if len(slots) == 0 {
		fmt.Fprintln(a.out, "No visit slots available")
		return nil
	}

	fmt.Fprintln(a.out, "Slots:")
	for i, s := range slots {
		fmt.Fprintf(a.out, "%d) %s - %s (%d left)\n", i+1,
			s.Start.Format("Mon 02 Jan 15:04"), s.End.Format("15:04"), s.Available)
	}

	choice, err := getSimpleText(a.reader, "Slot number for a visit pass (empty to skip)", a.out)
	if err != nil || choice == "" {
		return err
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(slots) {
		fmt.Fprintln(a.out, "Invalid slot number")
		return nil
	}

	slot := slots[n-1]
	fmt.Fprintf(a.out, "Visit pass: %s\n", visitPassCode(venue.ID, slot.Start))
	fmt.Fprintln(a.out, "Show this code at the venue")
	return nil
}

// Categories prints the available business categories.
func (a *App) Categories(ctx context.Context) error {
	categories, err := a.api.ListCategories(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	for _, c := range categories {
		fmt.Fprintf(a.out, "%s  (%s)\n", c.Name, c.Slug)
	}
	return nil
}

// Cities prints the supported cities.
func (a *App) Cities(ctx context.Context) error {
	cities, err := a.api.ListCities(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	for _, c := range cities {
		fmt.Fprintf(a.out, "%s  %s\n", c.ID, c.Name)
	}
	return nil
}
