package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rjoshi/ecourts"
)

// Run executes the causelist command.
func (c *CauselistCmd) Run(deps *Dependencies) error {
	listDate := c.Date
	if listDate != "" {
		if _, err := time.Parse("02-01-2006", listDate); err != nil {
			err := ecourts.Errorf(ecourts.EINVALID, "date must be dd-mm-yyyy, got %q", c.Date)
			fmt.Fprintf(deps.Stderr, "error: %s\n", ecourts.ErrorMessage(err))
			return err
		}
	} else {
		day := deps.Now()
		if c.Tomorrow {
			day = day.AddDate(0, 0, 1)
		}
		listDate = day.Format("02-01-2006")
	}

	if err := deps.Portal.OpenCauseList(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ecourts.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\nCause-list capture for %s\n%s\n\n", rule("="), listDate, rule("="))
	fmt.Fprintf(deps.Stdout, "%s\n", rule("!"))
	fmt.Fprintln(deps.Stdout, "ACTION REQUIRED: a browser window has opened.")
	fmt.Fprintln(deps.Stdout, "  1. Select your State, District, Court Complex, and Establishment.")
	if line := courtCodes(deps.Config); line != "" {
		fmt.Fprintf(deps.Stdout, "     (configured: %s)\n", line)
	}
	fmt.Fprintln(deps.Stdout, "  2. Pick the date from the calendar.")
	fmt.Fprintln(deps.Stdout, "  3. Solve the CAPTCHA.")
	fmt.Fprintln(deps.Stdout, "  4. Click the Civil or Criminal button to view the list.")
	fmt.Fprintf(deps.Stdout, "%s\n\n", rule("!"))
	fmt.Fprintln(deps.Stdout, "Waiting for the results to render...")

	res, err := deps.Scraper.CaptureCauseList(deps.Ctx, listDate)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ecourts.ErrorMessage(err))
		return err
	}
	warnLogErr(deps.Stderr, res.LogErr)

	switch res.Outcome {
	case ecourts.OutcomeCaptured:
		fmt.Fprintf(deps.Stdout, "Captured %d records (%d dropped) from the %s results.\n", res.Records, res.Dropped, res.Source)
		fmt.Fprintf(deps.Stdout, "  Data:    %s\n", res.Bundle.DataPath)
		fmt.Fprintf(deps.Stdout, "  Summary: %s\n", res.Bundle.SummaryPath)
	case ecourts.OutcomeNoResults:
		fmt.Fprintln(deps.Stdout, "No results appeared before the deadline.")
		fmt.Fprintln(deps.Stdout, "You may have taken too long, or no cause list exists for that date. Nothing was saved.")
	case ecourts.OutcomeMarkerAbsent:
		fmt.Fprintln(deps.Stdout, "Results appeared but no hearings table was found. The portal layout may have changed. Nothing was saved.")
	}
	return nil
}

// courtCodes renders the configured court identifiers, if any.
func courtCodes(config ecourts.Config) string {
	var parts []string
	if config.StateCode != "" {
		parts = append(parts, "state "+config.StateCode)
	}
	if config.DistCode != "" {
		parts = append(parts, "district "+config.DistCode)
	}
	if config.CourtCode != "" {
		parts = append(parts, "court "+config.CourtCode)
	}
	return strings.Join(parts, ", ")
}

func rule(ch string) string {
	return strings.Repeat(ch, 60)
}

// warnLogErr reports a session-log write failure without failing the run; the
// capture itself already succeeded or was reported.
func warnLogErr(w io.Writer, err error) {
	if err != nil {
		fmt.Fprintf(w, "warning: session log not updated: %s\n", ecourts.ErrorMessage(err))
	}
}
