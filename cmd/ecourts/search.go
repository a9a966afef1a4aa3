package main

import (
	"fmt"

	"github.com/rjoshi/ecourts"
	"github.com/rjoshi/ecourts/goquery"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if err := deps.Portal.OpenCaseStatus(deps.Ctx, c.CNR); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ecourts.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\nCNR search for %s\n%s\n\n", rule("="), c.CNR, rule("="))
	fmt.Fprintf(deps.Stdout, "%s\n", rule("!"))
	fmt.Fprintln(deps.Stdout, "ACTION REQUIRED: solve the CAPTCHA in the browser window and click Search.")
	fmt.Fprintf(deps.Stdout, "%s\n\n", rule("!"))
	fmt.Fprintln(deps.Stdout, "Waiting for the case details to render...")

	res, err := deps.Scraper.CaptureCaseStatus(deps.Ctx, c.CNR)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ecourts.ErrorMessage(err))
		return err
	}
	warnLogErr(deps.Stderr, res.LogErr)

	switch res.Outcome {
	case ecourts.OutcomeCaptured:
		fmt.Fprintln(deps.Stdout, ecourts.FormatCaseStatus(res.Status))
		fmt.Fprintln(deps.Stdout, ecourts.FormatListingNotice(res.Status, deps.Now()))
		fmt.Fprintf(deps.Stdout, "\nSaved to %s\n", res.Bundle.DataPath)
		if c.DownloadPDF {
			if !res.Status.HasFinalOrder {
				fmt.Fprintln(deps.Stdout, "No final orders to download.")
				return nil
			}
			return c.downloadOrders(deps, res.HTML)
		}
	case ecourts.OutcomeNoResults:
		fmt.Fprintln(deps.Stdout, "No results appeared before the deadline.")
		fmt.Fprintln(deps.Stdout, "The CAPTCHA may not have been solved, or the CNR may be invalid. Nothing was saved.")
	case ecourts.OutcomeMarkerAbsent:
		fmt.Fprintln(deps.Stdout, "Results appeared but no case-status table was found. The portal layout may have changed. Nothing was saved.")
	}
	return nil
}

// downloadOrders recovers the final-order links from the captured page and
// downloads each document over the live session's cookies.
func (c *SearchCmd) downloadOrders(deps *Dependencies, html string) error {
	location, err := deps.Portal.Location()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ecourts.ErrorMessage(err))
		return err
	}
	cookies, err := deps.Portal.Cookies()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ecourts.ErrorMessage(err))
		return err
	}

	links, err := goquery.OrderLinks(html, location)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ecourts.ErrorMessage(err))
		return err
	}
	if len(links) == 0 {
		fmt.Fprintln(deps.Stdout, "The order table carries no usable download links.")
		return nil
	}

	fetcher := deps.NewOrderFetcher(deps.Config.OrdersDir, location, cookies)
	saved, err := fetcher.FetchOrders(deps.Ctx, links)
	for _, path := range saved {
		fmt.Fprintf(deps.Stdout, "  Downloaded %s\n", path)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ecourts.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Downloaded %d order document(s).\n", len(saved))
	return nil
}
