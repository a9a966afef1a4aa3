// Package scrape provides search-session orchestration. It waits for the
// human-triggered query to render results, extracts and normalizes them,
// persists the capture, and records the session outcome.
package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rjoshi/ecourts"
	"github.com/rjoshi/ecourts/normalize"
)

// Scraper runs one search session end to end. Sessions is optional; when
// set, every terminal outcome is recorded, including not-found and failures.
type Scraper struct {
	Locator   ecourts.ResultLocator
	Extractor ecourts.TableExtractor
	Writer    ecourts.BundleWriter
	Sessions  ecourts.SessionService
}

// Result holds the outcome of one capture session.
type Result struct {
	Source  ecourts.ResultSource
	Outcome string

	// Records and Dropped account for every extracted row.
	Records int
	Dropped int

	// Bundle is set only for captured outcomes.
	Bundle *ecourts.ExportBundle

	// Status is set for captured case-status sessions.
	Status *ecourts.CaseStatusRecord

	// HTML is the captured page content the session settled on, kept for
	// follow-up work within the session (order-link recovery).
	HTML string

	// LogErr reports a session-log write failure. A failed audit insert
	// never voids a capture already on disk.
	LogErr error
}

// CaptureCauseList waits for a cause-list query to render, then extracts,
// normalizes, and persists the hearings table. listDate is the display label
// of the queried date, recorded on the session.
func (s *Scraper) CaptureCauseList(ctx context.Context, listDate string) (*Result, error) {
	started := time.Now()
	session := &ecourts.Session{
		Kind:      ecourts.QueryCauseList,
		ListDate:  listDate,
		StartedAt: started,
	}

	source, html, err := s.Locator.Locate(ctx, ecourts.MarkerCauseList)
	if err != nil {
		return nil, err
	}
	session.Source = source
	if html != "" {
		session.ContentHash = computeHash(html)
	}

	if source == ecourts.SourceNone {
		return s.terminal(ctx, session, &Result{Source: source, Outcome: ecourts.OutcomeNoResults}), nil
	}

	table, err := s.Extractor.Extract(html, ecourts.MarkerCauseList)
	if err != nil {
		if ecourts.ErrorCode(err) == ecourts.ENOTFOUND {
			return s.terminal(ctx, session, &Result{Source: source, Outcome: ecourts.OutcomeMarkerAbsent, HTML: html}), nil
		}
		s.terminal(ctx, session, &Result{Source: source, Outcome: ecourts.OutcomeFailed})
		return nil, err
	}

	normalized := normalize.CauseList(table)
	session.Records = len(normalized.Records)
	session.Dropped = normalized.Dropped

	bundle, err := s.Writer.WriteCauseList(ctx, normalized.Records)
	if err != nil {
		s.terminal(ctx, session, &Result{Source: source, Outcome: ecourts.OutcomeFailed})
		return nil, err
	}
	session.DataPath = bundle.DataPath
	session.SummaryPath = bundle.SummaryPath

	return s.terminal(ctx, session, &Result{
		Source:  source,
		Outcome: ecourts.OutcomeCaptured,
		Records: len(normalized.Records),
		Dropped: normalized.Dropped,
		Bundle:  bundle,
		HTML:    html,
	}), nil
}

// CaptureCaseStatus waits for a CNR query to render, then extracts and
// persists the case-status record. The CNR is echoed into the record exactly
// as queried.
func (s *Scraper) CaptureCaseStatus(ctx context.Context, cnr string) (*Result, error) {
	started := time.Now()
	session := &ecourts.Session{
		Kind:      ecourts.QueryCaseStatus,
		CNR:       cnr,
		StartedAt: started,
	}

	source, html, err := s.Locator.Locate(ctx, ecourts.MarkerCaseStatus)
	if err != nil {
		return nil, err
	}
	session.Source = source
	if html != "" {
		session.ContentHash = computeHash(html)
	}

	if source == ecourts.SourceNone {
		return s.terminal(ctx, session, &Result{Source: source, Outcome: ecourts.OutcomeNoResults}), nil
	}

	details, err := s.Extractor.ExtractAll(html, ecourts.MarkerCaseStatus)
	if err != nil {
		if ecourts.ErrorCode(err) == ecourts.ENOTFOUND {
			return s.terminal(ctx, session, &Result{Source: source, Outcome: ecourts.OutcomeMarkerAbsent, HTML: html}), nil
		}
		s.terminal(ctx, session, &Result{Source: source, Outcome: ecourts.OutcomeFailed})
		return nil, err
	}

	// History and orders are optional page regions; their absence is
	// routine, not a layout change.
	history := s.optionalTable(html, ecourts.MarkerHistory)
	orders := s.optionalTable(html, ecourts.MarkerOrders)

	record := normalize.CaseStatus(cnr, details, history, orders)
	session.Records = 1

	bundle, err := s.Writer.WriteCaseStatus(ctx, record)
	if err != nil {
		s.terminal(ctx, session, &Result{Source: source, Outcome: ecourts.OutcomeFailed})
		return nil, err
	}
	session.DataPath = bundle.DataPath
	session.SummaryPath = bundle.SummaryPath

	return s.terminal(ctx, session, &Result{
		Source:  source,
		Outcome: ecourts.OutcomeCaptured,
		Records: 1,
		Bundle:  bundle,
		Status:  record,
		HTML:    html,
	}), nil
}

func (s *Scraper) optionalTable(html, marker string) *ecourts.Table {
	table, err := s.Extractor.Extract(html, marker)
	if err != nil {
		return nil
	}
	return table
}

// terminal stamps the session with its outcome and records it.
func (s *Scraper) terminal(ctx context.Context, session *ecourts.Session, res *Result) *Result {
	session.Outcome = res.Outcome
	session.CompletedAt = time.Now()
	if s.Sessions != nil {
		res.LogErr = s.Sessions.CreateSession(ctx, session)
	}
	return res
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
