package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rjoshi/ecourts"
)

// Run executes the sessions command.
func (c *SessionsCmd) Run(deps *Dependencies) error {
	filter := ecourts.SessionFilter{Limit: c.Limit}
	if c.Kind != "" {
		kind := ecourts.QueryKind(c.Kind)
		if !kind.Valid() {
			err := ecourts.Errorf(ecourts.EINVALID, "unknown query kind %q (use causelist or status)", c.Kind)
			fmt.Fprintf(deps.Stderr, "error: %s\n", ecourts.ErrorMessage(err))
			return err
		}
		filter.Kind = &kind
	}

	sessions, err := deps.Sessions.FindSessions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ecourts.ErrorMessage(err))
		return err
	}

	if len(sessions) == 0 {
		fmt.Fprintln(deps.Stdout, "No sessions recorded yet. Run 'ecourts causelist' or 'ecourts search' to capture one.")
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Started", "Kind", "Query", "Source", "Outcome", "Records", "Data"})
	for _, s := range sessions {
		// The query column shows what was asked: the CNR for status
		// searches, the date label for cause lists.
		query := s.CNR
		if s.Kind == ecourts.QueryCauseList {
			query = s.ListDate
		}
		t.AppendRow(table.Row{
			s.StartedAt.Local().Format("2006-01-02 15:04"),
			string(s.Kind),
			query,
			string(s.Source),
			s.Outcome,
			s.Records,
			s.DataPath,
		})
	}
	fmt.Fprintln(deps.Stdout, t.Render())
	return nil
}
