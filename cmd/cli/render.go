package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mauv0809/fighter-franchise/internal/entity"
	"github.com/mauv0809/fighter-franchise/internal/events"
	"github.com/mauv0809/fighter-franchise/internal/finance"
	"github.com/mauv0809/fighter-franchise/internal/result"
)

// failure turns a failed or rejected result into the command's error.
func failure[T any](r result.Result[T]) error {
	switch r.Kind() {
	case result.KindErr:
		return errors.New(r.Message())
	case result.KindRejected:
		return fmt.Errorf("rejected: %s", r.Message())
	}
	return nil
}

// columns describes how one record type is printed as a table.
type columns[T any] struct {
	noun    string
	one     string
	headers []string
	row     func(T) []string
}

// renderState prints what a list view of st shows: the loading or error
// state first, an empty notice when there is nothing to show, the records
// otherwise.
func renderState[T any](a *app, st entity.State[T], cols columns[T]) error {
	switch {
	case st.IsLoading:
		fmt.Fprintf(a.out, "Loading %s...\n", cols.noun)
		return nil
	case st.ErrorMessage != "":
		return errors.New(st.ErrorMessage)
	}

	visible := st.Visible()
	if a.json {
		if visible == nil {
			visible = []T{}
		}
		return a.printJSON(visible)
	}
	if len(visible) == 0 {
		if st.SearchActive {
			fmt.Fprintf(a.out, "No %s match the search.\n", cols.noun)
		} else {
			fmt.Fprintf(a.out, "No %s found.\n", cols.noun)
		}
		return nil
	}
	rows := make([][]string, 0, len(visible))
	for _, item := range visible {
		rows = append(rows, cols.row(item))
	}
	a.printTable(cols.headers, rows)
	return nil
}

// renderOne prints a single record looked up by id.
func renderOne[T any](a *app, r result.Result[*T], id int, cols columns[T]) error {
	if err := failure(r); err != nil {
		return err
	}
	record, _ := r.Data()
	if record == nil {
		fmt.Fprintf(a.out, "No %s with id %d.\n", cols.one, id)
		return nil
	}
	if a.json {
		return a.printJSON(record)
	}
	a.printTable(cols.headers, [][]string{cols.row(*record)})
	return nil
}

// done reports a completed mutation and prints any note attached to it.
func (a *app) done(r result.Result[result.None], format string, args ...any) error {
	if err := failure(r); err != nil {
		return err
	}
	if a.json {
		return nil
	}
	fmt.Fprintf(a.out, format+"\n", args...)
	if r.Message() != "" {
		fmt.Fprintf(a.out, "Note: %s\n", r.Message())
	}
	return nil
}

func (a *app) renderLedger(l finance.Ledger) error {
	if a.json {
		return a.printJSON(l)
	}
	a.printTable([]string{"Money left", "Money spent", "Debt"},
		[][]string{{l.MoneyLeft.String(), l.MoneySpent.String(), l.Debt.String()}})
	return nil
}

func (a *app) renderReceipt(r result.Result[finance.Receipt]) error {
	if err := failure(r); err != nil {
		return err
	}
	receipt, _ := r.Data()
	if a.json {
		return a.printJSON(receipt)
	}
	fmt.Fprintln(a.out, describe(receipt))
	a.printTable([]string{"", "Money left", "Money spent", "Debt"}, [][]string{
		{"Before", receipt.Before.MoneyLeft.String(), receipt.Before.MoneySpent.String(), receipt.Before.Debt.String()},
		{"After", receipt.After.MoneyLeft.String(), receipt.After.MoneySpent.String(), receipt.After.Debt.String()},
	})
	if r.Message() != "" {
		fmt.Fprintf(a.out, "Note: %s\n", r.Message())
	}
	return nil
}

func describe(r finance.Receipt) string {
	switch r.Kind {
	case events.KindPurchase:
		return fmt.Sprintf("Purchased %s for %s.", r.Athlete.Name, r.Amount)
	case events.KindSale:
		return fmt.Sprintf("Sold %s for %s.", r.Athlete.Name, r.Amount)
	default:
		return fmt.Sprintf("Borrowed %s.", r.Amount)
	}
}

func (a *app) printTable(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(a.out, t.Render())
}

func (a *app) printJSON(v any) error {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Fprintln(a.out, string(body))
	return nil
}
