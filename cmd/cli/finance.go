package main

import (
	"context"
	"fmt"

	"github.com/mauv0809/fighter-franchise/internal/finance"
	"github.com/spf13/cobra"
)

func newFinanceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Inspect the ledger and buy, sell or borrow",
	}
	cmd.AddCommand(
		showFinanceCmd(a),
		initFinanceCmd(a),
		purchaseCmd(a),
		sellCmd(a),
		loanCmd(a),
	)
	return cmd
}

func showFinanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the finance ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := failure(a.ledger.LoadAll(cmd.Context())); err != nil {
				return err
			}
			l, ok := a.ledger.Ledger()
			if !ok {
				fmt.Fprintln(a.out, "No finance ledger found. Run 'finance init' to create one.")
				return nil
			}
			return a.renderLedger(l)
		},
	}
}

func initFinanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty ledger unless one exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := a.ledger.EnsureLedger(cmd.Context())
			if err := failure(r); err != nil {
				return err
			}
			l, _ := r.Data()
			return a.renderLedger(l)
		},
	}
}

func purchaseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "purchase <athlete-id>",
		Short: "Buy an athlete with the money left",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.sync(cmd.Context()); err != nil {
				return err
			}
			return a.renderReceipt(a.coord.Purchase(cmd.Context(), id))
		},
	}
}

func sellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sell <athlete-id>",
		Short: "Sell an athlete the franchise owns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.sync(cmd.Context()); err != nil {
				return err
			}
			return a.renderReceipt(a.coord.Sell(cmd.Context(), id))
		},
	}
}

func loanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "loan <amount>",
		Short: "Borrow money, adding it to both the balance and the debt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := failure(finance.ParseLoanAmount(args[0])); err != nil {
				return err
			}
			if err := failure(a.ledger.LoadAll(cmd.Context())); err != nil {
				return err
			}
			return a.renderReceipt(a.coord.RequestLoan(cmd.Context(), args[0]))
		},
	}
}

// sync loads the athletes and the ledger a transaction reads from.
func (a *app) sync(ctx context.Context) error {
	if err := failure(a.athletes.LoadAll(ctx)); err != nil {
		return err
	}
	return failure(a.ledger.LoadAll(ctx))
}
