package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ayo6706/wallet-fx-cli/internal/app"
	"github.com/ayo6706/wallet-fx-cli/internal/cli"
	"github.com/ayo6706/wallet-fx-cli/internal/domain"
	"github.com/ayo6706/wallet-fx-cli/internal/workflow"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	a, err := app.Bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	prompter := cli.NewPrompter(os.Stdin, os.Stdout)
	gate := workflow.NewFXGate(a.Client, a.Session)

	buy, sell, err := gate.Lists(ctx)
	if err != nil {
		return err
	}
	printSides(buy, sell)

	fmt.Println("\n=== FX DEAL ===")
	buyCode, err := prompter.ReadLine("Buy currency code: ")
	if err != nil {
		return err
	}
	sellCode, err := prompter.ReadLine("Sell currency code: ")
	if err != nil {
		return err
	}
	amount, err := prompter.ReadLine("Amount: ")
	if err != nil {
		return err
	}
	amountCode, err := prompter.ReadLine(fmt.Sprintf("Amount currency (%s/%s): ",
		domain.NormalizeCurrencyCode(buyCode), domain.NormalizeCurrencyCode(sellCode)))
	if err != nil {
		return err
	}

	fmt.Println("\nRequesting quote...")
	wf := workflow.NewDealWorkflow(gate, a.Client, a.Session, prompter, os.Stdout, a.Log)
	outcome, err := wf.Run(ctx, workflow.DealInput{
		BuyCurrency:    buyCode,
		SellCurrency:   sellCode,
		Amount:         amount,
		AmountCurrency: amountCode,
	})
	if err != nil {
		return err
	}

	if outcome.State == workflow.StateCommitted {
		fmt.Println("\n=== COMPLETE ===")
	}
	return nil
}

func printSides(buy, sell []domain.CurrencyInfo) {
	fmt.Println("\n=== AVAILABLE FX CURRENCIES ===")
	fmt.Println("\n  Buy currencies:")
	for _, c := range buy {
		fmt.Printf("    %-8s %s\n", c.CurrencyCode, c.CurrencyName)
	}
	fmt.Println("\n  Sell currencies:")
	for _, c := range sell {
		fmt.Printf("    %-8s %s\n", c.CurrencyCode, c.CurrencyName)
	}
}
