package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ayo6706/wallet-fx-cli/internal/app"
	"github.com/ayo6706/wallet-fx-cli/internal/cli"
	"github.com/ayo6706/wallet-fx-cli/internal/gateway"
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

	fmt.Println("\n=== PAYMENT CURRENCIES ===")
	payment, err := a.Client.PaymentCurrencies(ctx, a.Session)
	if err != nil {
		return err
	}
	cli.PrintCurrencyTable(os.Stdout, payment)

	for _, side := range []string{gateway.SideBuy, gateway.SideSell} {
		fmt.Printf("\n=== FX CURRENCIES (%s) ===\n", side)
		currencies, err := a.Client.FXCurrencies(ctx, a.Session, side)
		if err != nil {
			return err
		}
		cli.PrintCurrencyTable(os.Stdout, currencies)
	}
	return nil
}
