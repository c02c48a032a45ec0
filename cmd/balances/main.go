package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ayo6706/wallet-fx-cli/internal/app"
	"github.com/ayo6706/wallet-fx-cli/internal/cli"
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

	fmt.Println("\nRetrieving balances...")
	balances, err := a.Client.Balances(ctx, a.Session)
	if err != nil {
		return err
	}

	cli.PrintBalances(os.Stdout, balances)
	return nil
}
