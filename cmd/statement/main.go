package main

import (
	"context"
	"fmt"
	"os"
	"time"

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

	fmt.Println("\n=== FETCHING AVAILABLE ACCOUNTS ===")
	balances, err := a.Client.Balances(ctx, a.Session)
	if err != nil {
		return err
	}

	prompter := cli.NewPrompter(os.Stdin, os.Stdout)
	account, err := prompter.SelectAccount(balances)
	if err != nil {
		return err
	}
	start, end, err := prompter.SelectDateRange(time.Now())
	if err != nil {
		return err
	}

	fmt.Println("\n=== FETCHING ACCOUNT STATEMENT ===")
	fmt.Printf("  Currency: %s\n", account.CurrencyCode)
	fmt.Printf("  Period: %s to %s\n", start.Format("2006-01-02"), end.Format("2006-01-02"))

	statement, err := a.Client.Statement(ctx, a.Session, account.AccountID, start, end)
	if err != nil {
		return err
	}

	cli.PrintStatement(os.Stdout, statement, start, end)
	fmt.Println("\nStatement retrieved successfully.")
	return nil
}
