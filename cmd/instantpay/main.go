package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ayo6706/wallet-fx-cli/internal/app"
	"github.com/ayo6706/wallet-fx-cli/internal/cli"
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

	fmt.Println("\n=== INSTANT PAYMENT ===")
	receiver, err := prompter.ReadLine("Receiver PayID: ")
	if err != nil {
		return err
	}
	amount, err := prompter.ReadLine("Amount: ")
	if err != nil {
		return err
	}
	currency, err := prompter.ReadLine(fmt.Sprintf("Currency [%s]: ", a.Config.DefaultCurrency))
	if err != nil {
		return err
	}

	fmt.Println("\nCreating payment...")
	gate := workflow.NewPaymentGate(a.Client, a.Session)
	wf := workflow.NewPaymentWorkflow(gate, a.Client, a.Session, prompter, os.Stdout, a.Log, a.Config.DefaultCurrency)
	outcome, err := wf.Run(ctx, workflow.PaymentInput{
		FromCustomer: a.Config.Username,
		ToCustomer:   receiver,
		Amount:       amount,
		Currency:     currency,
	})
	if err != nil {
		return err
	}

	if outcome.State == workflow.StateCommitted {
		fmt.Println("\n=== COMPLETE ===")
	}
	return nil
}
