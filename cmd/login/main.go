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
	a, err := app.Bootstrap(context.Background())
	if err != nil {
		return err
	}
	defer a.Close()

	cli.PrintUserSettings(os.Stdout, a.Session)
	return nil
}
