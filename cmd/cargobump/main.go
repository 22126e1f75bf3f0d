package main

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/cargobump/internal/app"
	"github.com/indaco/cargobump/internal/cli"
	"github.com/indaco/cargobump/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, printer.Error("Error: "+err.Error()))
		os.Exit(1)
	}
}

// runCLI builds the root command and runs it with args.
func runCLI(args []string) error {
	env := app.New(".")
	return cli.New(env).Run(context.Background(), args)
}
