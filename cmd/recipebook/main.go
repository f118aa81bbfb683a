// Command recipebook is the terminal client of the recipe book.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/recipebook/recipe-book/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
