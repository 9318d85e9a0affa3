package main

import (
	"context"
	"os"

	"llm2sh/internal/infrastructure/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background()))
}
