package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/JEONJIHO817/secded-hamming-31-26/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
