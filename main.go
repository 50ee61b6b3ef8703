package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/xuning888/godeque/cmd"
	"github.com/xuning888/godeque/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := cmd.NewRootCmd().ExecuteContext(ctx); err != nil {
		logger.ErrorF("godeque: %v", err)
		stop()
		os.Exit(1)
	}
}
