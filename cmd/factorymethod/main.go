package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nulzo/factory-method/cmd"
	"github.com/nulzo/factory-method/internal/core/domain"
	"github.com/nulzo/factory-method/internal/platform/logger"
	"go.uber.org/zap"
)

func main() {
	err := cmd.NewRootCommand().ExecuteContext(context.Background())
	if err == nil {
		return
	}

	log, logErr := logger.New(logger.DefaultConfig())
	if logErr != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	} else {
		log.Error("factorymethod failed", zap.Error(err))
		_ = log.Sync()
	}
	os.Exit(domain.ExitCode(err))
}
