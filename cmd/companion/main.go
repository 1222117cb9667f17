package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	companioncmd "github.com/solo-blaster/companion/internal/cmd/companion"
	apperrors "github.com/solo-blaster/companion/internal/errors"
	"github.com/solo-blaster/companion/internal/platform/config"
)

func main() {
	cfg, args, err := companioncmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := companioncmd.Run(ctx, cfg, args, os.Stdin, os.Stdout); err != nil {
		msg := err.Error()
		if apperrors.GetCode(err) != apperrors.CodeUnknown {
			msg = apperrors.UserMessage(err, cfg.Locale)
		}
		config.Exitf("%s", msg)
	}
}
