// Package main provides rulesim, a command-line front end to the rules
// engine. It wires together configuration, logging, dice, content and the
// scripting sandbox, then dispatches one subcommand.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Dimillian/daggerfall-unity/internal/config"
	"github.com/Dimillian/daggerfall-unity/internal/observability"
)

const usageText = `usage: rulesim [-config path] <command> [flags]

commands:
  attack    resolve a single attack between two spawned entities
  simulate  repeat one attack many times and report the averages
  fight     fight two entities to the finish (narrated when -trials 1)
  trip      quote a fast-travel fare
  holiday   show the date and holiday for a game time
  level     compute the player level from attribute sums
  eval      evaluate a Lua expression against the rules module
`

func main() {
	configPath := flag.String("config", "", "path to configuration file (defaults and RULES_ env when empty)")
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usageText) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{cfg: cfg, logger: logger, out: os.Stdout}
	if err := a.run(ctx, flag.Arg(0), flag.Args()[1:]); err != nil {
		logger.Debug("command failed", zap.String("command", flag.Arg(0)), zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		_ = logger.Sync()
		os.Exit(1)
	}
}
