package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/maybourshan/ci-cd-stocks-service/internal/config"
	"github.com/maybourshan/ci-cd-stocks-service/internal/logger"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(&upCmd{}, "")
	commander.Register(&downCmd{}, "")
	commander.Register(&versionCmd{}, "")
	flag.Parse()

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Migration error: %v", err)
	}
	logger.Init(cfg.Env, cfg.LogLevel, "migrate")
	defer logger.Sync()

	os.Exit(int(commander.Execute(context.Background(), cfg)))
}
