package main

import (
	"context"
	"os"

	"github.com/jlinoff/pam/internal/buildinfo"
	"github.com/jlinoff/pam/internal/cli"
	"github.com/jlinoff/pam/internal/config"
	"github.com/jlinoff/pam/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.NewTextLogger(os.Stderr)

	app := cli.NewApp(cfg, log)
	app.Run(ctx)

}
