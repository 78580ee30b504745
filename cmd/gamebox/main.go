package main

import (
	"context"
	"log"
	"os"

	"github.com/dkarklins/gamebox/internal/buildinfo"
	"github.com/dkarklins/gamebox/internal/cli"
	"github.com/dkarklins/gamebox/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
