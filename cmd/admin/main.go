package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/presskit/internal/admin"
	"github.com/dmitrijs2005/presskit/internal/server"
	"github.com/dmitrijs2005/presskit/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg, os.Stderr)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	err = admin.New(app.Services(), os.Stdin, os.Stdout).Run(ctx, os.Args[1:])
	app.Close()
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

}
