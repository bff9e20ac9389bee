package main

import (
	"context"
	"log"

	"github.com/stadtwache/patrol/internal/server"
	"github.com/stadtwache/patrol/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.MustLoad()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
