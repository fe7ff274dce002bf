package main

import (
	"context"
	"log"

	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/client/cli"
	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
