package main

import (
	"context"
	"log"

	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/client/cli"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
