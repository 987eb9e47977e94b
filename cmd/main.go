package main

import (
	"context"
	"log"

	_ "time/tzdata"

	"github.com/eventfindr/notifier/cmd/app"
	"github.com/eventfindr/notifier/internal/adapters/config"
)

func main() {
	cfg := config.Get()

	a, err := app.New(cfg)
	if err != nil {
		log.Panic(err)
	}

	if err := a.Start(context.Background()); err != nil {
		log.Panic(err)
	}
}
