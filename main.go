package main

import (
	"log"
	"os"

	"github.com/ascentware/invoicing/controller"
	"github.com/ascentware/invoicing/model"

	"github.com/pelletier/go-toml/v2"
)

func run() error {
	path := os.Getenv("INVOICING_CONFIG")
	if path == "" {
		path = "config.toml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	cfg := &model.Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return err
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	store, err := model.InitDatabase(cfg)
	if err != nil {
		return err
	}
	if err := store.SeedDefaultTerms(); err != nil {
		return err
	}
	return controller.NewController(store)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
