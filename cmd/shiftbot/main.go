package main

import (
	"fmt"
	"log"
	"os"

	"github.com/m3rciful/shiftbot/bot"
	"github.com/m3rciful/shiftbot/core/bootstrap"
	"github.com/m3rciful/shiftbot/core/buildinfo"
	corecmd "github.com/m3rciful/shiftbot/core/cmd"
)

func main() {
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-version" {
			fmt.Println(buildinfo.String())
			return
		}
	}

	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "config.yml",
		LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
			return bot.LoadConfig(path)
		},
		Bootstrap: func(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
			cfg, ok := carrier.(*bot.Config)
			if !ok {
				return nil, fmt.Errorf("unexpected config type %T", carrier)
			}
			res, err := bootstrap.Run(bootstrap.Options{
				Config:   cfg.CoreConfig(),
				Database: cfg.Database,
			})
			if err != nil {
				return nil, err
			}
			return bot.New(cfg, res.Store), nil
		},
	})
	if err != nil {
		log.Fatalf("shiftbot: %v", err)
	}
}
