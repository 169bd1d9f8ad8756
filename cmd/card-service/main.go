package main

import (
	"fmt"
	"os"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/card/app"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/config"
)

func main() {
	cfg, err := config.NewCardConfig()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}
	myApp := &app.App{}
	myApp.Initialize(cfg)
	myApp.Run()
}
