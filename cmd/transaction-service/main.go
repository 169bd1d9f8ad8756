package main

import (
	"fmt"
	"os"

	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/config"
	"github.com/Ahmad-Moslmani/areeba-cms-microservices/internal/transaction/app"
)

func main() {
	cfg, err := config.NewTransactionConfig()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}
	myApp := &app.App{}
	myApp.Initialize(cfg)
	myApp.Run()
}
