package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/steward-bot/steward/cmd"
	"github.com/steward-bot/steward/common"
)

func main() {
	if err := cmd.Run(); err != nil {
		common.Log.Fatal(err)
	}
}
