package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/folio/internal/cli"
)

func main() {
	cli.Execute()
}
