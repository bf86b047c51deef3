package main

import (
	"os"

	"github.com/turtacn/CrawlValue-Intelligence/internal/interfaces/cli"
)

func main() {
	os.Exit(cli.Execute())
}

//Personal.AI order the ending
