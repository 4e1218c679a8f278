package main

import (
	"log"

	"github.com/jacsander/google-ads-mcp-server/cmd/adsmcp"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	adsmcp.Execute()
}
