package main

import "github.com/cloudsleuth/scout-mcp/pkg/cli"

func main() {
	cli.Execute()
}
