package main

import "github.com/chatwire/chatwire/cmd/chatwire-cli/cmd"

func main() {
	cmd.Execute()
}
