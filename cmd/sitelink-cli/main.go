package main

import "github.com/Tanay2920003/sitelink/cmd/sitelink-cli/cmd"

func main() {
	cmd.Execute()
}
