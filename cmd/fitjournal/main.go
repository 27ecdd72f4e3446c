package main

import "github.com/comitanigiacomo/fitjournal-engine/internal/cli"

func main() {
	cli.Execute()
}
