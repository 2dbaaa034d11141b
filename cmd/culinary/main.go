// Command culinary generates, parses and serves restaurant menus.
//
//	culinary generate --cuisine Italian --diet Vegan --format md
//	culinary parse menu.txt --mode blocks
//	culinary format menu.json --style display
//	culinary serve --config culinary.toml --watch
//	culinary schema
package main

import (
	"fmt"
	"os"

	_ "github.com/randalmurphal/culinary/gemini"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
