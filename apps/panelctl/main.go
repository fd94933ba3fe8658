package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/minhtan/hostpanel/apps/panelctl/cmd"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panelctl crashed: %v\n", r)
			if os.Getenv("PANEL_DEBUG") != "" {
				debug.PrintStack()
			}
			os.Exit(2)
		}
	}()

	cmd.Execute()
}
