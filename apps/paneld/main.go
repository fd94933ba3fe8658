package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/minhtan/hostpanel/apps/paneld/cmd"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "paneld crashed: %v\n", r)
			if os.Getenv("PANEL_DEBUG") != "" {
				debug.PrintStack()
			}
			os.Exit(2)
		}
	}()

	cmd.Execute()
}
