// Copyright (c) 2026 Neomantra Corp

// xbf-go-tui is a terminal inspector for a single XBF-encoded file.

package main

import (
	"fmt"
	"os"

	"github.com/nimblemarkets/xbf-go/internal/xbftui"
	"github.com/spf13/pflag"
)

func main() {
	var showHelp bool
	var maxValues int

	pflag.IntVarP(&maxValues, "max-values", "n", 1000, "max values to load (<=0 is unlimited)")
	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help")
	pflag.Parse()

	if showHelp || pflag.NArg() != 1 {
		fmt.Fprintf(os.Stdout, "usage: %s [opts] <file.xbf>\n\n", os.Args[0])
		pflag.PrintDefaults()
		os.Exit(0)
	}

	config := xbftui.Config{
		Path:      pflag.Arg(0),
		MaxValues: maxValues,
	}
	if err := xbftui.Run(config); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}
