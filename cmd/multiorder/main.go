// Command multiorder prints the six traversals of an ordered multi-collection
// built from its arguments.
//
//	multiorder 7 1 15 2 6
//	multiorder --type string --order side-cross Banana Apple Cherry
//	multiorder --remove 20 --remove 50 10 20 30 20
package main

import (
	"os"

	"github.com/pterm/pterm"
)

func main() {
	initDisplay()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// initDisplay styles the pterm prefixes that frame demo lines and errors.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// ptermPrinter sends demo output to the pterm info and error printers.
type ptermPrinter struct{}

func (ptermPrinter) Info(line string)  { pterm.Info.Println(line) }
func (ptermPrinter) Error(line string) { pterm.Error.Println(line) }
