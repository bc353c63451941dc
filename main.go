package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"slate/expr"
	"slate/hal"
	"slate/internal/buildinfo"
	"slate/ui"
)

func main() {
	var (
		eval    string
		scale   int
		version bool
	)
	flag.StringVar(&eval, "e", "", "Evaluate an expression and exit.")
	flag.IntVar(&scale, "scale", 2, "Window scale factor.")
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.Long())
		return
	}

	if eval != "" {
		v, err := expr.Evaluate(eval, nil)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(expr.FormatNumber(v))
		return
	}

	if err := hal.RunWindow(ui.New, scale); err != nil {
		if errors.Is(err, ui.ErrQuit) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
