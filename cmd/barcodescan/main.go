package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"kasir/pkg/barcode"
	"kasir/pkg/frames"
)

// barcodescan watches a spool directory and prints the first barcode that
// shows up in a dropped frame.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: barcodescan <spool-dir> [timeout]")
		os.Exit(2)
	}
	timeout := 30 * time.Second
	if len(os.Args) > 2 {
		if d, err := time.ParseDuration(os.Args[2]); err == nil {
			timeout = d
		}
	}
	src, err := frames.NewSpoolSource(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "watch: %v\n", err)
		os.Exit(1)
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	code, err := barcode.DecodeFromStream(ctx, src.Frames())
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(code)
}
