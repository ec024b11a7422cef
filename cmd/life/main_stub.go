//go:build !ebiten

package main

import (
	"fmt"
	"os"

	"life-gl/internal/app"
)

func main() {
	fmt.Fprintf(os.Stderr, "cannot start: %v\n", app.CheckEnvironment())
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/life` or use ./cmd/life-term.")
	os.Exit(2)
}
