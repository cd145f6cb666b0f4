// Command vecrank ranks the entries of a feature file by similarity to a
// target entry.
//
//	vecrank pic.1016.jpg features.csv 3 ssd
//	vecrank --store s3://images/features pic.1016.jpg rgb.csv.zst 5 histogram-intersection
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var (
	// version is set at build time
	version = "dev"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
