package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/petpad/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override petpad config path (optional)")
	store := flag.String("store", "", "key-value backend: memory, file or sqlite (optional)")
	dataPath := flag.String("data", "", "path of the file or sqlite store (optional)")
	locale := flag.String("locale", "", "BCP 47 locale for the clock, e.g. en-GB (optional)")
	logPath := flag.String("log", "", "write logs to this file (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		Store:      *store,
		DataPath:   *dataPath,
		Locale:     *locale,
		LogPath:    *logPath,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "petpad: %v\n", err)
		return 1
	}
	return 0
}
