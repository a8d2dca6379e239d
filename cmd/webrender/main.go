package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/vidpipe/webrender/config"
	"github.com/vidpipe/webrender/host"
)

func main() {
	var (
		settingsFile = flag.String("settings", "", "Path to a JSON file with an array of source settings")
		storePath    = flag.String("store", "", "Path to a settings database (created if missing)")
		ticks        = flag.Int("ticks", 3, "Pipeline ticks to run in batch mode")
		version      = flag.String("engine-version", "3.7.0", "Stub engine version")
		shared       = flag.Bool("shared-textures", true, "Stub engine advertises shared textures")
		verbose      = flag.Bool("v", false, "Verbose logging")
		interactive  = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive && !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*settingsFile, *storePath, *version, *shared); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*settingsFile, *storePath, *version, *shared, *ticks, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildHost(settingsFile, storePath, version string, shared bool, logger *zap.Logger) (*host.Host, *stubEngine, error) {
	eng := newStubEngine(version, shared)

	opts := []host.Option{host.WithLogger(logger)}
	if storePath != "" {
		store, err := config.Open(storePath)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, host.WithStore(store))
	}

	h, err := host.New(eng, opts...)
	if err != nil {
		return nil, nil, err
	}

	if settingsFile != "" {
		if err := loadSources(h, settingsFile); err != nil {
			h.Close()
			return nil, nil, err
		}
	} else if storePath != "" {
		if _, err := h.RestoreSources(); err != nil {
			h.Close()
			return nil, nil, err
		}
	}
	return h, eng, nil
}

func loadSources(h *host.Host, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read settings file: %w", err)
	}
	docs := gjson.ParseBytes(data)
	if !docs.IsArray() {
		return fmt.Errorf("settings file must contain a JSON array of source settings")
	}
	for _, doc := range docs.Array() {
		settings, err := config.FromJSON([]byte(doc.Raw))
		if err != nil {
			return err
		}
		if _, err := h.CreateSource(&settings); err != nil {
			return err
		}
	}
	return nil
}

func run(settingsFile, storePath, version string, shared bool, ticks int, verbose bool) error {
	logger := zap.NewNop()
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
	}

	h, eng, err := buildHost(settingsFile, storePath, version, shared, logger)
	if err != nil {
		return err
	}
	defer h.Close()

	sources := h.Sources()
	fmt.Printf("Sources: %d (registry size %d)\n", len(sources), h.Registry().Len())

	for i := 0; i < ticks; i++ {
		h.TickAll()
		flushLoop(h)
		for _, src := range sources {
			src.SetShowing(true)
			src.Render()
		}
		flushLoop(h)
	}

	fmt.Println("\nEngine transcript:")
	for _, op := range eng.log.snapshot() {
		fmt.Println("  " + op)
	}
	return nil
}

// flushLoop waits for every task submitted so far to execute.
func flushLoop(h *host.Host) {
	done := make(chan struct{})
	if h.Loop().Submit(func(context.Context) { close(done) }) {
		select {
		case <-done:
		case <-h.Loop().Done():
		}
	}
}
