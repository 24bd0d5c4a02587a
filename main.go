package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"go.uber.org/zap"

	"orbitview/config"
	"orbitview/logging"
	"orbitview/viewer"
)

func init() {
	// glfw and gl calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	var (
		configPath   = flag.String("config", "", "TOML config file, defaults are used when empty.")
		bookmarkPath = flag.String("bookmark", "", "Camera pose bookmark file, overrides camera.bookmark.")
		printConfig  = flag.Bool("print-config", false, "Print the effective config and exit.")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <mesh.obj>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *bookmarkPath != "" {
		cfg.Camera.Bookmark = *bookmarkPath
	}
	if *printConfig {
		data, err := cfg.Encode()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger, flush, err := logging.Setup(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx = logging.Context(ctx, logger)
	err = viewer.Run(ctx, cfg, flag.Arg(0))
	stop()
	if err != nil {
		logger.Error("Viewer failed", zap.String("mesh", flag.Arg(0)), zap.Error(err))
		flush()
		os.Exit(1)
	}
	flush()
}
