// Command tzgen regenerates the IANA-to-Windows timezone mapping snapshot
// from the upstream CLDR windowsZones document. It is an offline maintenance
// tool: the snapshot it writes is what gets embedded into the winzone
// package; a running client never fetches anything.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"ewscal/internal/config"
	appLog "ewscal/internal/log"
	"ewscal/winzone"
)

type flagConfig struct {
	configPath string
	url        string
	cacheDir   string
	out        string
	check      bool
	watch      bool
}

func main() {
	appLog.Info("tzgen starting", "version", "0.0.1-dev")

	flags := parseFlags()

	conf, err := config.Load(flags.configPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", flags.configPath)
		os.Exit(1)
	}

	// CLI flags override the config file where given.
	if flags.url != "" {
		conf.GeneratorURL = flags.url
	}
	if flags.cacheDir != "" {
		conf.CacheDir = flags.cacheDir
	}
	if flags.out != "" {
		conf.SnapshotPath = flags.out
	}

	appLog.Info("effective config",
		"url", conf.GeneratorURL,
		"cache_dir", conf.CacheDir,
		"snapshot_path", conf.SnapshotPath,
		"refresh", conf.RefreshCron,
		"check", flags.check,
		"watch", flags.watch,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		appLog.Info("signal received, shutting down", "signal", sig.String())
		cancel()
	}()

	if !flags.watch {
		os.Exit(runOnce(ctx, conf, flags.check))
	}

	c := cron.New()
	if _, err := c.AddFunc(conf.RefreshCron, func() {
		runOnce(ctx, conf, flags.check)
	}); err != nil {
		appLog.Error("invalid refresh schedule", err, "refresh", conf.RefreshCron)
		os.Exit(1)
	}
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	appLog.Info("tzgen exiting")
}

// runOnce performs one generation pass and returns a process exit code.
// Transport failures are tolerable in check mode: freshness could not be
// confirmed, but nothing is known to be wrong.
func runOnce(ctx context.Context, conf *config.Config, check bool) int {
	gen := winzone.NewGenerator(conf.GeneratorURL, conf.CacheDir)

	res, err := gen.Generate(ctx)
	if err != nil {
		var fe *winzone.FetchError
		if errors.As(err, &fe) && check {
			appLog.Error("upstream unreachable; freshness unconfirmed", err)
			return 0
		}
		appLog.Error("generation failed", err)
		return 1
	}

	for _, d := range res.Drift {
		appLog.Info("upstream drift", "detail", d)
	}
	appLog.Info("generated mapping",
		"keys", res.Table.Len(),
		"type_version", res.TypeVersion,
		"other_version", res.OtherVersion,
	)

	if hostKeys, err := winzone.HostZoneKeys(); err == nil {
		if missing := res.Table.MissingKeys(hostKeys); len(missing) > 0 {
			appLog.Error("host zones missing from generated mapping",
				errors.New("incomplete coverage"),
				"count", len(missing),
				"first", missing[0],
			)
			return 1
		}
	} else {
		appLog.Error("host zoneinfo enumeration failed; coverage unchecked", err)
	}

	if check {
		return 0
	}

	data, err := res.Table.MarshalSnapshot()
	if err != nil {
		appLog.Error("snapshot marshal failed", err)
		return 1
	}
	if err := os.WriteFile(conf.SnapshotPath, data, 0o644); err != nil {
		appLog.Error("snapshot write failed", err, "path", conf.SnapshotPath)
		return 1
	}
	appLog.Info("snapshot written", "path", conf.SnapshotPath, "bytes", len(data))
	return 0
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "./config.yaml", "Path to config file")
	flag.StringVar(&cfg.url, "url", "", "Upstream windowsZones.xml URL (overrides config if set)")
	flag.StringVar(&cfg.cacheDir, "cache-dir", "", "HTTP cache directory (overrides config if set)")
	flag.StringVar(&cfg.out, "out", "", "Snapshot output path (overrides config if set)")
	flag.BoolVar(&cfg.check, "check", false, "Check upstream for drift without writing the snapshot")
	flag.BoolVar(&cfg.watch, "watch", false, "Keep running and re-check on the configured cron schedule")

	flag.Parse()

	return cfg
}
