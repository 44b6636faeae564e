// Command nfossh serves a directory of NFO/ANSI files over SSH as a
// read-only viewer door: connect, pick a file by number, see it
// rendered, disconnect.
package main

import (
	"flag"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/stlalpha/nfoview/internal/doorssh"
	"github.com/stlalpha/nfoview/internal/nfo/internal/nlog"
	"github.com/stlalpha/nfoview/internal/nfoconfig"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config file (see internal/nfoconfig)")
	flag.Parse()

	cfg := nfoconfig.Default()
	if *configPath != "" {
		loaded, err := nfoconfig.Load(*configPath)
		if err != nil {
			log.Fatalf("nfossh: load config: %v", err)
		}
		cfg = loaded
	}
	nlog.DebugEnabled = cfg.SSH.DebugLogging

	cat, err := doorssh.NewCatalog(cfg.SSH.ServedDir)
	if err != nil {
		log.Fatalf("nfossh: open catalog %s: %v", cfg.SSH.ServedDir, err)
	}
	defer cat.Close()

	c := cron.New()
	if _, err := c.AddFunc(cfg.SSH.RescanCron, func() {
		if err := cat.Rescan(); err != nil {
			nlog.Debug("periodic rescan failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("nfossh: bad rescan schedule %q: %v", cfg.SSH.RescanCron, err)
	}
	c.Start()
	defer c.Stop()

	srv, err := doorssh.NewServer(doorssh.Config{
		HostKeyPath:         cfg.SSH.HostKeyPath,
		Addr:                cfg.SSH.ListenAddr,
		LegacySSHAlgorithms: true,
		SessionHandler:      doorssh.Handler(cat),
		Version:             "nfoview",
	})
	if err != nil {
		log.Fatalf("nfossh: %v", err)
	}

	log.Printf("nfossh: serving %s on %s", cfg.SSH.ServedDir, cfg.SSH.ListenAddr)
	log.Fatal(srv.ListenAndServe())
}
