package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/conductor/internal/cache"
	"github.com/harrison/conductor/internal/config"
	"github.com/harrison/conductor/internal/hostapi"
	"github.com/harrison/conductor/internal/layout"
	"github.com/harrison/conductor/internal/logger"
	"github.com/harrison/conductor/internal/pipeline"
)

// session bundles the resources every subcommand needs: the loaded config,
// a logger satisfying hostapi.Logger, the shared pipeline, and (if
// configured) the decision cache. Callers must call Close when done.
type session struct {
	Config   *config.Config
	Logger   hostapi.Logger
	Pipeline *pipeline.Pipeline
	Cache    *cache.Store
	fileLog  *logger.FileLogger
}

func (s *session) Close() {
	if s.fileLog != nil {
		s.fileLog.Close()
	}
	if s.Cache != nil {
		s.Cache.Close()
	}
}

func newSession(cmd *cobra.Command) (*session, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".v2077mod/config.yaml"
	}
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	minLevel := hostapi.Level(cfg.LogLevel)
	switch minLevel {
	case hostapi.LevelDebug, hostapi.LevelInfo, hostapi.LevelWarn, hostapi.LevelError:
	default:
		minLevel = hostapi.LevelInfo
	}
	if verbose {
		minLevel = hostapi.LevelDebug
	}

	console := logger.NewConsoleLogger(os.Stderr, minLevel)

	var fileLog *logger.FileLogger
	var combined hostapi.Logger = console
	if cfg.LogDir != "" {
		fileLog, err = logger.NewFileLogger(cfg.LogDir, minLevel)
		if err == nil {
			combined = logger.NewMultiLogger(console, fileLog)
		}
	}

	for base, dest := range cfg.KnownPaths.ExtraJSONPaths {
		if _, exists := layout.KnownJSONPaths[base]; !exists {
			layout.KnownJSONPaths[base] = dest
		}
	}
	for _, dll := range cfg.KnownPaths.ExtraNonOverridableDLLs {
		layout.NonOverridableDLLs[strings.ToLower(dll)] = true
	}

	var cacheStore *cache.Store
	if cfg.CacheDir != "" {
		if store, err := cache.Open(cfg.CacheDir + "/decisions.db"); err == nil {
			cacheStore = store
		}
	}

	return &session{
		Config:   cfg,
		Logger:   combined,
		Pipeline: pipeline.New(),
		Cache:    cacheStore,
		fileLog:  fileLog,
	}, nil
}
