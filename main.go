package main

import (
	"os"

	"github.com/martinus/hexler/cmd"
	"github.com/martinus/hexler/pkg/configuration"
	"github.com/martinus/hexler/pkg/utils"
)

func main() {
	cfg, err := configuration.Load()
	if err != nil {
		// Diagnostics only; the pattern does not depend on configuration.
		os.Stderr.WriteString("Warning: using default configuration: " + err.Error() + "\n")
		cfg = configuration.NewConfig()
		cfg.Log.File = ""
	}

	logger := utils.NopLogger()
	if cfg.Log.File != "" {
		logger = utils.GetLogger(&cfg.Log)
	}
	defer func() {
		if err := logger.Close(); err != nil {
			os.Stderr.WriteString("Error closing logger: " + err.Error() + "\n")
		}
	}()
	cmd.SetLogger(logger)

	if err := cmd.Execute(); err != nil {
		logger.LogError(err)
		_ = logger.Close()
		os.Exit(1)
	}
}
