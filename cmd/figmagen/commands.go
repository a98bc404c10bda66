package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/itsklimov/figma-rn-sub004/pkg/config"
	mcpserver "github.com/itsklimov/figma-rn-sub004/pkg/mcp"
	"github.com/itsklimov/figma-rn-sub004/pkg/mcplog"
	"github.com/itsklimov/figma-rn-sub004/pkg/parser"
	"github.com/itsklimov/figma-rn-sub004/pkg/util"
	"github.com/itsklimov/figma-rn-sub004/pkg/validator"
	"github.com/itsklimov/figma-rn-sub004/pkg/watcher"
)

// runValidate checks one or more generated files on disk. It needs no
// config or network access, so it sets up its own parser directly.
func runValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("validate: no files given")
	}

	log := util.NewLogger(util.LoggerConfig{
		Level:  util.LogLevel(*logLevel),
		Format: util.FormatText,
		Output: os.Stderr,
	})
	pm := parser.NewManager(log)
	defer pm.Close()
	v := validator.New(pm)

	failed := false
	for _, path := range fs.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		res, err := v.ValidateSource(string(data))
		if err != nil {
			return err
		}
		if res.Valid {
			fmt.Printf("%s: ok\n", path)
			continue
		}
		failed = true
		for _, violation := range res.Violations {
			fmt.Printf("%s:%d:%d: %s: %s\n",
				path, violation.Line, violation.Column, violation.Rule, violation.Message)
		}
	}
	if failed {
		return fmt.Errorf("validation failed")
	}
	return nil
}

// runTokens prints the discovered project tokens as JSON.
func runTokens(args []string) error {
	fs := flag.NewFlagSet("tokens", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file (default .figmagen.yaml)")
	logLevel := fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := setup(*configPath, *logLevel)
	if err != nil {
		return err
	}
	defer a.Close()

	payload, err := json.MarshalIndent(map[string]any{
		"colors":     a.project.Colors.Entries(),
		"spacing":    a.project.Spacing,
		"radii":      a.project.Radii,
		"typography": a.project.Typography,
		"shadows":    a.project.Shadows,
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(payload))
	return nil
}

// runWatch regenerates the configured nodes whenever a theme source or
// the config file changes.
func runWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file (default .figmagen.yaml)")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := setup(*configPath, *logLevel)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireToken(); err != nil {
		return err
	}

	regenerate := func(reason string) {
		a.log.Info("regenerating", "trigger", reason)
		if err := a.reloadTokens(); err != nil {
			a.log.Error("token reload failed", "error", err)
			return
		}
		for _, id := range a.cfg.NodeIDs {
			ctx, cancel := generationContext()
			if err := a.generateOne(ctx, id, false, false, false); err != nil {
				a.log.Error("generation failed", "node", id, "error", err)
			}
			cancel()
		}
	}

	// Initial run before watching.
	regenerate("startup")

	w, err := watcher.New(regenerate, watcher.DefaultOptions(), a.log)
	if err != nil {
		return err
	}
	defer w.Stop()

	watchPaths := []string{a.cfg.ProjectRoot}
	if *configPath != "" {
		watchPaths = append(watchPaths, *configPath)
	} else {
		watchPaths = append(watchPaths, config.DefaultFileName)
	}
	if err := w.Start(watchPaths); err != nil {
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}

// runServe starts the MCP server on stdio.
func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file (default .figmagen.yaml)")
	logFile := fs.String("log-file", "", "JSONL tool-call log path (disabled when empty)")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := setup(*configPath, *logLevel)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.requireToken(); err != nil {
		return err
	}

	toolLog, err := mcplog.NewLogger(resolveLogPath(*logFile, a.cfg.ProjectRoot))
	if err != nil {
		return err
	}
	if toolLog != nil {
		defer toolLog.Close()
	}

	srv := mcpserver.NewServer(a.cfg, a.client, a.project, a.validator, toolLog, a.log)
	return srv.ServeStdio()
}

func resolveLogPath(flagValue, projectRoot string) string {
	if flagValue != "" {
		return flagValue
	}
	return filepath.Join(projectRoot, ".figmagen", "mcp.jsonl")
}
