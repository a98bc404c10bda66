package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/itsklimov/figma-rn-sub004/pkg/classify"
	"github.com/itsklimov/figma-rn-sub004/pkg/codegen"
	"github.com/itsklimov/figma-rn-sub004/pkg/color"
	"github.com/itsklimov/figma-rn-sub004/pkg/config"
	"github.com/itsklimov/figma-rn-sub004/pkg/figma"
	"github.com/itsklimov/figma-rn-sub004/pkg/parser"
	"github.com/itsklimov/figma-rn-sub004/pkg/tokens"
	"github.com/itsklimov/figma-rn-sub004/pkg/util"
	"github.com/itsklimov/figma-rn-sub004/pkg/validator"
)

// tokenEnvVar holds the Figma personal access token. Kept out of the
// config file so it never lands in version control.
const tokenEnvVar = "FIGMA_TOKEN"

// app bundles the shared dependencies every command needs.
type app struct {
	cfg       *config.Config
	log       *slog.Logger
	parsers   *parser.Manager
	client    *figma.Client
	project   *tokens.ProjectTokens
	validator *validator.Validator
}

func setup(configPath, logLevel string) (*app, error) {
	log := util.NewLogger(util.LoggerConfig{
		Level:  util.LogLevel(logLevel),
		Format: util.FormatText,
		Output: os.Stderr,
	})

	if configPath == "" {
		configPath = config.DefaultFileName
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	pm := parser.NewManager(log)
	project, err := tokens.LoadProjectTokens(cfg.ProjectRoot, cfg.ThemeGlobs, pm, log)
	if err != nil {
		pm.Close()
		return nil, err
	}

	client := figma.NewClient(os.Getenv(tokenEnvVar), log)

	return &app{
		cfg:       cfg,
		log:       log,
		parsers:   pm,
		client:    client,
		project:   project,
		validator: validator.New(pm),
	}, nil
}

func (a *app) Close() {
	a.parsers.Close()
}

// reloadTokens re-reads the project theme sources, used by watch mode
// after a theme file changes.
func (a *app) reloadTokens() error {
	project, err := tokens.LoadProjectTokens(a.cfg.ProjectRoot, a.cfg.ThemeGlobs, a.parsers, a.log)
	if err != nil {
		return err
	}
	a.project = project
	return nil
}

func (a *app) requireToken() error {
	if os.Getenv(tokenEnvVar) == "" {
		return fmt.Errorf("%s is not set", tokenEnvVar)
	}
	return nil
}

func (a *app) assetConfig() classify.AssetConfig {
	ac := classify.DefaultAssetConfig()
	if len(a.cfg.ImageExtensions) > 0 {
		ac.ImageExtensions = a.cfg.ImageExtensions
	}
	return ac
}

func (a *app) colorThreshold() float64 {
	if a.cfg.ColorThreshold > 0 {
		return a.cfg.ColorThreshold
	}
	return color.DefaultThreshold
}

func (a *app) codegenOptions(componentName string) codegen.Options {
	pattern := codegen.PatternStyles
	if a.cfg.StylePattern == "componentStyles" {
		pattern = codegen.PatternComponentStyles
	}
	return codegen.Options{
		ComponentName:    componentName,
		StylePattern:     pattern,
		HasProjectTheme:  !a.project.Empty(),
		UseThemeHookPath: a.cfg.UseThemeHookPath,
		ImportPrefix:     a.cfg.ImportPrefix,
		SuppressTodos:    a.cfg.SuppressTodos,
	}
}
