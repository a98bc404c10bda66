package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/itsklimov/figma-rn-sub004/pkg/baseline"
	"github.com/itsklimov/figma-rn-sub004/pkg/pipeline"
	"github.com/itsklimov/figma-rn-sub004/pkg/props"
)

// generationContext bounds one pipeline run, network fetch included.
func generationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file (default .figmagen.yaml)")
	nodeID := fs.String("node", "", "generate a single node instead of the configured set")
	stdout := fs.Bool("stdout", false, "print generated code instead of writing files")
	saveBaseline := fs.Bool("save-baseline", false, "record generated output as the regression baseline")
	checkBaseline := fs.Bool("check-baseline", false, "fail when output differs from the recorded baseline")
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

	nodeIDs := a.cfg.NodeIDs
	if *nodeID != "" {
		nodeIDs = []string{*nodeID}
	}

	ctx, cancel := generationContext()
	defer cancel()

	for _, id := range nodeIDs {
		if err := a.generateOne(ctx, id, *stdout, *saveBaseline, *checkBaseline); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) generateOne(ctx context.Context, nodeID string, stdout, saveBaseline, checkBaseline bool) error {
	raw, err := a.client.Node(ctx, a.cfg.FileKey, nodeID)
	if err != nil {
		return err
	}

	componentName := a.cfg.ComponentName
	if componentName == "" && raw.Name != "" {
		componentName = exportedName(raw.Name)
	}

	out, err := pipeline.Run(pipeline.Input{
		Raw:            raw,
		Project:        a.project,
		AssetConfig:    a.assetConfig(),
		ColorThreshold: a.colorThreshold(),
		Codegen:        a.codegenOptions(componentName),
	}, a.log)
	if err != nil {
		return err
	}
	if out.Empty {
		a.log.Warn("node produced no visible content", "node", nodeID)
		return nil
	}

	res, err := a.validator.Validate(out.Code, out.StyleNames)
	if err != nil {
		a.log.Warn("validation unavailable", "error", err)
	} else if !res.Valid {
		for _, v := range res.Violations {
			a.log.Error("validation violation",
				"rule", v.Rule, "message", v.Message, "line", v.Line, "column", v.Column)
		}
		return fmt.Errorf("generated code for node %s failed validation", nodeID)
	}

	if checkBaseline || saveBaseline {
		if err := a.baselineStep(componentName, out.Code, saveBaseline); err != nil {
			return err
		}
	}

	if stdout {
		fmt.Println(out.Code)
		return nil
	}

	outPath := filepath.Join(a.cfg.ProjectRoot, a.cfg.OutputDir, componentName+".tsx")
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, []byte(out.Code), 0o644); err != nil {
		return err
	}
	a.log.Info("component written", "node", nodeID, "path", outPath)
	return nil
}

func (a *app) baselineStep(componentName, code string, save bool) error {
	dir := a.cfg.BaselineDir
	if dir == "" {
		dir = filepath.Join(a.cfg.ProjectRoot, ".figmagen", "baselines")
	}
	store := baseline.NewStore(dir)

	if save {
		if err := store.Save(componentName, code); err != nil {
			return err
		}
		a.log.Info("baseline saved", "component", componentName)
		return nil
	}

	if !store.Exists(componentName) {
		return fmt.Errorf("no baseline recorded for %s; run with -save-baseline first", componentName)
	}
	diff, err := store.Compare(componentName, code)
	if err != nil {
		return err
	}
	if !diff.Match {
		a.log.Error("baseline mismatch",
			"component", componentName,
			"line", diff.FirstLine,
			"expected", diff.Expected,
			"actual", diff.Actual)
		return fmt.Errorf("output for %s differs from baseline at line %d", componentName, diff.FirstLine)
	}
	a.log.Info("baseline match", "component", componentName)
	return nil
}

// exportedName turns a node name into an exported component identifier.
func exportedName(name string) string {
	id := props.Identifier(name)
	if id == "" {
		return "GeneratedScreen"
	}
	return strings.ToUpper(id[:1]) + id[1:]
}
