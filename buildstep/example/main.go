package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/viant/reachability/buildstep"
	"gopkg.in/yaml.v3"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: example <application.jar>")
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	step := buildstep.New(buildstep.WithLogger(logger), buildstep.WithFingerprint())
	var items buildstep.Items
	if err := step.ImportGraalConfiguration(context.Background(), &buildstep.SourceJar{Path: os.Args[1]}, &items); err != nil {
		logger.Error("import failed", "error", err)
		os.Exit(1)
	}
	output := struct {
		Feature interface{} `yaml:"feature"`
		Report  interface{} `yaml:"report"`
	}{items[0].Feature, step.Report()}
	data, err := yaml.Marshal(output)
	if err != nil {
		logger.Error("failed to encode feature", "error", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
