package main

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/romiHill/reduplication-in-dm/grammar"
)

// loadDescription reads a language description from a folder of text
// files or from a single YAML document.
func loadDescription(path string) (*grammar.Grammar, error) {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return grammar.LoadYAML(path)
	}
	return grammar.Load(path)
}

func newLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
