package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"

	ku "github.com/reoring/kontrolluppgift"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfiguration_Defaults(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	if cfg.Language != "en" || cfg.Decode.MaxDepth != 32 || cfg.Encode.Indent != "  " {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	opt := cfg.ParseOpt(nil)
	if opt.Strictness.OnDuplicateField != ku.Warn || opt.MaxDepth != 32 {
		t.Fatalf("parse options: %+v", opt)
	}
	dec, enc, err := cfg.Drivers()
	if err != nil || dec.Name() != "encoding/xml" || enc.Name() != "encoding/xml" {
		t.Fatalf("drivers: %v %v %v", dec, enc, err)
	}
}

func TestLoadConfiguration_Overlay(t *testing.T) {
	path := writeConfig(t, `
language: sv
decode:
  driver: etree
  duplicate_fields: error
encode:
  indent: ""
`)
	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Language != "sv" || cfg.Decode.MaxDepth != 32 || cfg.Encode.Driver != "encoding/xml" {
		t.Fatalf("overlay must keep unspecified defaults: %+v", cfg)
	}
	if cfg.ParseOpt(nil).Strictness.OnDuplicateField != ku.Error {
		t.Fatalf("duplicate policy not applied")
	}
	if cfg.EncodeOpt(nil).Indent != "" {
		t.Fatalf("indent not applied")
	}
	dec, _, err := cfg.Drivers()
	if err != nil || dec.Name() != "etree" {
		t.Fatalf("etree driver: %v %v", dec, err)
	}
}

func TestLoadConfiguration_UnknownKey(t *testing.T) {
	path := writeConfig(t, "decode:\n  max_dept: 3\n")
	if _, err := LoadConfiguration(path); err == nil || !strings.Contains(err.Error(), "max_dept") {
		t.Fatalf("want an unknown key error, got %v", err)
	}
}

func TestValidate_ReportsEverything(t *testing.T) {
	path := writeConfig(t, `
language: de
logging:
  console:
    level: loud
  file:
    level: debug
decode:
  max_depth: -1
  duplicate_fields: sometimes
`)
	_, err := LoadConfiguration(path)
	if err == nil {
		t.Fatalf("want validation errors")
	}
	if n := len(multierr.Errors(err)); n != 5 {
		t.Fatalf("want 5 errors, got %d: %v", n, err)
	}
}

func TestDrivers_Unknown(t *testing.T) {
	cfg, _ := LoadConfiguration("")
	cfg.Encode.Driver = "sax"
	if _, _, err := cfg.Drivers(); err == nil || !strings.Contains(err.Error(), "sax") {
		t.Fatalf("want unknown driver error, got %v", err)
	}
}

func TestPrepare_ConsoleAndFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "ku.log")
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "normal"},
		FileLogger:    LoggerConfig{Level: "debug", Destination: logPath, Mode: "overwrite"},
	}
	log, closer, err := conf.Prepare(&stdout, &stderr)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	log.Debug("only in file")
	log.Info("informational")
	log.Error("failure")
	_ = log.Sync()
	if err := closer(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !strings.Contains(stdout.String(), "informational") || strings.Contains(stdout.String(), "failure") {
		t.Fatalf("stdout: %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "failure") {
		t.Fatalf("stderr: %q", stderr.String())
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"only in file", "informational", "failure"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log file lacks %q", want)
		}
	}
}
