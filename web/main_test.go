package main

import (
	"bytes"
	"log"
	"path/filepath"
	"strings"
	"testing"
)

func TestServerCmd_Flags(t *testing.T) {
	cmd := newServerCmd(log.New(&bytes.Buffer{}, "", 0))
	for _, name := range []string{"config", "port", "workers", "scene-dir"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected flag --%s", name)
		}
	}
	if cmd.Use != "raycaster-web" {
		t.Errorf("Expected Use raycaster-web, got %q", cmd.Use)
	}
}

func TestServerCmd_MissingConfig(t *testing.T) {
	var logs bytes.Buffer
	cmd := newServerCmd(log.New(&logs, "", 0))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})

	if err := cmd.Execute(); err == nil {
		t.Fatal("Expected an error for a missing config file")
	}
	if strings.Contains(logs.String(), "Visit http://") {
		t.Error("Expected the server not to start")
	}
}

func TestServerCmd_RejectsArgs(t *testing.T) {
	cmd := newServerCmd(log.New(&bytes.Buffer{}, "", 0))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	if err := cmd.Execute(); err == nil {
		t.Error("Expected an error for positional arguments")
	}
}
