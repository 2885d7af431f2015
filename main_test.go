package main

import (
	"testing"

	"cfgen/cmd"
)

func TestDefaultVersion(t *testing.T) {
	if version != "dev" {
		t.Errorf("Expected default version to be 'dev', got %s", version)
	}
}

func TestSetVersionIntegration(t *testing.T) {
	originalVersion := version
	defer func() { version = originalVersion }()

	versions := []string{"dev", "1.0.0", "v2.0.0-rc1"}
	for _, v := range versions {
		version = v
		cmd.SetVersion(version)
		if got := cmd.GetVersion(); got != v {
			t.Errorf("Expected version %s, got %s", v, got)
		}
	}
}
