package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestSetup_Disabled(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	f, err := Setup(dir, false)
	if err != nil || f != nil {
		t.Fatalf("Setup(false) = %v, %v", f, err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("log dir should not be created when debug is off")
	}
}

func TestSetup_Debug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	f, err := Setup(dir, true)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer func() {
		f.Close()
		SetLogger(nil)
	}()

	Logger().Debug("tick", "n", 1)

	info, err := os.Stat(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected log file to contain content")
	}
}
