package main

import (
	"math"
	"testing"

	"github.com/spf13/cobra"
)

func TestResolveConfig_PresetFollowsGridFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"defaults", nil},
		{"square grid", []string{"--width", "40", "--height", "40"}},
		{"tall grid", []string{"--width", "30", "--height", "90"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "test"}
			addViewFlags(cmd)
			if err := cmd.Flags().Parse(tt.args); err != nil {
				t.Fatal(err)
			}

			cfg, err := resolveConfig(cmd, "seahorse")
			if err != nil {
				t.Fatal(err)
			}
			w := cfg.ViewWindow()
			cellRe := w.Width() / float64(cfg.Grid.Width)
			cellIm := w.Height() / float64(cfg.Grid.Height)
			if math.Abs(cellRe-cellIm) > 1e-12 {
				t.Errorf("grid %dx%d: cells %g x %g", cfg.Grid.Width, cfg.Grid.Height, cellRe, cellIm)
			}
		})
	}
}
