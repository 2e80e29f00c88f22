package main

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/backdrop/internal/config"
)

func fpsCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "tui"}
	cmd.Flags().Int("fps", config.DefaultFPS, "frame rate")
	return cmd
}

func TestLoadConfig_FPS(t *testing.T) {
	tests := []struct {
		name string
		env  string
		flag string
		want int
	}{
		{"default", "", "", config.DefaultFPS},
		{"environment", "24", "", 24},
		{"flag wins over environment", "24", "12", 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv("BACKDROP_FPS", tt.env)
			}
			cmd := fpsCommand()
			if tt.flag != "" {
				if err := cmd.Flags().Set("fps", tt.flag); err != nil {
					t.Fatal(err)
				}
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				t.Fatalf("load config: %v", err)
			}
			if cfg.FPS != tt.want {
				t.Errorf("expected fps %d, got %d", tt.want, cfg.FPS)
			}
		})
	}
}
