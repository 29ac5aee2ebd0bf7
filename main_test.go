package main

import (
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"cover scene", "cover", false},
		{"three-spheres scene", "three-spheres", false},
		{"single-sphere scene", "single-sphere", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType, 42)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if s == nil {
				t.Fatalf("Expected scene for valid scene type '%s', got nil", tt.sceneType)
			}

			if s.RenderConfig.Width <= 0 || s.RenderConfig.Height <= 0 {
				t.Errorf("Scene dimensions should be positive, got %dx%d",
					s.RenderConfig.Width, s.RenderConfig.Height)
			}
			if err := s.CameraConfig.Validate(); err != nil {
				t.Errorf("Scene camera config should validate: %v", err)
			}
			if len(s.GetShapes()) == 0 {
				t.Error("Scene should contain shapes")
			}
		})
	}
}

func TestValidateConfig(t *testing.T) {
	valid := scene.RenderConfig{Width: 400, Height: 225, SamplesPerPixel: 10, MaxDepth: 50}

	tests := []struct {
		name        string
		mutate      func(*scene.RenderConfig)
		expectError bool
	}{
		{"valid config", func(c *scene.RenderConfig) {}, false},
		{"zero depth is allowed", func(c *scene.RenderConfig) { c.MaxDepth = 0 }, false},
		{"zero width", func(c *scene.RenderConfig) { c.Width = 0 }, true},
		{"negative height", func(c *scene.RenderConfig) { c.Height = -1 }, true},
		{"zero samples", func(c *scene.RenderConfig) { c.SamplesPerPixel = 0 }, true},
		{"negative depth", func(c *scene.RenderConfig) { c.MaxDepth = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid
			tt.mutate(&config)

			err := validateConfig(config)
			if tt.expectError && err == nil {
				t.Error("Expected validation error, got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}
