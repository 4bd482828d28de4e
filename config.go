package main

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"

	"github.com/fivemoreminix/qoverlay/ui"
	"github.com/fivemoreminix/qoverlay/ui/overlay"
)

type config struct {
	Overlays          int
	SurfaceHeight     int
	DefaultBackground string
	Palette           []string
	PageWidth         float64
	PageHeight        float64
	FontSize          float64
	TextColor         string
	Output            string
	Manifest          string
}

const configFile = "config.toml"

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func defaultConfig() config {
	return config{
		Overlays:          1,
		SurfaceHeight:     8,
		DefaultBackground: overlay.DefaultBackgroundColor,
		Palette:           append([]string(nil), ui.DefaultPalette...),
		PageWidth:         210,
		PageHeight:        297,
		FontSize:          24,
		TextColor:         "#000000",
		Output:            "overlay.pdf",
		Manifest:          "overlay.yaml",
	}
}

// normalize replaces values that cannot be used with their defaults.
func (c *config) normalize() {
	def := defaultConfig()
	if c.Overlays < 1 {
		c.Overlays = def.Overlays
	}
	if c.SurfaceHeight < 4 {
		c.SurfaceHeight = def.SurfaceHeight
	}
	if !hexColor.MatchString(c.DefaultBackground) {
		c.DefaultBackground = def.DefaultBackground
	}
	palette := c.Palette[:0]
	for _, hex := range c.Palette {
		if hexColor.MatchString(hex) {
			palette = append(palette, hex)
		}
	}
	c.Palette = palette
	if len(c.Palette) == 0 {
		c.Palette = def.Palette
	}
	if c.PageWidth <= 0 {
		c.PageWidth = def.PageWidth
	}
	if c.PageHeight <= 0 {
		c.PageHeight = def.PageHeight
	}
	if c.FontSize <= 0 {
		c.FontSize = def.FontSize
	}
	if !hexColor.MatchString(c.TextColor) {
		c.TextColor = def.TextColor
	}
	if c.Output == "" {
		c.Output = def.Output
	}
	if c.Manifest == "" {
		c.Manifest = def.Manifest
	}
}

// initializeConfigIfNot writes the default config to `path` unless a file is
// already there.
func initializeConfigIfNot(path string) error {
	ok, err := exists(path)
	if err != nil {
		return fmt.Errorf("check config file: %w", err)
	}
	if ok {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	log.Printf("Initializing config at %s\n", path)
	conf := defaultConfig()
	return writeConfig(path, &conf)
}

func readConfig(path string) (*config, error) {
	conf := defaultConfig()
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	conf.normalize()
	return &conf, nil
}

func writeConfig(path string, conf *config) error {
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(conf); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, buffer.Bytes(), 0644); err != nil {
		return fmt.Errorf("write config file %s: %w", path, err)
	}
	return nil
}

func configPath() string {
	return filepath.Join(configDir(), configFile)
}

func configDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(xdgOrFallback("XDG_CONFIG_HOME", filepath.Join(home, ".config")), "qoverlay")
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func xdgOrFallback(xdg string, fallback string) string {
	dir := os.Getenv(xdg)
	if dir != "" {
		if ok, err := exists(dir); ok && err == nil {
			log.Printf("Resolved $%s to '%s'\n", xdg, dir)
			return dir
		}
	}

	log.Printf("Couldn't resolve $%s falling back to '%s'\n", xdg, fallback)
	return fallback
}
