// Package libconf loads and saves the viewer's TOML configuration.
package libconf

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gl-viewer/libcam"
	"gl-viewer/libdock"
	"gl-viewer/liblog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

const DefaultPath = "~/.config/gl-viewer/config.toml"

type Window struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	Maximized bool   `toml:"maximized"`
	// SwapInterval is passed to glfw.SwapInterval; 0 disables vsync.
	SwapInterval int `toml:"swap_interval"`
}

type Log struct {
	Level           string `toml:"level"`
	ConsoleCapacity int    `toml:"console_capacity"`
}

type Camera struct {
	Position    [3]float32 `toml:"position"`
	Fov         float32    `toml:"fov"`
	Speed       float32    `toml:"speed"`
	Sensitivity float32    `toml:"sensitivity"`
	Near        float32    `toml:"near"`
	Far         float32    `toml:"far"`
}

type Config struct {
	Window    Window         `toml:"window"`
	Resources string         `toml:"resources"`
	Theme     string         `toml:"theme"`
	Log       Log            `toml:"log"`
	Camera    Camera         `toml:"camera"`
	Dock      libdock.Ratios `toml:"dock"`
}

func Default() *Config {
	d := libcam.DefaultSettings
	return &Config{
		Window: Window{
			Width:        1280,
			Height:       720,
			Title:        "gl-viewer",
			Maximized:    true,
			SwapInterval: 1,
		},
		Resources: "resources",
		Theme:     "~/.config/gl-viewer/theme.toml",
		Log: Log{
			Level:           "info",
			ConsoleCapacity: liblog.DefaultCapacity,
		},
		Camera: Camera{
			Position:    d.Position,
			Fov:         d.Fov,
			Speed:       d.Speed,
			Sensitivity: d.Sensitivity,
			Near:        d.Near,
			Far:         d.Far,
		},
		Dock: libdock.DefaultRatios,
	}
}

// CameraDefaults converts the camera section for libcam.New.
func (c *Config) CameraDefaults() libcam.Defaults {
	return libcam.Defaults{
		Position:    mgl32.Vec3(c.Camera.Position),
		Fov:         c.Camera.Fov,
		Speed:       c.Camera.Speed,
		Sensitivity: c.Camera.Sensitivity,
		Near:        c.Camera.Near,
		Far:         c.Camera.Far,
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.SwapInterval < 0 {
		errs = append(errs, fmt.Errorf("swap interval %d must not be negative", c.Window.SwapInterval))
	}
	if _, err := liblog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Log.ConsoleCapacity <= 0 {
		errs = append(errs, fmt.Errorf("console capacity %d must be positive", c.Log.ConsoleCapacity))
	}
	cam := c.Camera
	if cam.Fov < libcam.MinFov || cam.Fov > libcam.MaxFov {
		errs = append(errs, fmt.Errorf("camera fov %v outside [%v, %v]", cam.Fov, libcam.MinFov, libcam.MaxFov))
	}
	if cam.Speed <= 0 || cam.Sensitivity <= 0 {
		errs = append(errs, fmt.Errorf("camera speed and sensitivity must be positive"))
	}
	if cam.Near <= 0 || cam.Near >= cam.Far {
		errs = append(errs, fmt.Errorf("camera planes near=%v far=%v: need 0 < near < far", cam.Near, cam.Far))
	}
	if err := c.Dock.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Expand resolves a leading ~ in a configured path.
func Expand(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("could not expand %q: %w", path, err)
	}
	return expanded, nil
}

// Load reads the file at path over the defaults. A missing file is not an
// error and yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	path, err := Expand(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("could not parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save validates the config, writes it to a temporary file next to path
// and renames that into place.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	path, err := Expand(path)
	if err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("could not encode config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.toml")
	if err != nil {
		return fmt.Errorf("could not create temporary config: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write config: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace config: %w", err)
	}
	return nil
}
