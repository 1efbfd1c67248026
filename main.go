package main

import (
	"log/slog"
	"os"
	"runtime"

	"gl-viewer/libconf"
	"gl-viewer/liblog"

	"github.com/spf13/cobra"
)

var Arguments struct {
	ConfigPath                 string
	Resources                  string
	LogLevel                   string
	EnableCompatibilityProfile bool
	NoWatch                    bool
}

var rootCmd = &cobra.Command{
	Use:          "gl-viewer",
	Short:        "Fly a camera around textured cubes and an infinite grid",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()

	flags := rootCmd.Flags()
	flags.StringVarP(&Arguments.ConfigPath, "config", "c", libconf.DefaultPath, "the configuration file")
	flags.StringVarP(&Arguments.Resources, "resources", "r", "", "the resources directory, overrides the config")
	flags.StringVarP(&Arguments.LogLevel, "log-level", "l", "", "one of error, warning, info or debug, overrides the config")
	flags.BoolVar(&Arguments.EnableCompatibilityProfile, "enable-compatibility-profile", false, "request an OpenGL compatibility profile")
	flags.BoolVar(&Arguments.NoWatch, "no-watch", false, "do not reload shaders when their files change")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := libconf.Load(Arguments.ConfigPath)
	if err != nil {
		return err
	}
	if Arguments.Resources != "" {
		cfg.Resources = Arguments.Resources
	}
	if Arguments.LogLevel != "" {
		cfg.Log.Level = Arguments.LogLevel
	}

	level, err := liblog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logLevel := &slog.LevelVar{}
	logLevel.Set(level)
	console := liblog.NewConsole(cfg.Log.ConsoleCapacity)
	slog.SetDefault(slog.New(liblog.NewHandler(console, os.Stderr, logLevel)))

	win := NewWindow(cfg, WindowOptions{
		ConfigPath:                 Arguments.ConfigPath,
		EnableCompatibilityProfile: Arguments.EnableCompatibilityProfile,
		Watch:                      !Arguments.NoWatch,
		LogLevel:                   logLevel,
	}, console)
	defer win.Destroy()

	win.Run()
	return nil
}

func check(err error) {
	if err != nil {
		slog.Error("fatal error", "error", err)
		panic(err)
	}
}
