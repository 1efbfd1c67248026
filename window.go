package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"
	"unsafe"

	"gl-viewer/libcam"
	"gl-viewer/libconf"
	"gl-viewer/libdock"
	"gl-viewer/libgl"
	"gl-viewer/libgui"
	"gl-viewer/liblog"
	"gl-viewer/libnav"
	"gl-viewer/libres"
	"gl-viewer/libtheme"
	"gl-viewer/libutil"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

type WindowOptions struct {
	ConfigPath                 string
	EnableCompatibilityProfile bool
	Watch                      bool
	// LogLevel is changed from the GUI when set.
	LogLevel *slog.LevelVar
}

// Window owns the GLFW window and runs the frame loop. It routes device
// input either to the GUI or, in navigation mode, to the engine.
type Window struct {
	ctx     *glfw.Window
	opts    WindowOptions
	cfg     *libconf.Config
	gui     *ImGui
	input   *Input
	nav     *libnav.Switch
	engine  *Engine
	layout  *libdock.Layout
	theme   *libtheme.Theme
	shaders *ShaderLibrary
	console *libgui.ConsoleView

	showDemo   bool
	saveAsPath string

	currentTime float64
	elapsedTime float64
}

// NewWindow creates the window, the GL context and the scene. Failures to
// set up the context panic; missing resources are logged and replaced.
func NewWindow(cfg *libconf.Config, opts WindowOptions, console *liblog.Console) *Window {
	checkGlfw("init", glfw.Init())

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 5)
	glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	if opts.EnableCompatibilityProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	} else {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	if cfg.Window.Maximized {
		glfw.WindowHint(glfw.Maximized, glfw.True)
	}
	ctx, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	checkGlfw("window creation", err)
	ctx.MakeContextCurrent()
	glfw.SwapInterval(cfg.Window.SwapInterval)

	err = gl.InitWithProcAddrFunc(func(name string) unsafe.Pointer {
		addr := glfw.GetProcAddress(name)
		if addr == nil {
			return unsafe.Pointer(libutil.InvalidAddress)
		}
		return addr
	})
	check(err)
	slog.Info("created OpenGL context", "version", gl.GoStr(gl.GetString(gl.VERSION)), "renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	libgl.State = libgl.NewStateManager()
	libgl.EnableDebugOutput(slog.Default())

	res, err := libres.Open(cfg.Resources, EmbeddedResources())
	check(err)
	shaders := NewShaderLibrary(res, opts.Watch)

	imguiShader, err := shaders.LoadPipeline("imgui")
	check(err)
	cubeShader, err := shaders.LoadPipeline("cube")
	check(err)
	gridShader, err := shaders.LoadPipeline("grid")
	check(err)

	w := &Window{
		ctx:        ctx,
		opts:       opts,
		cfg:        cfg,
		gui:        NewImGui(ctx, imguiShader),
		input:      NewInput(),
		layout:     libdock.NewLayout(cfg.Dock),
		theme:      libtheme.New(),
		shaders:    shaders,
		console:    libgui.NewConsoleView(console),
		saveAsPath: cfg.Theme,
	}
	w.loadTheme()

	camera := libcam.New(cfg.CameraDefaults())
	w.engine = NewEngine(camera, NewCube(res, cubeShader), NewGrid(gridShader), w.theme)
	w.nav = libnav.NewSwitch(w.engine)
	w.nav.AddListener(libnav.ListenerFunc(w.modeChanged))
	w.gui.IO.SetConfigFlags(guiConfigFlags(libnav.Interface))

	w.installCallbacks()
	return w
}

// checkGlfw logs a failed GLFW call and aborts startup. go-gl's GLFW
// binding reports errors as return values of the failing call.
func checkGlfw(call string, err error) {
	if err != nil {
		check(fmt.Errorf("glfw %s failed: %w", call, err))
	}
}

func (w *Window) installCallbacks() {
	w.ctx.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		event := libcam.MouseEvent{
			Event:   w.event(),
			X:       x,
			Y:       y,
			Pressed: w.ctx.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press,
		}
		if w.nav.Mouse(event) {
			return
		}
		w.gui.MouseMoved(x, y)
	})
	w.ctx.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if w.nav.Navigating() {
			return
		}
		w.gui.MouseButton(button, action)
	})
	w.ctx.SetScrollCallback(func(_ *glfw.Window, x, y float64) {
		if w.nav.Scroll(libcam.ScrollEvent{Event: w.event(), XOffset: x, YOffset: y}) {
			return
		}
		w.gui.Scroll(x, y)
	})
	w.ctx.SetCharCallback(func(_ *glfw.Window, char rune) {
		if w.nav.Navigating() {
			return
		}
		w.gui.Char(char)
	})
	w.ctx.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		w.gui.Key(key, action)
		if action != glfw.Press {
			return
		}
		typing := !w.nav.Navigating() && w.gui.IO.WantTextInput()
		switch {
		case key == glfw.KeyEscape && !typing:
			if w.nav.Escape() {
				w.ctx.SetShouldClose(true)
			}
		case key == glfw.KeyI && !typing:
			w.nav.Enter()
		}
	})
}

// guiConfigFlags takes the mouse and keyboard navigation away from the GUI
// while the camera is navigated.
func guiConfigFlags(mode libnav.Mode) imgui.ConfigFlags {
	if mode == libnav.Navigation {
		return imgui.ConfigFlagsNoMouse
	}
	return imgui.ConfigFlagsNavEnableKeyboard | imgui.ConfigFlagsNavEnableGamepad
}

func cursorMode(mode libnav.Mode) int {
	if mode == libnav.Navigation {
		return glfw.CursorDisabled
	}
	return glfw.CursorNormal
}

func (w *Window) modeChanged(mode libnav.Mode) {
	w.gui.IO.SetConfigFlags(guiConfigFlags(mode))
	w.ctx.SetInputMode(glfw.CursorMode, cursorMode(mode))
	if mode == libnav.Navigation {
		for button := glfw.MouseButtonLeft; button <= glfw.MouseButtonMiddle; button++ {
			w.gui.MouseButton(button, glfw.Release)
		}
	}
	slog.Debug("input mode changed", "mode", mode)
}

func (w *Window) event() libcam.Event {
	return libcam.Event{CurrentTime: w.currentTime, ElapsedTime: w.elapsedTime}
}

func (w *Window) Run() {
	previous := glfw.GetTime()
	for !w.ctx.ShouldClose() {
		w.currentTime = glfw.GetTime()
		w.elapsedTime = w.currentTime - previous
		previous = w.currentTime

		if w.ctx.GetAttrib(glfw.Iconified) == glfw.True {
			time.Sleep(10 * time.Millisecond)
			glfw.PollEvents()
			continue
		}

		w.shaders.Reload()
		w.processInput()

		w.gui.NewFrame(w.ctx, w.currentTime)

		fbWidth, fbHeight := w.ctx.GetFramebufferSize()
		clearColor := w.theme.ClearColor()
		libgl.State.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		libgl.State.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])
		libgl.State.DepthMask(true)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		libgui.PushMetrics()
		w.renderUi()
		libgui.PopMetrics()
		w.renderEngine()
		w.gui.Draw(w.ctx)

		w.ctx.SwapBuffers()
		glfw.PollEvents()
	}
}

func (w *Window) processInput() {
	w.input.Update(w.ctx)
	if w.nav.Navigating() {
		w.nav.Keyboard(w.input.Movement(DefaultMovementKeys, w.event()))
		return
	}
	if w.gui.IO.WantTextInput() {
		return
	}
	if w.input.IsKeyDown(glfw.KeyLeftControl) || w.input.IsKeyDown(glfw.KeyRightControl) {
		if w.input.IsKeyTap(glfw.KeyS) {
			w.save()
		}
		if w.input.IsKeyTap(glfw.KeyO) {
			w.open()
		}
	}
}

// renderEngine draws the scene into the central node of the dock layout.
func (w *Window) renderEngine() {
	dispWidth, dispHeight := w.ctx.GetSize()
	fbWidth, fbHeight := w.ctx.GetFramebufferSize()
	vp := libdock.ToViewport(w.layout.Node(libdock.Central), float32(dispWidth), float32(dispHeight), fbWidth, fbHeight)
	if vp.W <= 0 || vp.H <= 0 {
		return
	}
	libgl.State.Viewport(vp.X, vp.Y, vp.W, vp.H)
	w.engine.SetViewport(int(vp.W), int(vp.H))
	w.engine.Render(w.event())
}

func (w *Window) themePath() string {
	path, err := libconf.Expand(w.cfg.Theme)
	if err != nil {
		slog.Warn("could not resolve theme path", "error", err)
		return w.cfg.Theme
	}
	return path
}

// loadTheme reads the configured theme over the defaults. A missing file
// keeps the defaults.
func (w *Window) loadTheme() {
	err := w.theme.Load(w.themePath())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("could not load theme, using defaults", "error", err)
		w.theme.Reset()
	}
	libgui.ApplyTheme(w.theme)
}

// reset restores the default palette and panel layout.
func (w *Window) reset() {
	w.theme.Reset()
	libgui.ApplyTheme(w.theme)
	w.layout = libdock.NewLayout(libdock.DefaultRatios)
	slog.Info("restored default theme and layout")
}

// open reloads the configuration and theme from disk.
func (w *Window) open() {
	cfg, err := libconf.Load(w.opts.ConfigPath)
	if err != nil {
		slog.Error("could not reload config", "error", err)
		return
	}
	w.cfg.Theme = cfg.Theme
	w.cfg.Dock = cfg.Dock
	w.cfg.Camera = cfg.Camera
	w.engine.Camera.Apply(w.cfg.CameraDefaults())
	w.layout = libdock.NewLayout(cfg.Dock)
	w.loadTheme()
	slog.Info("reloaded config", "path", w.opts.ConfigPath)
}

// save writes the theme and the config, including the current camera and
// dock layout.
func (w *Window) save() {
	cam := w.engine.Camera
	w.cfg.Dock = w.layout.Ratios()
	w.cfg.Camera.Position = [3]float32(cam.Position())
	w.cfg.Camera.Fov = cam.Fov()
	w.cfg.Camera.Speed = cam.Speed()
	w.cfg.Camera.Near = cam.Near()
	w.cfg.Camera.Far = cam.Far()

	if err := w.theme.Save(w.themePath()); err != nil {
		slog.Error("could not save theme", "error", err)
	}
	if err := w.cfg.Save(w.opts.ConfigPath); err != nil {
		slog.Error("could not save config", "error", err)
		return
	}
	slog.Info("saved config", "path", w.opts.ConfigPath)
}

func (w *Window) saveThemeAs(path string) {
	expanded, err := libconf.Expand(path)
	if err != nil {
		slog.Error("could not save theme", "error", err)
		return
	}
	if err := w.theme.Save(expanded); err != nil {
		slog.Error("could not save theme", "error", err)
		return
	}
	w.cfg.Theme = path
	slog.Info("saved theme", "path", expanded)
}

func (w *Window) exportLog(compress bool) {
	dir := "."
	if path, err := libconf.Expand(w.opts.ConfigPath); err == nil {
		dir = filepath.Dir(path)
	}
	name := "gl-viewer.log"
	if compress {
		name += ".lz4"
	}
	path := filepath.Join(dir, name)
	if err := w.console.Console().ExportFile(path); err != nil {
		slog.Error("could not save log", "error", err)
		return
	}
	slog.Info("saved log", "path", path)
}

func (w *Window) Destroy() {
	libutil.DeleteAll(w.shaders, w.gui, w.engine.Grid, w.engine.Cube)
	w.ctx.Destroy()
	glfw.Terminate()
}
