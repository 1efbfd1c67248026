package main

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"gl-viewer/libgl"
	"gl-viewer/libres"
)

//go:embed resources/shaders
var embeddedResources embed.FS

// EmbeddedResources is the fallback resource tree compiled into the binary.
func EmbeddedResources() fs.FS {
	sub, err := fs.Sub(embeddedResources, "resources")
	check(err)
	return sub
}

var pipelineStages = []string{".vert", ".frag"}

// ShaderLibrary loads pipelines as <name>.vert plus <name>.frag and
// recompiles the programs whose files changed on disk.
type ShaderLibrary struct {
	res       *libres.Resources
	watcher   *libres.Watcher
	programs  map[string]libgl.ShaderProgram
	users     map[string][]libgl.UnboundShaderPipeline
	pipelines []libgl.UnboundShaderPipeline
}

// NewShaderLibrary watches the shader directory when watch is set. A
// directory that cannot be watched only disables hot reloading.
func NewShaderLibrary(res *libres.Resources, watch bool) *ShaderLibrary {
	lib := &ShaderLibrary{
		res:      res,
		programs: map[string]libgl.ShaderProgram{},
		users:    map[string][]libgl.UnboundShaderPipeline{},
	}
	if watch {
		w, err := res.WatchShaders()
		if err != nil {
			slog.Warn("shader hot reload disabled", "error", err)
		} else {
			lib.watcher = w
		}
	}
	return lib
}

func (lib *ShaderLibrary) LoadPipeline(name string) (libgl.UnboundShaderPipeline, error) {
	var programs []libgl.ShaderProgram
	for _, ext := range pipelineStages {
		file := name + ext
		prog, err := lib.loadProgram(file)
		if err != nil {
			for _, p := range programs {
				p.Delete()
			}
			return nil, fmt.Errorf("could not load %s pipeline: %w", name, err)
		}
		programs = append(programs, prog)
	}

	pipeline := libgl.NewPipeline(programs...)
	pipeline.SetDebugLabel(name)
	for _, ext := range pipelineStages {
		file := name + ext
		lib.programs[file] = programs[0]
		lib.users[file] = append(lib.users[file], pipeline)
		programs = programs[1:]
	}
	lib.pipelines = append(lib.pipelines, pipeline)
	return pipeline, nil
}

func (lib *ShaderLibrary) loadProgram(file string) (libgl.ShaderProgram, error) {
	source, err := lib.res.ReadShader(file)
	if err != nil {
		return nil, err
	}
	prog, err := libgl.NewShader(file, source)
	if err != nil {
		return nil, err
	}
	if err := prog.Compile(); err != nil {
		return nil, err
	}
	return prog, nil
}

// Reload recompiles the programs changed since the last call. It has to
// run on the thread that owns the GL context. Failures are logged and the
// previous program stays in use.
func (lib *ShaderLibrary) Reload() {
	if lib.watcher == nil {
		return
	}
	for _, file := range lib.watcher.Changed() {
		prog, ok := lib.programs[file]
		if !ok {
			continue
		}
		source, err := lib.res.ReadShader(file)
		if err != nil {
			slog.Error("could not reload shader", "file", file, "error", err)
			continue
		}
		if err := prog.Recompile(source, nil); err != nil {
			slog.Error("could not reload shader", "file", file, "error", err)
			continue
		}
		for _, pipeline := range lib.users[file] {
			pipeline.ReAttach()
		}
		slog.Info("reloaded shader", "file", file)
	}
}

func (lib *ShaderLibrary) Delete() {
	if lib.watcher != nil {
		if err := lib.watcher.Close(); err != nil {
			slog.Warn("could not stop shader watcher", "error", err)
		}
	}
	for _, pipeline := range lib.pipelines {
		pipeline.Delete()
	}
	for _, prog := range lib.programs {
		prog.Delete()
	}
}
