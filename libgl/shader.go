package libgl

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

type program struct {
	file             string
	source           *Source
	uniformLocations map[string]int32
	glId             uint32
	live             string
}

type ShaderProgram interface {
	LabeledGlObject
	Id() uint32
	Name() string
	Stage() uint32
	Compile() error
	CompileWith(defs map[string]string) error
	Recompile(source string, defs map[string]string) error
	Delete()
	GetUniformLocation(name string) int32
	SetUniform(name string, value any)
	Source() string
}

// NewShader parses source; the stage comes from the extension of name.
// Nothing is sent to GL before Compile.
func NewShader(name, source string) (ShaderProgram, error) {
	src, err := ParseSource(name, source)
	if err != nil {
		return nil, err
	}
	return &program{file: name, source: src}, nil
}

func (prog *program) Name() string {
	return prog.source.Name
}

func (prog *program) Stage() uint32 {
	return prog.source.Stage
}

func (prog *program) Compile() error {
	return prog.CompileWith(nil)
}

// CompileWith builds a separable program. On failure the previously
// compiled program, if any, stays in place.
func (prog *program) CompileWith(defs map[string]string) error {
	source := prog.source.Expand(defs)

	cStrs, free := gl.Strs(source + "\x00")
	id := gl.CreateShaderProgramv(prog.source.Stage, 1, cStrs)
	free()

	var ok int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		info := readProgramInfoLog(id)
		gl.DeleteProgram(id)
		return fmt.Errorf("failed to link %v shader, log: %v", prog.source.Name, info)
	}

	if prog.glId != 0 {
		gl.DeleteProgram(prog.glId)
	}
	prog.glId = id
	prog.live = source
	prog.uniformLocations = map[string]int32{}
	prog.SetDebugLabel(prog.source.Name)

	return nil
}

// Recompile swaps in new source text. When parsing or compiling fails the
// old source and program are kept.
func (prog *program) Recompile(source string, defs map[string]string) error {
	src, err := ParseSource(prog.file, source)
	if err != nil {
		return err
	}
	prev := prog.source
	prog.source = src
	if err := prog.CompileWith(defs); err != nil {
		prog.source = prev
		return err
	}
	return nil
}

func (prog *program) Source() string {
	return prog.live
}

func (prog *program) Id() uint32 {
	return prog.glId
}

func (prog *program) SetDebugLabel(label string) {
	if prog.glId == 0 {
		return
	}
	setObjectLabel(gl.PROGRAM, prog.glId, label)
}

func (prog *program) Delete() {
	gl.DeleteProgram(prog.glId)
	prog.glId = 0
}

func readProgramInfoLog(id uint32) string {
	var logLength int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(id, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

// GetUniformLocation caches locations, including misses, so a missing
// uniform is only reported once per compilation.
func (prog *program) GetUniformLocation(name string) int32 {
	if location, ok := prog.uniformLocations[name]; ok {
		return location
	}

	location := gl.GetUniformLocation(prog.glId, gl.Str(name+"\x00"))
	prog.uniformLocations[name] = location

	if location == -1 {
		slog.Warn("could not get uniform location", "shader", prog.source.Name, "uniform", name)
	}

	return location
}

func (prog *program) SetUniform(name string, value any) {
	location := prog.GetUniformLocation(name)
	if location == -1 {
		return
	}
	setProgramUniformAny(prog.glId, location, value)
}

func setProgramUniformAny(prog uint32, location int32, value any) {
	for refVal := reflect.ValueOf(value); refVal.Kind() == reflect.Ptr; refVal = reflect.ValueOf(value) {
		value = refVal.Elem().Interface()
	}

	switch v := value.(type) {
	case float32:
		gl.ProgramUniform1f(prog, location, v)
	case float64:
		gl.ProgramUniform1f(prog, location, float32(v))
	case bool:
		var i int32
		if v {
			i = 1
		}
		gl.ProgramUniform1i(prog, location, i)
	case int:
		gl.ProgramUniform1i(prog, location, int32(v))
	case int32:
		gl.ProgramUniform1i(prog, location, v)
	case uint:
		gl.ProgramUniform1ui(prog, location, uint32(v))
	case uint32:
		gl.ProgramUniform1ui(prog, location, v)
	case mgl32.Vec2:
		gl.ProgramUniform2f(prog, location, v.X(), v.Y())
	case mgl32.Vec3:
		gl.ProgramUniform3f(prog, location, v.X(), v.Y(), v.Z())
	case mgl32.Vec4:
		gl.ProgramUniform4f(prog, location, v.X(), v.Y(), v.Z(), v.W())
	case mgl32.Mat3:
		gl.ProgramUniformMatrix3fv(prog, location, 1, false, &v[0])
	case mgl32.Mat4:
		gl.ProgramUniformMatrix4fv(prog, location, 1, false, &v[0])
	default:
		panic(fmt.Sprintf("unsupported uniform type %T", value))
	}
}

type shaderPipeline struct {
	glId      uint32
	vertStage ShaderProgram
	geomStage ShaderProgram
	fragStage ShaderProgram
	compStage ShaderProgram
}

type UnboundShaderPipeline interface {
	LabeledGlObject
	Bind() BoundShaderPipeline
	Attach(program ShaderProgram)
	ReAttach()
	Get(stage uint32) ShaderProgram
	Id() uint32
	Delete()
}

type BoundShaderPipeline interface {
	UnboundShaderPipeline
}

func NewPipeline(programs ...ShaderProgram) UnboundShaderPipeline {
	var id uint32
	gl.CreateProgramPipelines(1, &id)
	pipeline := &shaderPipeline{
		glId: id,
	}
	for _, p := range programs {
		pipeline.Attach(p)
	}
	return pipeline
}

// Attach uses program for its own stage.
func (pipeline *shaderPipeline) Attach(program ShaderProgram) {
	gl.UseProgramStages(pipeline.glId, StageBit(program.Stage()), program.Id())
	switch program.Stage() {
	case gl.VERTEX_SHADER:
		pipeline.vertStage = program
	case gl.GEOMETRY_SHADER:
		pipeline.geomStage = program
	case gl.FRAGMENT_SHADER:
		pipeline.fragStage = program
	case gl.COMPUTE_SHADER:
		pipeline.compStage = program
	}
}

// ReAttach refreshes all stages, which is needed after a program was
// recompiled and got a new id.
func (pipeline *shaderPipeline) ReAttach() {
	for _, p := range []ShaderProgram{pipeline.vertStage, pipeline.geomStage, pipeline.fragStage, pipeline.compStage} {
		if p != nil {
			gl.UseProgramStages(pipeline.glId, StageBit(p.Stage()), p.Id())
		}
	}
}

func (pipeline *shaderPipeline) Get(stage uint32) ShaderProgram {
	switch stage {
	case gl.VERTEX_SHADER:
		return pipeline.vertStage
	case gl.GEOMETRY_SHADER:
		return pipeline.geomStage
	case gl.FRAGMENT_SHADER:
		return pipeline.fragStage
	case gl.COMPUTE_SHADER:
		return pipeline.compStage
	}
	panic(fmt.Sprintf("%d is not a valid shader stage", stage))
}

func (pipeline *shaderPipeline) Bind() BoundShaderPipeline {
	State.BindProgramPipeline(pipeline.glId)
	return BoundShaderPipeline(pipeline)
}

func (pipeline *shaderPipeline) Id() uint32 {
	return pipeline.glId
}

func (pipeline *shaderPipeline) SetDebugLabel(label string) {
	setObjectLabel(gl.PROGRAM_PIPELINE, pipeline.glId, label)
}

func (pipeline *shaderPipeline) Delete() {
	gl.DeleteProgramPipelines(1, &pipeline.glId)
	pipeline.glId = 0
}
