package libgl

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/go-gl/gl/v4.5-core/gl"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var shaderMetaPattern = regexp.MustCompile(`(?m)^\/\/meta:(\w+)(.+)$`)
var shaderDefinePattern = regexp.MustCompile(`(?m)^\s*(\/\/)?\s*#define ([\w\d]+) ?(.*)$`)
var shaderVersionPattern = regexp.MustCompile(`(?m)^\s*#version.+$`)

var ErrUnknownStage = errors.New("unknown shader stage")

var stageExtensions = map[string]uint32{
	".vert": gl.VERTEX_SHADER,
	".frag": gl.FRAGMENT_SHADER,
	".geom": gl.GEOMETRY_SHADER,
	".comp": gl.COMPUTE_SHADER,
}

// StageFromPath derives the shader stage from a file extension.
func StageFromPath(name string) (uint32, error) {
	ext := strings.ToLower(path.Ext(name))
	if stage, ok := stageExtensions[ext]; ok {
		return stage, nil
	}
	if ext == "" {
		return 0, fmt.Errorf("%w: %q has no extension", ErrUnknownStage, name)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStage, ext)
}

// StageBit converts a shader stage to its program pipeline bit.
func StageBit(stage uint32) uint32 {
	switch stage {
	case gl.VERTEX_SHADER:
		return gl.VERTEX_SHADER_BIT
	case gl.FRAGMENT_SHADER:
		return gl.FRAGMENT_SHADER_BIT
	case gl.GEOMETRY_SHADER:
		return gl.GEOMETRY_SHADER_BIT
	case gl.COMPUTE_SHADER:
		return gl.COMPUTE_SHADER_BIT
	}
	return 0
}

type glslDef struct {
	marker  string
	name    string
	value   string
	boolean bool
}

func (def glslDef) line(value string) string {
	if !def.boolean {
		return fmt.Sprintf("#define %v %v", def.name, value)
	}
	sub := fmt.Sprintf("#define %v", def.name)
	if value == "false" {
		return "// " + sub
	}
	return sub
}

// Source is a GLSL template. Its #define lines can be overridden when the
// final source is generated, and a "//meta:name" line names it.
type Source struct {
	Name        string
	Stage       uint32
	template    string
	definitions map[string]glslDef
	versionEnd  int
}

func ParseSource(name, source string) (*Source, error) {
	stage, err := StageFromPath(name)
	if err != nil {
		return nil, err
	}

	version := shaderVersionPattern.FindStringIndex(source)
	if version == nil {
		return nil, fmt.Errorf("shader %q has no #version directive", name)
	}

	title := path.Base(name)
	for _, match := range shaderMetaPattern.FindAllStringSubmatch(source, -1) {
		key, value := match[1], strings.TrimSpace(match[2])
		if strings.EqualFold(key, "name") {
			title = value
		}
	}

	defineMatches := shaderDefinePattern.FindAllStringSubmatch(source, -1)
	definitions := make(map[string]glslDef, len(defineMatches))
	defineMarkers := make(map[string]string, len(defineMatches))
	for i, match := range defineMatches {
		value := strings.TrimSpace(match[3])
		marker := fmt.Sprintf("$def_%v$", i)
		boolean := value == ""
		if boolean && match[1] == "//" {
			value = "false"
		}
		definitions[strings.ToLower(match[2])] = glslDef{
			marker:  marker,
			name:    match[2],
			value:   value,
			boolean: boolean,
		}
		defineMarkers[match[0]] = marker
	}
	template := shaderDefinePattern.ReplaceAllStringFunc(source, func(s string) string {
		return defineMarkers[s]
	})

	return &Source{
		Name:        title,
		Stage:       stage,
		template:    template,
		definitions: definitions,
		versionEnd:  shaderVersionPattern.FindStringIndex(template)[1],
	}, nil
}

// Expand produces compilable GLSL. Overrides replace existing definitions
// by case-insensitive name; unknown names are inserted after #version.
func (src *Source) Expand(defs map[string]string) string {
	source := src.template

	names := maps.Keys(defs)
	slices.Sort(names)

	var inserted strings.Builder
	used := map[string]bool{}
	for _, n := range names {
		k := strings.ToLower(n)
		if def, ok := src.definitions[k]; ok {
			source = strings.Replace(source, def.marker, def.line(defs[n]), 1)
			used[k] = true
		} else {
			fmt.Fprintf(&inserted, "\n#define %v %v", n, defs[n])
		}
	}

	for k, def := range src.definitions {
		if !used[k] {
			source = strings.Replace(source, def.marker, def.line(def.value), 1)
		}
	}

	return source[:src.versionEnd] + inserted.String() + source[src.versionEnd:]
}
