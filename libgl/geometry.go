package libgl

import (
	"encoding/binary"
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.5-core/gl"
)

type UnboundBuffer interface {
	LabeledGlObject
	Id() uint32
	Size() int
	Delete()
}

// UnboundStreamBuffer is a mutable buffer that is respecified whenever the
// uploaded data does not fit.
type UnboundStreamBuffer interface {
	UnboundBuffer
	// Stream replaces the buffer content with size bytes read from data.
	Stream(size int, data any)
}

type buffer struct {
	glId uint32
	size int
}

// NewStaticBuffer creates an immutable buffer holding data. data must have
// a fixed size in the sense of encoding/binary.
func NewStaticBuffer(data any) UnboundBuffer {
	size := binary.Size(data)
	if size == -1 {
		panic(fmt.Sprintf("static buffer data %T does not have a fixed size", data))
	}
	buf := &buffer{}
	gl.CreateBuffers(1, &buf.glId)
	if size == 0 {
		slog.Warn("empty static buffer", "buffer", buf.glId)
		return buf
	}
	gl.NamedBufferStorage(buf.glId, size, Pointer(data), 0)
	buf.size = size
	return buf
}

func NewStreamBuffer() UnboundStreamBuffer {
	buf := &buffer{}
	gl.CreateBuffers(1, &buf.glId)
	return buf
}

func (buf *buffer) Id() uint32 {
	return buf.glId
}

func (buf *buffer) Size() int {
	return buf.size
}

func (buf *buffer) SetDebugLabel(label string) {
	setObjectLabel(gl.BUFFER, buf.glId, label)
}

func (buf *buffer) Stream(size int, data any) {
	if size <= 0 {
		return
	}
	if size > buf.size {
		buf.size = streamCapacity(buf.size, size)
		gl.NamedBufferData(buf.glId, buf.size, nil, gl.STREAM_DRAW)
	}
	gl.NamedBufferSubData(buf.glId, 0, size, Pointer(data))
}

func (buf *buffer) Delete() {
	gl.DeleteBuffers(1, &buf.glId)
	buf.glId = 0
	buf.size = 0
}

// streamCapacity doubles capacity until it holds required bytes.
func streamCapacity(capacity, required int) int {
	if capacity < 1024 {
		capacity = 1024
	}
	for capacity < required {
		capacity *= 2
	}
	return capacity
}

// VertexAttrib describes one attribute inside an interleaved vertex.
type VertexAttrib struct {
	Components int
	Type       uint32
	Normalized bool
	Offset     int
}

func Float32Attrib(components, offset int) VertexAttrib {
	return VertexAttrib{Components: components, Type: gl.FLOAT, Offset: offset}
}

type UnboundVertexArray interface {
	LabeledGlObject
	Id() uint32
	// Format assigns attribs to consecutive attribute locations, starting at
	// 0, all sourced from one buffer binding.
	Format(binding int, attribs ...VertexAttrib)
	Attach(binding int, vbo UnboundBuffer, stride int)
	AttachElements(ebo UnboundBuffer)
	Bind()
	Delete()
}

type vertexArray struct {
	glId uint32
}

func NewVertexArray() UnboundVertexArray {
	vao := &vertexArray{}
	gl.CreateVertexArrays(1, &vao.glId)
	return vao
}

func (vao *vertexArray) Id() uint32 {
	return vao.glId
}

func (vao *vertexArray) SetDebugLabel(label string) {
	setObjectLabel(gl.VERTEX_ARRAY, vao.glId, label)
}

func (vao *vertexArray) Format(binding int, attribs ...VertexAttrib) {
	for i, attrib := range attribs {
		location := uint32(i)
		gl.EnableVertexArrayAttrib(vao.glId, location)
		gl.VertexArrayAttribFormat(vao.glId, location, int32(attrib.Components), attrib.Type, attrib.Normalized, uint32(attrib.Offset))
		gl.VertexArrayAttribBinding(vao.glId, location, uint32(binding))
	}
}

func (vao *vertexArray) Attach(binding int, vbo UnboundBuffer, stride int) {
	gl.VertexArrayVertexBuffer(vao.glId, uint32(binding), vbo.Id(), 0, int32(stride))
}

func (vao *vertexArray) AttachElements(ebo UnboundBuffer) {
	gl.VertexArrayElementBuffer(vao.glId, ebo.Id())
}

func (vao *vertexArray) Bind() {
	State.BindVertexArray(vao.glId)
}

func (vao *vertexArray) Delete() {
	gl.DeleteVertexArrays(1, &vao.glId)
	vao.glId = 0
}
