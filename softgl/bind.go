package softgl

import (
	"slices"

	"github.com/gogpu/glw/internal/glconst"
)

var bufferTargets = []uint32{
	glconst.ARRAY_BUFFER,
	glconst.ELEMENT_ARRAY_BUFFER,
	glconst.PIXEL_PACK_BUFFER,
	glconst.PIXEL_UNPACK_BUFFER,
	glconst.UNIFORM_BUFFER,
	glconst.TEXTURE_BUFFER,
	glconst.TRANSFORM_FEEDBACK_BUFFER,
	glconst.COPY_READ_BUFFER,
	glconst.COPY_WRITE_BUFFER,
	glconst.DRAW_INDIRECT_BUFFER,
	glconst.SHADER_STORAGE_BUFFER,
	glconst.DISPATCH_INDIRECT_BUFFER,
	glconst.QUERY_BUFFER,
	glconst.ATOMIC_COUNTER_BUFFER,
}

var textureTargets = []uint32{
	glconst.TEXTURE_1D,
	glconst.TEXTURE_2D,
	glconst.TEXTURE_3D,
	glconst.TEXTURE_RECTANGLE,
	glconst.TEXTURE_CUBE_MAP,
	glconst.TEXTURE_1D_ARRAY,
	glconst.TEXTURE_2D_ARRAY,
	glconst.TEXTURE_CUBE_MAP_ARRAY,
	glconst.TEXTURE_2D_MULTISAMPLE,
	glconst.TEXTURE_2D_MULTISAMPLE_ARRAY,
}

// classOfTarget returns the object class bound at target, or -1.
func classOfTarget(target uint32) class {
	switch {
	case slices.Contains(bufferTargets, target):
		return classBuffer
	case slices.Contains(textureTargets, target):
		return classTexture
	case target == glconst.READ_FRAMEBUFFER || target == glconst.DRAW_FRAMEBUFFER:
		return classFramebuffer
	default:
		return -1
	}
}

// bind validates target and name and records the binding. Caller holds d.mu.
func (d *Driver) bind(c class, target, name uint32) bool {
	if classOfTarget(target) != c {
		d.setError(glconst.INVALID_ENUM)
		return false
	}
	if name == 0 {
		if c == classTexture {
			delete(d.textures, unitTarget{d.activeUnit, target})
		} else {
			delete(d.bindings, target)
		}
		return true
	}
	obj := d.objects[c].ref(name)
	if obj == nil {
		d.setError(glconst.INVALID_OPERATION)
		return false
	}
	if c == classTexture {
		if obj.target != 0 && obj.target != target {
			d.setError(glconst.INVALID_OPERATION)
			return false
		}
		obj.target = target
		d.textures[unitTarget{d.activeUnit, target}] = name
		return true
	}
	d.bindings[target] = name
	return true
}

// BindBuffer implements glBindBuffer.
func (d *Driver) BindBuffer(target, buffer uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bind(classBuffer, target, buffer)
}

// BindTexture implements glBindTexture on the active texture unit. A
// texture takes the type of the first target it is bound to.
func (d *Driver) BindTexture(target, texture uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bind(classTexture, target, texture)
}

// BindVertexArray implements glBindVertexArray.
func (d *Driver) BindVertexArray(array uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if array != 0 {
		if _, ok := d.objects[classVertexArray].get(array); !ok {
			d.setError(glconst.INVALID_OPERATION)
			return
		}
	}
	d.vertexArray = array
}

// BindFramebuffer implements glBindFramebuffer. GL_FRAMEBUFFER sets both
// the read and the draw binding.
func (d *Driver) BindFramebuffer(target, framebuffer uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if target == glconst.FRAMEBUFFER {
		if d.bind(classFramebuffer, glconst.DRAW_FRAMEBUFFER, framebuffer) {
			d.bind(classFramebuffer, glconst.READ_FRAMEBUFFER, framebuffer)
		}
		return
	}
	d.bind(classFramebuffer, target, framebuffer)
}

// CheckFramebufferStatus implements glCheckFramebufferStatus. The default
// framebuffer is complete. softgl stores no image sizes or formats, so a
// framebuffer object is complete when it has at least one attachment and
// its attachments agree on being multisampled.
func (d *Driver) CheckFramebufferStatus(target uint32) uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if target == glconst.FRAMEBUFFER {
		target = glconst.DRAW_FRAMEBUFFER
	}
	if classOfTarget(target) != classFramebuffer {
		d.setError(glconst.INVALID_ENUM)
		return 0
	}
	fb := d.bindings[target]
	if fb == 0 {
		return glconst.FRAMEBUFFER_COMPLETE
	}
	obj := d.objects[classFramebuffer].ref(fb)
	if len(obj.attachments) == 0 {
		return glconst.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT
	}
	var single, multi bool
	for _, a := range obj.attachments {
		if a.textarget == glconst.TEXTURE_2D_MULTISAMPLE {
			multi = true
		} else {
			single = true
		}
	}
	if single && multi {
		return glconst.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE
	}
	return glconst.FRAMEBUFFER_COMPLETE
}

// Binding returns the name bound at target, 0 if none. For GL_FRAMEBUFFER
// it reports the draw binding and for texture targets the binding of the
// active texture unit.
func (d *Driver) Binding(target uint32) uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch {
	case target == glconst.FRAMEBUFFER:
		return d.bindings[glconst.DRAW_FRAMEBUFFER]
	case target == glconst.VERTEX_ARRAY:
		return d.vertexArray
	case classOfTarget(target) == classTexture:
		return d.textures[unitTarget{d.activeUnit, target}]
	default:
		return d.bindings[target]
	}
}
