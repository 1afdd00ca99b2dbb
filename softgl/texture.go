package softgl

import (
	"slices"

	"github.com/gogpu/glw/internal/glconst"
)

const (
	// maxTextureUnits is GL_MAX_COMBINED_TEXTURE_IMAGE_UNITS, the minimum
	// OpenGL 4.6 requires.
	maxTextureUnits = 80
	// maxColorAttachments is GL_MAX_COLOR_ATTACHMENTS.
	maxColorAttachments = 8
)

// attachment is an image attached to a framebuffer.
type attachment struct {
	texture   uint32
	textarget uint32
	level     int32
}

var (
	minFilters = []int32{
		glconst.NEAREST, glconst.LINEAR,
		glconst.NEAREST_MIPMAP_NEAREST, glconst.LINEAR_MIPMAP_NEAREST,
		glconst.NEAREST_MIPMAP_LINEAR, glconst.LINEAR_MIPMAP_LINEAR,
	}
	wrapModes = []int32{
		glconst.REPEAT, glconst.CLAMP_TO_EDGE, glconst.CLAMP_TO_BORDER,
		glconst.MIRRORED_REPEAT, glconst.MIRROR_CLAMP_TO_EDGE,
	}
)

// ActiveTexture implements glActiveTexture.
func (d *Driver) ActiveTexture(texture uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if texture < glconst.TEXTURE0 || texture >= glconst.TEXTURE0+maxTextureUnits {
		d.setError(glconst.INVALID_ENUM)
		return
	}
	d.activeUnit = texture - glconst.TEXTURE0
}

// boundTexture returns the texture bound to target on the active unit.
// softgl has no default texture objects, so with nothing bound it records
// INVALID_OPERATION. Caller holds d.mu.
func (d *Driver) boundTexture(target uint32) (*genObject, bool) {
	if classOfTarget(target) != classTexture {
		d.setError(glconst.INVALID_ENUM)
		return nil, false
	}
	obj := d.objects[classTexture].ref(d.textures[unitTarget{d.activeUnit, target}])
	if obj == nil {
		d.setError(glconst.INVALID_OPERATION)
		return nil, false
	}
	return obj, true
}

func isMultisample(target uint32) bool {
	return target == glconst.TEXTURE_2D_MULTISAMPLE || target == glconst.TEXTURE_2D_MULTISAMPLE_ARRAY
}

// TexParameteri implements glTexParameteri for the filter and wrap
// parameters.
func (d *Driver) TexParameteri(target, pname uint32, param int32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	obj, ok := d.boundTexture(target)
	if !ok {
		return
	}
	rect := target == glconst.TEXTURE_RECTANGLE
	var valid bool
	switch pname {
	case glconst.TEXTURE_MIN_FILTER:
		valid = slices.Contains(minFilters, param) &&
			(!rect || param == glconst.NEAREST || param == glconst.LINEAR)
	case glconst.TEXTURE_MAG_FILTER:
		valid = param == glconst.NEAREST || param == glconst.LINEAR
	case glconst.TEXTURE_WRAP_S, glconst.TEXTURE_WRAP_T, glconst.TEXTURE_WRAP_R:
		valid = slices.Contains(wrapModes, param) &&
			(!rect || param == glconst.CLAMP_TO_EDGE || param == glconst.CLAMP_TO_BORDER)
	}
	// Multisample textures have no sampler state.
	if !valid || isMultisample(target) {
		d.setError(glconst.INVALID_ENUM)
		return
	}
	if obj.params == nil {
		obj.params = make(map[uint32]int32)
	}
	obj.params[pname] = param
}

// GetTexParameteriv implements glGetTexParameteriv for the filter and wrap
// parameters.
func (d *Driver) GetTexParameteriv(target, pname uint32) int32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	obj, ok := d.boundTexture(target)
	if !ok {
		return 0
	}
	if v, ok := obj.params[pname]; ok {
		return v
	}
	rect := target == glconst.TEXTURE_RECTANGLE
	switch pname {
	case glconst.TEXTURE_MIN_FILTER:
		if rect {
			return glconst.LINEAR
		}
		return glconst.NEAREST_MIPMAP_LINEAR
	case glconst.TEXTURE_MAG_FILTER:
		return glconst.LINEAR
	case glconst.TEXTURE_WRAP_S, glconst.TEXTURE_WRAP_T, glconst.TEXTURE_WRAP_R:
		if rect {
			return glconst.CLAMP_TO_EDGE
		}
		return glconst.REPEAT
	default:
		d.setError(glconst.INVALID_ENUM)
		return 0
	}
}

func isAttachmentPoint(a uint32) bool {
	switch {
	case a >= glconst.COLOR_ATTACHMENT0 && a < glconst.COLOR_ATTACHMENT0+maxColorAttachments:
		return true
	default:
		return a == glconst.DEPTH_ATTACHMENT || a == glconst.STENCIL_ATTACHMENT || a == glconst.DEPTH_STENCIL_ATTACHMENT
	}
}

// FramebufferTexture2D implements glFramebufferTexture2D for 2D,
// rectangle and 2D multisample textures. Texture 0 detaches.
func (d *Driver) FramebufferTexture2D(target, point, textarget, texture uint32, level int32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if target == glconst.FRAMEBUFFER {
		target = glconst.DRAW_FRAMEBUFFER
	}
	if classOfTarget(target) != classFramebuffer || !isAttachmentPoint(point) {
		d.setError(glconst.INVALID_ENUM)
		return
	}
	fb := d.objects[classFramebuffer].ref(d.bindings[target])
	if fb == nil {
		// The default framebuffer has no attachment points.
		d.setError(glconst.INVALID_OPERATION)
		return
	}
	points := []uint32{point}
	if point == glconst.DEPTH_STENCIL_ATTACHMENT {
		points = []uint32{glconst.DEPTH_ATTACHMENT, glconst.STENCIL_ATTACHMENT}
	}
	if texture == 0 {
		for _, p := range points {
			delete(fb.attachments, p)
		}
		return
	}

	switch textarget {
	case glconst.TEXTURE_2D, glconst.TEXTURE_RECTANGLE, glconst.TEXTURE_2D_MULTISAMPLE:
	default:
		d.setError(glconst.INVALID_ENUM)
		return
	}
	tex := d.objects[classTexture].ref(texture)
	if tex == nil || tex.target != textarget {
		d.setError(glconst.INVALID_OPERATION)
		return
	}
	if level < 0 || (level != 0 && textarget != glconst.TEXTURE_2D) {
		d.setError(glconst.INVALID_VALUE)
		return
	}
	if fb.attachments == nil {
		fb.attachments = make(map[uint32]attachment)
	}
	for _, p := range points {
		fb.attachments[p] = attachment{texture: texture, textarget: textarget, level: level}
	}
}

// Attachment returns the texture attached at point of framebuffer, 0 if
// none.
func (d *Driver) Attachment(framebuffer, point uint32) uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	fb := d.objects[classFramebuffer].ref(framebuffer)
	if fb == nil {
		return 0
	}
	return fb.attachments[point].texture
}

// releaseTexture unbinds a deleted texture from every unit and detaches it
// from every framebuffer. Caller holds d.mu.
func (d *Driver) releaseTexture(texture uint32) {
	for key, bound := range d.textures {
		if bound == texture {
			delete(d.textures, key)
		}
	}
	fbs := &d.objects[classFramebuffer]
	for i := range fbs.entries {
		for p, a := range fbs.entries[i].value.attachments {
			if a.texture == texture {
				delete(fbs.entries[i].value.attachments, p)
			}
		}
	}
}

// GetIntegerv implements glGetIntegerv for the state softgl tracks.
func (d *Driver) GetIntegerv(pname uint32) int32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch pname {
	case glconst.MAX_COMBINED_TEXTURE_IMAGE_UNITS:
		return maxTextureUnits
	case glconst.MAX_COLOR_ATTACHMENTS:
		return maxColorAttachments
	case glconst.ACTIVE_TEXTURE:
		return int32(glconst.TEXTURE0 + d.activeUnit)
	case glconst.CURRENT_PROGRAM:
		return int32(d.current)
	case glconst.VERTEX_ARRAY_BINDING:
		return int32(d.vertexArray)
	default:
		d.setError(glconst.INVALID_ENUM)
		return 0
	}
}
