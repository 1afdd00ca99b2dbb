package softgl

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/gogpu/glw/driver"
	"github.com/gogpu/glw/internal/cache"
	"github.com/gogpu/glw/internal/glconst"
)

// Driver is a software implementation of driver.Driver.
//
// It tracks object names, bindings, labels and error flags the way an
// OpenGL 4.6 core context does, and compiles shader sources written in WGSL
// with naga. It does not rasterize anything.
type Driver struct {
	mu  sync.Mutex
	opt options
	log *slog.Logger

	// objects holds one table per object class created with glGen*.
	objects [numClasses]table[genObject]

	// Shaders and programs share one namespace, as in OpenGL.
	programObjects table[any]

	// bindings maps a buffer or framebuffer target to the bound name.
	bindings map[uint32]uint32
	// textures maps a texture unit and target to the bound texture.
	textures    map[unitTarget]uint32
	activeUnit  uint32
	vertexArray uint32
	current     uint32

	labels  map[labelKey]string
	errs    []uint32
	modules *cache.Cache[moduleKey, *module]
}

var _ driver.Driver = (*Driver)(nil)

// class indexes Driver.objects.
type class int

const (
	classBuffer class = iota
	classTexture
	classVertexArray
	classFramebuffer
	classRenderbuffer
	classSampler
	classQuery
	numClasses
)

// identifiers maps object classes onto their glObjectLabel identifiers.
var identifiers = [numClasses]uint32{
	classBuffer:       glconst.BUFFER,
	classTexture:      glconst.TEXTURE,
	classVertexArray:  glconst.VERTEX_ARRAY,
	classFramebuffer:  glconst.FRAMEBUFFER,
	classRenderbuffer: glconst.RENDERBUFFER,
	classSampler:      glconst.SAMPLER,
	classQuery:        glconst.QUERY,
}

// genObject is the state of a name created by glGen*.
type genObject struct {
	// target is the binding target a texture was first bound to; OpenGL
	// fixes a texture's type on first bind.
	target uint32
	// params holds the glTexParameteri state of a texture.
	params map[uint32]int32
	// attachments maps a framebuffer attachment point to its image.
	attachments map[uint32]attachment
}

type unitTarget struct {
	unit   uint32
	target uint32
}

type labelKey struct {
	identifier uint32
	name       uint32
}

// New creates a Driver.
func New(opts ...Option) *Driver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	d := &Driver{
		opt:      o,
		log:      o.logger,
		bindings: make(map[uint32]uint32),
		textures: make(map[unitTarget]uint32),
		labels:   make(map[labelKey]string),
		modules:  cache.New[moduleKey, *module](o.cacheSize),
	}
	for i := range d.objects {
		d.objects[i].limit = o.maxNames
	}
	d.programObjects.limit = o.maxNames
	return d
}

// setError records code. Like OpenGL, each code is reported once until
// GetError clears it.
func (d *Driver) setError(code uint32) {
	if !slices.Contains(d.errs, code) {
		d.errs = append(d.errs, code)
	}
}

// GetError returns and clears the oldest recorded error flag.
func (d *Driver) GetError() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.errs) == 0 {
		return glconst.NO_ERROR
	}
	code := d.errs[0]
	d.errs = d.errs[1:]
	return code
}

// GetString implements glGetString.
func (d *Driver) GetString(name uint32) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch name {
	case glconst.VENDOR:
		return "gogpu"
	case glconst.RENDERER:
		return d.opt.renderer
	case glconst.VERSION:
		return "4.6.0 softgl"
	case glconst.SHADING_LANGUAGE_VERSION:
		return "WGSL"
	default:
		d.setError(glconst.INVALID_ENUM)
		return ""
	}
}

func (d *Driver) gen(c class, names []uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	t := &d.objects[c]
	for i := range names {
		names[i] = t.alloc(genObject{})
		if names[i] == 0 {
			d.setError(glconst.OUT_OF_MEMORY)
		}
	}
	d.log.Debug("softgl: gen", "class", identifiers[c], "count", len(names), "live", t.len())
}

func (d *Driver) delete(c class, names []uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	t := &d.objects[c]
	for _, n := range names {
		if !t.release(n) {
			continue // unused names and 0 are silently ignored
		}
		delete(d.labels, labelKey{identifiers[c], n})
		for target, bound := range d.bindings {
			if bound == n && classOfTarget(target) == c {
				delete(d.bindings, target)
			}
		}
		switch {
		case c == classTexture:
			d.releaseTexture(n)
		case c == classVertexArray && d.vertexArray == n:
			d.vertexArray = 0
		}
	}
}

func (d *Driver) GenBuffers(names []uint32)          { d.gen(classBuffer, names) }
func (d *Driver) DeleteBuffers(names []uint32)       { d.delete(classBuffer, names) }
func (d *Driver) GenTextures(names []uint32)         { d.gen(classTexture, names) }
func (d *Driver) DeleteTextures(names []uint32)      { d.delete(classTexture, names) }
func (d *Driver) GenVertexArrays(names []uint32)     { d.gen(classVertexArray, names) }
func (d *Driver) DeleteVertexArrays(names []uint32)  { d.delete(classVertexArray, names) }
func (d *Driver) GenFramebuffers(names []uint32)     { d.gen(classFramebuffer, names) }
func (d *Driver) DeleteFramebuffers(names []uint32)  { d.delete(classFramebuffer, names) }
func (d *Driver) GenRenderbuffers(names []uint32)    { d.gen(classRenderbuffer, names) }
func (d *Driver) DeleteRenderbuffers(names []uint32) { d.delete(classRenderbuffer, names) }
func (d *Driver) GenSamplers(names []uint32)         { d.gen(classSampler, names) }
func (d *Driver) DeleteSamplers(names []uint32)      { d.delete(classSampler, names) }
func (d *Driver) GenQueries(names []uint32)          { d.gen(classQuery, names) }
func (d *Driver) DeleteQueries(names []uint32)       { d.delete(classQuery, names) }

// Live reports how many names of the given glObjectLabel identifier are
// live. Shaders and programs are counted together under either identifier.
func (d *Driver) Live(identifier uint32) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	if identifier == glconst.SHADER || identifier == glconst.PROGRAM {
		return d.programObjects.len()
	}
	if c, ok := classOfIdentifier(identifier); ok {
		return d.objects[c].len()
	}
	return 0
}

// ObjectLabel implements glObjectLabel.
func (d *Driver) ObjectLabel(identifier, name uint32, label string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.checkObject(identifier, name) {
		return
	}
	key := labelKey{identifier, name}
	if label == "" {
		delete(d.labels, key)
		return
	}
	d.labels[key] = label
}

// GetObjectLabel implements glGetObjectLabel.
func (d *Driver) GetObjectLabel(identifier, name uint32) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.checkObject(identifier, name) {
		return ""
	}
	return d.labels[labelKey{identifier, name}]
}

// checkObject reports whether name is live under identifier and records
// the error OpenGL raises when it is not. Caller holds d.mu.
func (d *Driver) checkObject(identifier, name uint32) bool {
	var ok bool
	switch identifier {
	case glconst.SHADER:
		_, ok = d.shader(name)
	case glconst.PROGRAM:
		_, ok = d.program(name)
	default:
		c, known := classOfIdentifier(identifier)
		if !known {
			d.setError(glconst.INVALID_ENUM)
			return false
		}
		_, ok = d.objects[c].get(name)
	}
	if !ok {
		d.setError(glconst.INVALID_VALUE)
	}
	return ok
}

func classOfIdentifier(identifier uint32) (class, bool) {
	for c, id := range identifiers {
		if id == identifier {
			return class(c), true
		}
	}
	return 0, false
}

// CacheStats reports hits and misses of the compiled module cache.
func (d *Driver) CacheStats() cache.Stats {
	return d.modules.Stats()
}
