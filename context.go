package glw

import (
	"log/slog"
	"strings"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/glw/driver"
)

// Context is the typed view of one driver context.
//
// A Context is not safe for concurrent use. Like the OpenGL context it
// wraps, it belongs to one goroutine at a time.
type Context struct {
	drv    driver.Driver
	log    *slog.Logger
	check  bool
	labels bool

	// err is the first driver error seen since the last call to Err.
	err error
}

// NewContext returns a Context that issues calls to d.
func NewContext(d driver.Driver, opts ...Option) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	return &Context{
		drv:    d,
		log:    o.logger,
		check:  o.errorCheck,
		labels: o.labels,
	}
}

// Driver returns the underlying driver for calls glw does not wrap.
func (c *Context) Driver() driver.Driver { return c.drv }

// GetString returns the driver string for p.
func (c *Context) GetString(p StringParam) string {
	return c.drv.GetString(uint32(p))
}

// Err returns the first driver error recorded since the previous call and
// clears it. It is always nil unless WithErrorCheck is enabled.
func (c *Context) Err() error {
	err := c.err
	c.err = nil
	return err
}

// checkError drains glGetError after op. It returns the first error code
// as a *DriverError, or nil.
func (c *Context) checkError(op string) error {
	if !c.check {
		return nil
	}
	var first error
	// Drivers queue at most one flag per error kind.
	for range numErrorCodes {
		raw := c.drv.GetError()
		if raw == uint32(ErrorCodeNone) {
			break
		}
		code := ErrorCode(raw)
		c.log.Warn("glw: driver error", "op", op, "code", code)
		if first == nil {
			first = &DriverError{Op: op, Code: code}
		}
		if !code.Valid() {
			break
		}
	}
	if first != nil && c.err == nil {
		c.err = first
	}
	return first
}

// AdapterInfo describes the adapter behind the context in the gpucontext
// vocabulary shared with the rest of the gogpu stack. The type is guessed
// from GL_RENDERER and GL_VENDOR.
func (c *Context) AdapterInfo() gpucontext.AdapterInfo {
	renderer := c.GetString(StringParamRenderer)
	vendor := c.GetString(StringParamVendor)
	return gpucontext.AdapterInfo{
		Name: renderer,
		Type: classifyAdapter(vendor, renderer),
	}
}

var softwareRenderers = []string{"llvmpipe", "softpipe", "swiftshader", "software", "swrast", "softgl"}

var integratedRenderers = []string{"intel", "iris", "uhd graphics", "hd graphics", "apple m", "adreno", "mali", "radeon(tm) graphics", "vega"}

func classifyAdapter(vendor, renderer string) gpucontext.AdapterType {
	r := strings.ToLower(renderer)
	if r == "" {
		return gpucontext.AdapterTypeUnknown
	}
	for _, s := range softwareRenderers {
		if strings.Contains(r, s) {
			return gpucontext.AdapterTypeSoftware
		}
	}
	for _, s := range integratedRenderers {
		if strings.Contains(r, s) {
			return gpucontext.AdapterTypeIntegrated
		}
	}
	v := strings.ToLower(vendor)
	if strings.Contains(v, "nvidia") || strings.Contains(v, "amd") || strings.Contains(v, "ati technologies") {
		return gpucontext.AdapterTypeDiscrete
	}
	return gpucontext.AdapterTypeUnknown
}
