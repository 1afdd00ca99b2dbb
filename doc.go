// Package glw is a type-safe layer over the OpenGL object API.
//
// # Overview
//
// OpenGL hands out objects as bare uint32 names and accepts bare uint32
// enum constants. glw keeps that wire format but gives every value a type,
// so a buffer name cannot be passed where a texture is expected and name 0
// never stands for an object. Shader compile and program link status are
// part of the type as well and cannot be assumed before they are queried.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/glw"
//		"github.com/gogpu/glw/softgl"
//	)
//
//	c := glw.NewContext(softgl.New())
//
//	vs, err := glw.CreateShader(c, glw.VertexShader{})
//	if err != nil {
//		return err
//	}
//	res, err := glw.QueryCompileStatus(glw.Compile(vs, source))
//	if err != nil {
//		return err
//	}
//	compiled, ok := res.Compiled()
//	if !ok {
//		bad, _ := res.Uncompiled()
//		log, _ := bad.InfoLog()
//		bad.Delete()
//		return errors.New(log)
//	}
//
// # Names
//
// Name[K] is the name of a live object of kind K and is never 0.
// OptionName[K] may be absent. Both occupy one uint32, so a []Name[K] is
// handed to the driver without copying (Wrap) and a []OptionName[K] filled
// by the driver is checked in one pass (Unwrap).
//
// # Enumerations and tags
//
// Each closed family of driver constants is a named integer type
// (ShaderKind, BufferTarget, ...) whose values are the driver's own. Where
// it pays to know a member at compile time there is also a zero-size tag
// type per member (VertexShader, Buffer, Compiled, ...). Value converts a
// tag to its dynamic value, Narrow goes the other way and can fail, and
// Decode validates a raw value coming back from the driver.
//
// # Shader and program lifecycle
//
// Shader[K, S] and Program[S] carry their status S in the type. Compile
// and Link return an Unknown status; QueryCompileStatus and
// QueryLinkStatus resolve it. Each step consumes its input, and reusing a
// consumed value panics.
//
// # Locations
//
// Location[K] and OptionLocation[K] wrap attribute and uniform locations the
// way Name and OptionName wrap object names; the driver's -1 is the absent
// option. A uniform location carries its value type:
//
//	loc, ok := glw.GetUniformLocation[glw.Mat4](prog, "transform").Get()
//	if ok {
//		err = glw.SetUniform(prog, loc, m)
//	}
//
// # Drivers
//
// glw calls a driver.Driver. The softgl package is a pure Go driver used by
// tests and tools; gldriver binds a real OpenGL 4.6 context through go-gl.
package glw
