// Package gldriver implements driver.Driver on a real OpenGL 4.6 core
// context through github.com/go-gl/gl.
//
// The package needs cgo and is only built with the gldriver build tag:
//
//	go build -tags gldriver ./...
//
// The caller creates the window and makes its context current (for example
// with GLFW) before calling New. Every method must then be called from the
// goroutine that owns the context, usually after runtime.LockOSThread.
package gldriver
