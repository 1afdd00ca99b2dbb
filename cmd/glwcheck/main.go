// Command glwcheck compiles and links the WGSL programs listed in a YAML
// manifest with the softgl driver and reports the result of every stage.
//
// Usage:
//
//	glwcheck [flags] manifest.yaml
//
// A manifest looks like:
//
//	renderer: my-renderer
//	programs:
//	  - name: sprite
//	    vertex: sprite.vert.wgsl
//	    fragment: sprite.frag.wgsl
//	  - name: blur
//	    compute: blur.wgsl
//
// Shader paths are relative to the manifest. The exit status is 1 if any
// program fails and 2 for usage or manifest errors.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("glwcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	glsl := fs.Bool("glsl", false, "print the GLSL 4.30 translation of every compiled stage")
	validate := fs.Bool("validate", false, "run the naga IR validator on every module")
	jobs := fs.Int("j", 1, "number of programs to check at once, 0 for one per CPU")
	verbose := fs.Bool("v", false, "log driver activity to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: glwcheck [flags] manifest.yaml")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	if *jobs <= 0 {
		*jobs = runtime.GOMAXPROCS(0)
	}

	m, err := LoadManifest(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "glwcheck: %v\n", err)
		return 2
	}

	opt := checkOptions{glsl: *glsl, validate: *validate, jobs: *jobs}
	if *verbose {
		opt.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	results, err := newChecker(m, opt).run()
	writeReport(stdout, results, *glsl)
	if err != nil {
		fmt.Fprintf(stderr, "glwcheck: %v\n", err)
		return 1
	}
	for _, r := range results {
		if !r.OK() {
			return 1
		}
	}
	return 0
}
