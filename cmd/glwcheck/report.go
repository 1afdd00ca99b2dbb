package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles renders for one writer. Output that is not a terminal gets plain
// text.
type styles struct {
	title lipgloss.Style
	ok    lipgloss.Style
	fail  lipgloss.Style
	dim   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		ok:    r.NewStyle().Foreground(lipgloss.Color("#90EE90")),
		fail:  r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		dim:   r.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

// writeReport prints one block per program followed by a summary line.
func writeReport(w io.Writer, results []ProgramResult, glsl bool) {
	st := newStyles(w)
	failed := 0
	for _, r := range results {
		mark := st.ok.Render("ok")
		if !r.OK() {
			mark = st.fail.Render("FAIL")
			failed++
		}
		fmt.Fprintf(w, "%s %s\n", mark, st.title.Render(r.Name))

		for _, s := range r.Stages {
			if s.Compiled {
				fmt.Fprintf(w, "  %-8s %s %s\n", s.Kind, s.Path, st.dim.Render(fmt.Sprintf("(%d SPIR-V words)", s.SPIRVWords)))
			} else {
				fmt.Fprintf(w, "  %-8s %s %s\n", s.Kind, s.Path, st.fail.Render("compile failed"))
				writeLog(w, st, s.Log)
			}
			if glsl && s.GLSL != "" {
				writeLog(w, st, s.GLSL)
			}
		}

		switch {
		case r.Linked:
			detail := fmt.Sprintf("binary %d bytes, %d attributes", r.BinaryBytes, r.Attributes)
			if !r.Reloaded {
				detail += ", binary did not reload"
			}
			fmt.Fprintf(w, "  linked %s\n", st.dim.Render(detail))
		case r.Log != "":
			fmt.Fprintf(w, "  %s\n", st.fail.Render("link failed"))
			writeLog(w, st, r.Log)
		}
	}

	summary := fmt.Sprintf("%d programs, %d failed", len(results), failed)
	if failed > 0 {
		fmt.Fprintln(w, st.fail.Render(summary))
		return
	}
	fmt.Fprintln(w, st.ok.Render(summary))
}

func writeLog(w io.Writer, st styles, log string) {
	for line := range strings.SplitSeq(strings.TrimRight(log, "\n"), "\n") {
		fmt.Fprintf(w, "    %s\n", st.dim.Render(line))
	}
}
