package main

import (
	"fmt"
	"io"

	"github.com/djdv/go-pagesim"
	"github.com/fatih/color"
)

type palette struct {
	header, valid,
	invalid, pointer *color.Color
}

func newPalette(noColor bool) palette {
	p := palette{
		header:  color.New(color.Bold),
		valid:   color.New(color.FgGreen),
		invalid: color.New(color.Faint),
		pointer: color.New(color.FgCyan, color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{p.header, p.valid, p.invalid, p.pointer} {
			c.DisableColor()
		}
	}
	return p
}

// writeProcessState prints the page table and frames of a process.
func writeProcessState(w io.Writer, s pagesim.Snapshot, p palette) error {
	const rule = "---------------------------------------------"
	if _, err := p.header.Fprintf(w, "--------------Process %d----------------\n", s.PID); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Page Table"); err != nil {
		return err
	}
	for vpage, entry := range s.Pages {
		var err error
		if entry.Valid {
			_, err = p.valid.Fprintf(w,
				"   Page %d(valid): Frame %d Used %t count %d Time Stamp %d\n",
				vpage, entry.FrameNum, entry.Used, entry.Count, entry.Timestamp)
		} else {
			_, err = p.invalid.Fprintf(w, "   Page %d is invalid (i.e not loaded)\n", vpage)
		}
		if err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Allocated frames (max is %d) (frame pointer is %d)\n",
		s.Capacity, s.FramePtr); err != nil {
		return err
	}
	for slot, frame := range s.AllocatedFrames {
		c := p.valid
		if slot == s.FramePtr {
			c = p.pointer
		}
		if _, err := c.Fprintf(w, " %d", frame); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n%s\n", rule)
	return err
}
