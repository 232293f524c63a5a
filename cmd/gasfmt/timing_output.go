package main

import (
	"fmt"
	"io"

	"gasfmt/internal/driver"
)

func printTimings(out io.Writer, timings []driver.TimingPayload) {
	if out == nil {
		return
	}
	for _, t := range timings {
		name := t.Path
		if t.Kind == "total" {
			name = "total"
		}
		_, printErr := fmt.Fprintf(out, "%s %.1f ms", name, t.TotalMS)
		if printErr != nil {
			panic(printErr)
		}
		for _, p := range t.Phases {
			fmt.Fprintf(out, " | %s %.1f ms", p.Name, p.DurationMS)
		}
		fmt.Fprintln(out)
	}
}
