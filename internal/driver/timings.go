package driver

import "gasfmt/internal/observ"

// TimingPayload is the JSON shape of one timing report.
type TimingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// CollectTimings returns one payload per timed file followed by the
// aggregate over all of them. Results without timings are ignored.
func CollectTimings(results []FormatResult) []TimingPayload {
	var (
		out     []TimingPayload
		reports []observ.Report
	)
	for _, r := range results {
		if r.Timing == nil {
			continue
		}
		reports = append(reports, *r.Timing)
		out = append(out, TimingPayload{
			Kind:    "file",
			Path:    r.Path,
			TotalMS: r.Timing.TotalMS,
			Phases:  r.Timing.Phases,
		})
	}
	if len(reports) == 0 {
		return nil
	}
	total := observ.Merge(reports...)
	return append(out, TimingPayload{Kind: "total", TotalMS: total.TotalMS, Phases: total.Phases})
}
