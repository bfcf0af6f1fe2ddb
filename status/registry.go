package status

import "fmt"

// Registry is the central metrics facade
// Systems cache pointers at construction; update loops write through them
type Registry struct {
	Counters *MetricMap[Counter]
	Gauges   *MetricMap[Gauge]
	Labels   *MetricMap[Label]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[Counter](),
		Gauges:   NewMetricMap[Gauge](),
		Labels:   NewMetricMap[Label](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Counters.Count() + r.Gauges.Count() + r.Labels.Count()
}

// Lines formats every metric as "key=value", counters first, for the debug overlay
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Counters.Range(func(k string, c *Counter) {
		lines = append(lines, fmt.Sprintf("%s=%d", k, c.Load()))
	})
	r.Gauges.Range(func(k string, g *Gauge) {
		lines = append(lines, fmt.Sprintf("%s=%.2f", k, g.Load()))
	})
	r.Labels.Range(func(k string, l *Label) {
		lines = append(lines, fmt.Sprintf("%s=%s", k, l.Load()))
	})
	return lines
}
