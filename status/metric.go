package status

// Counter is a monotonically updated integer metric
// Zero value is ready to use
type Counter struct {
	v int64
}

// Add increments the counter by delta and returns the new value
func (c *Counter) Add(delta int64) int64 {
	c.v += delta
	return c.v
}

// Inc increments the counter by one
func (c *Counter) Inc() {
	c.v++
}

// Set overwrites the counter
func (c *Counter) Set(v int64) {
	c.v = v
}

// Load returns the current value
func (c *Counter) Load() int64 {
	return c.v
}

// Gauge is a float metric sampled each tick
type Gauge struct {
	v float64
}

// Set stores a value
func (g *Gauge) Set(v float64) {
	g.v = v
}

// Load returns the current value
func (g *Gauge) Load() float64 {
	return g.v
}

// MaxLabelLen is the maximum length for label metrics
const MaxLabelLen = 24

// Label is a short string metric, truncated to MaxLabelLen
type Label struct {
	v string
}

// Store sets the label, truncating to MaxLabelLen
func (l *Label) Store(val string) {
	if len(val) > MaxLabelLen {
		val = val[:MaxLabelLen]
	}
	l.v = val
}

// Load returns the current label
func (l *Label) Load() string {
	return l.v
}
