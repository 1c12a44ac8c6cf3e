package diagnostic

// Collector accumulates diagnostics in report order
type Collector struct {
	Diagnostics []*Diagnostic
}

// Report appends d
func (c *Collector) Report(d *Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// Count returns number of diagnostics with the given kind
func (c *Collector) Count(kind Kind) int {
	count := 0
	for _, d := range c.Diagnostics {
		if d.Kind == kind {
			count++
		}
	}
	return count
}

// Reset drops collected diagnostics
func (c *Collector) Reset() {
	c.Diagnostics = nil
}
