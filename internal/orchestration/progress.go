package orchestration

// ProgressCounter tracks how many of a fixed number of probes have finished.
type ProgressCounter struct {
	total  int
	done   int
	failed int
}

// NewProgressCounter creates a counter for total probes. Returns nil if
// total <= 0.
func NewProgressCounter(total int) *ProgressCounter {
	if total <= 0 {
		return nil
	}
	return &ProgressCounter{total: total}
}

// Update records a finished probe and returns the completed fraction.
func (c *ProgressCounter) Update(u LimitUpdate) float64 {
	if c.done < c.total {
		c.done++
	}
	if u.Err != nil {
		c.failed++
	}
	return c.Fraction()
}

// Fraction returns the completed fraction in [0, 1].
func (c *ProgressCounter) Fraction() float64 {
	return float64(c.done) / float64(c.total)
}

// Done returns the number of finished probes.
func (c *ProgressCounter) Done() int { return c.done }

// Failed returns the number of probes that reported an error.
func (c *ProgressCounter) Failed() int { return c.failed }

// Total returns the number of probes being tracked.
func (c *ProgressCounter) Total() int { return c.total }

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(updates <-chan LimitUpdate) {
	for range updates {
	}
}
