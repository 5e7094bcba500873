// core/primer/spec.go
package primer

// Spec describes one primer pair (plus an optional internal probe) and the
// product-length window expected of a real amplification. A Spec is
// immutable for the duration of an analysis run.
type Spec struct {
	ID          string
	Forward     string
	Reverse     string
	Probe       string
	MinProduct  int
	MaxProduct  int
	MaxMismatch int
}

// HasProbe reports whether probe metrics should be computed at all.
func (s Spec) HasProbe() bool { return s.Probe != "" }
