// internal/analysis/observer.go
package analysis

// Observer receives orchestration progress. It is called from a single
// goroutine (the collector, or the serial loop). Presence or absence of a
// real observer changes observability only, never results.
type Observer interface {
	Start(total int)
	Advance(species, genomeID string)
	Done()
}

// NopObserver is the default: silence.
type NopObserver struct{}

func (NopObserver) Start(int)              {}
func (NopObserver) Advance(string, string) {}
func (NopObserver) Done()                  {}
