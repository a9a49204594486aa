package vtest

import "github.com/vango-dev/accordion/pkg/accordion"

// Transition is one recorded transition start.
type Transition struct {
	Item     int
	From, To float64
}

// Recorder is an accordion.Observer that records notifications.
type Recorder struct {
	Started    []Transition
	Finished   []int
	Dropped    []int
	Recomputes int
	Disabled   bool
}

var _ accordion.Observer = (*Recorder)(nil)

// TransitionStarted implements accordion.Observer.
func (r *Recorder) TransitionStarted(it *accordion.Item, from, to float64) {
	r.Started = append(r.Started, Transition{Item: it.Index(), From: from, To: to})
}

// TransitionFinished implements accordion.Observer.
func (r *Recorder) TransitionFinished(it *accordion.Item) {
	r.Finished = append(r.Finished, it.Index())
}

// TransitionDropped implements accordion.Observer.
func (r *Recorder) TransitionDropped(it *accordion.Item) {
	r.Dropped = append(r.Dropped, it.Index())
}

// Recomputed implements accordion.Observer.
func (r *Recorder) Recomputed(_ float64, disabled bool) {
	r.Recomputes++
	r.Disabled = disabled
}

// Reset clears all recorded notifications.
func (r *Recorder) Reset() {
	*r = Recorder{}
}
