// Package workflow sequences the order-fulfillment stages and tracks
// their progress. The chained run short-circuits on the first failure;
// payment and delivery can also be re-invoked standalone with a
// caller-held order identifier.
package workflow

import "sync"

// Stage names one of the four workflow steps.
type Stage string

const (
	StageSearch   Stage = "search"
	StageOrder    Stage = "order"
	StagePayment  Stage = "payment"
	StageDelivery Stage = "delivery"
)

// AllStages lists the stages in workflow order.
var AllStages = []Stage{StageSearch, StageOrder, StagePayment, StageDelivery}

// Status is a stage's tracker flag.
type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
	StatusFailed  Status = "failed"
)

// Tracker holds one flag per stage. Flags are independent: a stage's
// flag changes only when that stage is invoked, so a later stage may
// read done while an earlier one is still pending. All mutation goes
// through MarkDone, MarkFailed and Reset.
type Tracker struct {
	mu    sync.Mutex
	flags map[Stage]Status
}

// NewTracker returns a tracker with every stage pending.
func NewTracker() *Tracker {
	t := &Tracker{}
	t.Reset()
	return t
}

// MarkDone flags stage as done. A fresh invocation may move a stage
// out of failed; no state blocks re-invocation.
func (t *Tracker) MarkDone(stage Stage) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.flags[stage] = StatusDone
}

// MarkFailed flags stage as failed.
func (t *Tracker) MarkFailed(stage Stage) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.flags[stage] = StatusFailed
}

// Reset returns every stage to pending.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.flags = map[Stage]Status{
		StageSearch:   StatusPending,
		StageOrder:    StatusPending,
		StagePayment:  StatusPending,
		StageDelivery: StatusPending,
	}
}

// Status returns the flag for stage.
func (t *Tracker) Status(stage Stage) Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.flags[stage]
}

// Snapshot copies all flags for display.
func (t *Tracker) Snapshot() map[Stage]Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[Stage]Status, len(t.flags))
	for s, st := range t.flags {
		out[s] = st
	}
	return out
}
