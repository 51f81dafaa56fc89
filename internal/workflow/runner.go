package workflow

import (
	"context"
	"fmt"

	"orderflow/internal/catalog"
	"orderflow/internal/model"
)

// Stages is the set of stage operations the runner sequences. It is
// satisfied both by the in-process services and by the HTTP client, so
// the same chain logic drives either.
type Stages interface {
	Search(ctx context.Context, name string) (*catalog.Restaurant, error)
	PlaceOrder(ctx context.Context, restaurantName, item string) (model.Order, error)
	ProcessPayment(ctx context.Context, orderID string, amount float64, forceFail bool) (model.Payment, error)
	ConfirmDelivery(ctx context.Context, orderID string) (model.Delivery, error)
}

// StageError names the stage whose invocation failed. The underlying
// stage error is carried verbatim, never translated.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Runner drives a workflow run: it invokes stages, updates the tracker,
// and accumulates the receipt. A Runner tracks a single caller's run
// and is not safe for concurrent use; the stages behind it are.
type Runner struct {
	stages  Stages
	tracker *Tracker
	receipt Receipt
	status  func(string)
}

// NewRunner creates a runner over stages. status receives free-text
// progress messages and may be nil.
func NewRunner(stages Stages, status func(string)) *Runner {
	if status == nil {
		status = func(string) {}
	}
	return &Runner{
		stages:  stages,
		tracker: NewTracker(),
		status:  status,
	}
}

// Tracker exposes the per-stage flags for display.
func (r *Runner) Tracker() *Tracker { return r.tracker }

// Receipt returns the current receipt snapshot.
func (r *Runner) Receipt() Receipt { return r.receipt }

// Reset clears the tracker and receipt for a fresh run.
func (r *Runner) Reset() {
	r.tracker.Reset()
	r.receipt = Receipt{}
}

// Search resolves a restaurant and flags the search stage.
func (r *Runner) Search(ctx context.Context, name string) (*catalog.Restaurant, error) {
	r.status(fmt.Sprintf("Searching for restaurant: %s ...", name))
	rest, err := r.stages.Search(ctx, name)
	if err != nil {
		return nil, r.fail(StageSearch, err)
	}
	r.tracker.MarkDone(StageSearch)
	r.status(fmt.Sprintf("Found restaurant: %s", rest.Name))
	return rest, nil
}

// Run executes the chained flow: place order, then pay with the
// order's amount, then confirm delivery. The chain aborts on the first
// failure; later stages are never invoked for that run.
func (r *Runner) Run(ctx context.Context, restaurantName, item string, forceFail bool) (Receipt, error) {
	r.status(fmt.Sprintf("Placing order for %s at %s ...", item, restaurantName))
	ord, err := r.stages.PlaceOrder(ctx, restaurantName, item)
	if err != nil {
		return r.receipt, r.fail(StageOrder, err)
	}
	r.tracker.MarkDone(StageOrder)
	r.receipt.SetOrder(ord)
	r.status(fmt.Sprintf("Order placed: %s, amount $%v", ord.OrderID, ord.Amount))

	if _, err := r.Pay(ctx, ord.OrderID, ord.Amount, forceFail); err != nil {
		return r.receipt, err
	}

	if _, err := r.Deliver(ctx, ord.OrderID); err != nil {
		return r.receipt, err
	}

	return r.receipt, nil
}

// Pay invokes the payment stage standalone with a caller-held order
// identifier and amount. A declined attempt may simply be retried.
func (r *Runner) Pay(ctx context.Context, orderID string, amount float64, forceFail bool) (Receipt, error) {
	r.status(fmt.Sprintf("Processing payment of $%v ...", amount))
	pay, err := r.stages.ProcessPayment(ctx, orderID, amount, forceFail)
	if err != nil {
		return r.receipt, r.fail(StagePayment, err)
	}
	r.tracker.MarkDone(StagePayment)
	r.receipt.SetPayment(pay)
	r.status(fmt.Sprintf("Payment successful: %s", pay.PaymentID))
	return r.receipt, nil
}

// Deliver invokes the delivery stage standalone with a caller-held
// order identifier.
func (r *Runner) Deliver(ctx context.Context, orderID string) (Receipt, error) {
	r.status(fmt.Sprintf("Confirming delivery for %s ...", orderID))
	del, err := r.stages.ConfirmDelivery(ctx, orderID)
	if err != nil {
		return r.receipt, r.fail(StageDelivery, err)
	}
	r.tracker.MarkDone(StageDelivery)
	r.receipt.SetDelivery(del)
	r.status(fmt.Sprintf("Delivered at %s", del.DeliveredAt.Format("2006-01-02 15:04:05")))
	return r.receipt, nil
}

func (r *Runner) fail(stage Stage, err error) error {
	r.tracker.MarkFailed(stage)
	r.status(fmt.Sprintf("%s failed: %s", stage, err))
	return &StageError{Stage: stage, Err: err}
}
