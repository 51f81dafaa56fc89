package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderflow/internal/apperr"
	"orderflow/internal/catalog"
	"orderflow/internal/service/delivery"
	"orderflow/internal/service/order"
	"orderflow/internal/service/payment"
	"orderflow/internal/service/search"
	"orderflow/internal/service/shared"
	httptransport "orderflow/internal/transport/http"
	"orderflow/internal/workflow"
)

func newServerAndClient(t *testing.T) *Client {
	t.Helper()

	store := catalog.NewMemory(catalog.Seed()...)
	lat := shared.Latency{}
	h := httptransport.NewHandler(
		search.New(store, lat),
		order.New(store, lat),
		payment.New(0, lat),
		delivery.New(lat),
		nil,
		2*time.Second,
	)
	ts := httptest.NewServer(httptransport.NewServer(0, h).Handler)
	t.Cleanup(ts.Close)

	return New(ts.URL, 2*time.Second)
}

func TestClientStages(t *testing.T) {
	t.Parallel()

	c := newServerAndClient(t)
	ctx := context.Background()

	rest, err := c.Search(ctx, "pasta hub")
	require.NoError(t, err)
	assert.Equal(t, "Pasta Hub", rest.Name)
	assert.Len(t, rest.Menu, 2)

	ord, err := c.PlaceOrder(ctx, "Pasta Hub", "alfredo pasta")
	require.NoError(t, err)
	assert.Equal(t, 7.0, ord.Amount)
	assert.Contains(t, ord.OrderID, "ORD-")

	pay, err := c.ProcessPayment(ctx, ord.OrderID, ord.Amount, false)
	require.NoError(t, err)
	assert.Contains(t, pay.PaymentID, "PAY-")

	del, err := c.ConfirmDelivery(ctx, ord.OrderID)
	require.NoError(t, err)
	assert.False(t, del.DeliveredAt.IsZero())
}

func TestClientSurfacesBusinessErrors(t *testing.T) {
	t.Parallel()

	c := newServerAndClient(t)
	ctx := context.Background()

	_, err := c.Search(ctx, "Taco Town")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = c.PlaceOrder(ctx, "Burger Palace", "Sushi")
	assert.ErrorIs(t, err, apperr.ErrItemUnavailable)

	_, err = c.ProcessPayment(ctx, "ORD-ABC123", 5, true)
	assert.ErrorIs(t, err, apperr.ErrPaymentDeclined)

	_, err = c.ConfirmDelivery(ctx, "")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestClientClassifiesNetworkFailure(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c := New(url, time.Second)
	_, err := c.Search(context.Background(), "Pasta Hub")
	assert.ErrorIs(t, err, apperr.ErrTransport)
}

// End-to-end: a workflow runner driving the API over the wire.
func TestRunnerOverHTTP(t *testing.T) {
	t.Parallel()

	c := newServerAndClient(t)
	r := workflow.NewRunner(c, nil)
	ctx := context.Background()

	rest, err := r.Search(ctx, "Pasta Hub")
	require.NoError(t, err)
	assert.Equal(t, "Pasta Hub", rest.Name)

	receipt, err := r.Run(ctx, "Pasta Hub", "Alfredo Pasta", false)
	require.NoError(t, err)

	require.NotNil(t, receipt.Order)
	assert.Equal(t, 7.0, receipt.Order.Amount)
	require.NotNil(t, receipt.Payment)
	assert.NotEmpty(t, receipt.Payment.PaymentID)
	require.NotNil(t, receipt.Delivery)
	assert.False(t, receipt.Delivery.DeliveredAt.IsZero())

	for _, s := range workflow.AllStages {
		assert.Equal(t, workflow.StatusDone, r.Tracker().Status(s), "stage %s", s)
	}
}

// A forced decline mid-chain, then a standalone retry over the wire.
func TestRunnerRetriesDeclinedPaymentOverHTTP(t *testing.T) {
	t.Parallel()

	c := newServerAndClient(t)
	r := workflow.NewRunner(c, nil)
	ctx := context.Background()

	_, err := r.Run(ctx, "Pasta Hub", "Alfredo Pasta", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrPaymentDeclined)

	var stageErr *workflow.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, workflow.StagePayment, stageErr.Stage)
	assert.Equal(t, workflow.StatusFailed, r.Tracker().Status(workflow.StagePayment))
	assert.Equal(t, workflow.StatusPending, r.Tracker().Status(workflow.StageDelivery))

	ord := r.Receipt().Order
	require.NotNil(t, ord)

	receipt, err := r.Pay(ctx, ord.OrderID, ord.Amount, false)
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.Payment.PaymentID)
	assert.Equal(t, workflow.StatusDone, r.Tracker().Status(workflow.StagePayment))
}
