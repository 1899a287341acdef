package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/entity"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/pkg/apperr"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/repository"
)

type fakeGateway struct {
	ref string
	err error
	// last requested amount, for assertions
	amount float64
}

func (g *fakeGateway) CreateIntent(amount float64, receipt string) (string, error) {
	g.amount = amount
	return g.ref, g.err
}

func newPaymentService(t *testing.T, gw PaymentGateway) (*PaymentService, *OrderService, *gorm.DB) {
	t.Helper()
	svc, _, db := newOrderService(t)
	ps := NewPaymentService(db, repository.NewPaymentRepository(db), repository.NewOrderRepository(db), gw)
	return ps, svc, db
}

func createOrder(t *testing.T, svc *OrderService, db *gorm.DB, price float64, qty int) *entity.Order {
	t.Helper()
	seedTable(t, db, "T1")
	dish := seedMenuItem(t, db, "Thali", entity.CategoryMainCourse, price)
	order, err := svc.Create(&CreateOrderReq{
		TableNumber: "T1",
		Items:       []OrderItemIn{{MenuItemID: dish.ID, Qty: qty}},
	})
	require.NoError(t, err)
	return order
}

func TestCreateIntentOpensRemoteIntentForTotal(t *testing.T) {
	gw := &fakeGateway{ref: "intent_123"}
	ps, orderSvc, db := newPaymentService(t, gw)
	order := createOrder(t, orderSvc, db, 200, 2)

	out, err := ps.CreateIntent(order.ID)
	require.NoError(t, err)

	assert.Equal(t, "intent_123", out.IntentRef)
	assert.Equal(t, 400.0, out.Amount)
	assert.Equal(t, 400.0, gw.amount)

	p, err := ps.Repo.FindByID(out.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPending, p.Status)
	assert.Equal(t, entity.PayMethodOnline, p.Method)
	assert.Equal(t, "intent_123", p.IntentRef)
	assert.Equal(t, order.ID, p.OrderID)
}

func TestCreateIntentSurfacesGatewayFailure(t *testing.T) {
	gw := &fakeGateway{err: errors.New("gateway down")}
	ps, orderSvc, db := newPaymentService(t, gw)
	order := createOrder(t, orderSvc, db, 100, 1)

	_, err := ps.CreateIntent(order.ID)
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))

	// no payment row is left behind on gateway failure
	payments, listErr := ps.Repo.ListByOrder(order.ID)
	require.NoError(t, listErr)
	assert.Empty(t, payments)
}

func TestCreateIntentUnknownOrder(t *testing.T) {
	ps, _, _ := newPaymentService(t, &fakeGateway{ref: "x"})
	_, err := ps.CreateIntent(777)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestVerifyMarksPaidAndWritesBack(t *testing.T) {
	gw := &fakeGateway{ref: "intent_9"}
	ps, orderSvc, db := newPaymentService(t, gw)
	order := createOrder(t, orderSvc, db, 150, 1)

	out, err := ps.CreateIntent(order.ID)
	require.NoError(t, err)

	require.NoError(t, ps.Verify(out.PaymentID, order.ID, "txn_abc"))

	p, err := ps.Repo.FindByID(out.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, p.Status)
	assert.Equal(t, "txn_abc", p.TransactionID)
	assert.NotNil(t, p.PaidAt)

	got, err := orderSvc.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, got.PaymentStatus)
	assert.Equal(t, entity.PayMethodOnline, got.PaymentMethod)
}

func TestVerifyRejectsMismatchedOrder(t *testing.T) {
	gw := &fakeGateway{ref: "intent_9"}
	ps, orderSvc, db := newPaymentService(t, gw)
	order := createOrder(t, orderSvc, db, 150, 1)

	out, err := ps.CreateIntent(order.ID)
	require.NoError(t, err)

	err = ps.Verify(out.PaymentID, order.ID+1, "txn_abc")
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))

	err = ps.Verify(out.PaymentID, order.ID, "")
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))

	err = ps.Verify(9999, order.ID, "txn_abc")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

// retries accumulate rows; the latest Paid row is the authoritative one
func TestPaymentRetriesKeepHistory(t *testing.T) {
	gw := &fakeGateway{ref: "intent_1"}
	ps, orderSvc, db := newPaymentService(t, gw)
	order := createOrder(t, orderSvc, db, 100, 1)

	first, err := ps.CreateIntent(order.ID)
	require.NoError(t, err)
	gw.ref = "intent_2"
	second, err := ps.CreateIntent(order.ID)
	require.NoError(t, err)

	require.NoError(t, ps.Verify(second.PaymentID, order.ID, "txn_2"))

	payments, err := ps.ListForOrder(order.ID)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	// newest first
	assert.Equal(t, second.PaymentID, payments[0].ID)
	assert.Equal(t, entity.PaymentPaid, payments[0].Status)
	assert.Equal(t, first.PaymentID, payments[1].ID)
	assert.Equal(t, entity.PaymentPending, payments[1].Status)
}
