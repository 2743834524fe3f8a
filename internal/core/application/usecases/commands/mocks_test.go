package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFulfillmentRepository struct{ mock.Mock }

func (m *MockFulfillmentRepository) Add(ctx context.Context, units []*fulfillment.Unit) error {
	args := m.Called(ctx, units)
	return args.Error(0)
}

func (m *MockFulfillmentRepository) Update(ctx context.Context, unit *fulfillment.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *MockFulfillmentRepository) Get(ctx context.Context, id kernel.UUID) (*fulfillment.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fulfillment.Unit), args.Error(1)
}

func (m *MockFulfillmentRepository) GetByTrackingCode(
	ctx context.Context,
	code fulfillment.TrackingCode,
) (*fulfillment.Unit, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fulfillment.Unit), args.Error(1)
}

func (m *MockFulfillmentRepository) ExistsTrackingCode(
	ctx context.Context,
	code fulfillment.TrackingCode,
) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockFulfillmentRepository) GetOverdue(ctx context.Context, asOf time.Time) ([]*fulfillment.Unit, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*fulfillment.Unit), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByLineID(ctx context.Context, lineID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, lineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockCarrierRepository struct{ mock.Mock }

func (m *MockCarrierRepository) Add(ctx context.Context, aggregate *carrier.Carrier) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCarrierRepository) GetByName(ctx context.Context, name string) (*carrier.Carrier, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) GetAll(ctx context.Context) ([]*carrier.Carrier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*carrier.Carrier), args.Error(1)
}

type MockNotificationDispatcher struct{ mock.Mock }

func (m *MockNotificationDispatcher) Dispatch(ctx context.Context, notification ports.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) FulfillmentRepository() ports.FulfillmentRepository {
	args := m.Called()
	return args.Get(0).(ports.FulfillmentRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CarrierRepository() ports.CarrierRepository {
	args := m.Called()
	return args.Get(0).(ports.CarrierRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.FulfillmentUoW)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func mustActor(t *testing.T, id kernel.UUID, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return actor
}

// orderFixture is one order with a single line, plus the IDs the tests need.
type orderFixture struct {
	order    *order.Order
	line     order.Line
	buyerID  kernel.UUID
	sellerID kernel.UUID
}

func newOrderFixture(t *testing.T) orderFixture {
	t.Helper()

	orderID := kernel.NewUUID()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()

	line, err := order.NewLine(
		kernel.NewUUID(), orderID, sellerID, kernel.NewUUID(),
		1, mustMoney(t, 2500), mustMoney(t, 2500), "Istanbul",
	)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		orderID, buyerID, kernel.ShippingStandard, "Ankara",
		mustMoney(t, 0), mustMoney(t, 0), mustMoney(t, 2500),
		time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
		[]order.Line{line},
	)
	require.NoError(t, err)

	return orderFixture{order: aggregate, line: line, buyerID: buyerID, sellerID: sellerID}
}

// unitFixture builds a pending unit for the fixture's line.
func newUnitFixture(t *testing.T, f orderFixture) *fulfillment.Unit {
	t.Helper()

	code, err := fulfillment.NewTrackingCode("MKT7F3K9Q2Z")
	require.NoError(t, err)

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	unit, err := fulfillment.NewUnit(
		kernel.NewUUID(), f.line.ID(), f.sellerID, code,
		kernel.ShippingStandard, "Istanbul", "Ankara",
		now.AddDate(0, 0, 4), now,
	)
	require.NoError(t, err)
	return unit
}
