package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateHandler(t *testing.T, factory commands.FulfillmentUoWFactory) commands.CreateFulfillmentsCommandHandler {
	t.Helper()
	generator, err := services.NewTrackingCodeGenerator("MKT")
	require.NoError(t, err)
	return commands.NewCreateFulfillmentsCommandHandler(
		factory,
		services.NewGroupAssembler(),
		services.NewDeliveryEstimator(),
		generator,
	)
}

func TestCreateFulfillmentsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	fixture := newOrderFixture(t)
	admin := mustActor(t, kernel.NewUUID(), kernel.RoleAdmin)

	cmd, err := commands.NewCreateFulfillmentsCommand(fixture.order.ID(), admin)
	require.NoError(t, err)

	fulfillmentRepo := new(MockFulfillmentRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("FulfillmentRepository").Return(fulfillmentRepo).Once()
	orderRepo.On("Get", ctx, fixture.order.ID()).Return(fixture.order, nil).Once()
	fulfillmentRepo.On("ExistsTrackingCode", ctx, mock.AnythingOfType("fulfillment.TrackingCode")).
		Return(false, nil)
	fulfillmentRepo.On("Add", ctx, mock.AnythingOfType("[]*fulfillment.Unit")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newCreateHandler(t, factory)
	units, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, fulfillment.Pending, units[0].Status())
	assert.True(t, units[0].OrderLineID().IsEqual(fixture.line.ID()))
	assert.True(t, units[0].SellerID().IsEqual(fixture.sellerID))
	// standard shipping, cross-locality: 3+1 days from order creation
	assert.Equal(t, fixture.order.CreatedAt().AddDate(0, 0, 4), units[0].EstimatedDelivery())
	require.Len(t, units[0].History(), 1)

	fulfillmentRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateFulfillmentsCommandHandler_Handle_Unauthorized(t *testing.T) {
	ctx := t.Context()
	fixture := newOrderFixture(t)

	for _, role := range []kernel.Role{kernel.RoleSeller, kernel.RoleBuyer} {
		cmd, err := commands.NewCreateFulfillmentsCommand(fixture.order.ID(), mustActor(t, kernel.NewUUID(), role))
		require.NoError(t, err)

		factory := new(MockFulfillmentUoWFactory)
		handler := newCreateHandler(t, factory)

		_, err = handler.Handle(ctx, cmd)
		require.Error(t, err, role)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
		factory.AssertNotCalled(t, "Create")
	}
}

func TestCreateFulfillmentsCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	admin := mustActor(t, kernel.NewUUID(), kernel.RoleAdmin)

	cmd, err := commands.NewCreateFulfillmentsCommand(orderID, admin)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("orderId", orderID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newCreateHandler(t, factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateFulfillmentsCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateFulfillmentsCommand{} // not constructed properly

	factory := new(MockFulfillmentUoWFactory)
	handler := newCreateHandler(t, factory)

	_, err := handler.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateFulfillmentsCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateFulfillmentsCommandHandler_Handle_CodeSpaceExhausted(t *testing.T) {
	ctx := t.Context()
	fixture := newOrderFixture(t)
	admin := mustActor(t, kernel.NewUUID(), kernel.RoleAdmin)

	cmd, err := commands.NewCreateFulfillmentsCommand(fixture.order.ID(), admin)
	require.NoError(t, err)

	fulfillmentRepo := new(MockFulfillmentRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("FulfillmentRepository").Return(fulfillmentRepo).Once()
	orderRepo.On("Get", ctx, fixture.order.ID()).Return(fixture.order, nil).Once()
	// every candidate collides
	fulfillmentRepo.On("ExistsTrackingCode", ctx, mock.AnythingOfType("fulfillment.TrackingCode")).
		Return(true, nil)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newCreateHandler(t, factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, services.ErrTrackingCodeSpaceExhausted)
	fulfillmentRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}
