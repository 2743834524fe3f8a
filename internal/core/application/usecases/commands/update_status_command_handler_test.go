package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	fixture := newOrderFixture(t)
	unit := newUnitFixture(t, fixture)
	seller := mustActor(t, fixture.sellerID, kernel.RoleSeller)

	cmd, err := commands.NewUpdateStatusCommand(
		unit.ID(), fulfillment.Processing, "", "Packing started", seller,
	)
	require.NoError(t, err)

	fulfillmentRepo := new(MockFulfillmentRepository)
	orderRepo := new(MockOrderRepository)
	dispatcher := new(MockNotificationDispatcher)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("FulfillmentRepository").Return(fulfillmentRepo)
	uow.On("OrderRepository").Return(orderRepo).Once()
	fulfillmentRepo.On("Get", ctx, unit.ID()).Return(unit, nil).Once()
	fulfillmentRepo.On("Update", ctx, unit).Return(nil).Once()
	orderRepo.On("GetByLineID", ctx, unit.OrderLineID()).Return(fixture.order, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	dispatcher.On("Dispatch", ctx, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Kind == ports.NotificationStatusChanged &&
			n.RecipientID.IsEqual(fixture.buyerID) &&
			n.Status == fulfillment.Processing &&
			n.Description == "Packing started"
	})).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateStatusCommandHandler(factory, dispatcher, discardLogger())
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, fulfillment.Processing, updated.Status())
	assert.Len(t, updated.History(), 2)

	fulfillmentRepo.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	fixture := newOrderFixture(t)
	unit := newUnitFixture(t, fixture)
	seller := mustActor(t, fixture.sellerID, kernel.RoleSeller)

	// delivered is not reachable from pending
	cmd, err := commands.NewUpdateStatusCommand(unit.ID(), fulfillment.Delivered, "", "", seller)
	require.NoError(t, err)

	fulfillmentRepo := new(MockFulfillmentRepository)
	dispatcher := new(MockNotificationDispatcher)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("FulfillmentRepository").Return(fulfillmentRepo).Once()
	fulfillmentRepo.On("Get", ctx, unit.ID()).Return(unit, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateStatusCommandHandler(factory, dispatcher, discardLogger())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, fulfillment.ErrInvalidTransition)

	var transitionErr *fulfillment.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, fulfillment.Pending, transitionErr.From)
	assert.Equal(t, fulfillment.Delivered, transitionErr.To)

	assert.Equal(t, fulfillment.Pending, unit.Status())
	assert.Len(t, unit.History(), 1)
	fulfillmentRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	dispatcher.AssertNotCalled(t, "Dispatch", ctx, mock.Anything)
}

func TestUpdateStatusCommandHandler_Handle_UnauthorizedBuyer(t *testing.T) {
	ctx := t.Context()
	fixture := newOrderFixture(t)
	unit := newUnitFixture(t, fixture)
	buyer := mustActor(t, fixture.buyerID, kernel.RoleBuyer)

	cmd, err := commands.NewUpdateStatusCommand(unit.ID(), fulfillment.Processing, "", "", buyer)
	require.NoError(t, err)

	fulfillmentRepo := new(MockFulfillmentRepository)
	dispatcher := new(MockNotificationDispatcher)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("FulfillmentRepository").Return(fulfillmentRepo).Once()
	fulfillmentRepo.On("Get", ctx, unit.ID()).Return(unit, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateStatusCommandHandler(factory, dispatcher, discardLogger())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Equal(t, fulfillment.Pending, unit.Status())
}

func TestUpdateStatusCommandHandler_Handle_AdminMayMoveAnyUnit(t *testing.T) {
	ctx := t.Context()
	fixture := newOrderFixture(t)
	unit := newUnitFixture(t, fixture)
	admin := mustActor(t, kernel.NewUUID(), kernel.RoleAdmin)

	cmd, err := commands.NewUpdateStatusCommand(unit.ID(), fulfillment.Processing, "", "", admin)
	require.NoError(t, err)

	fulfillmentRepo := new(MockFulfillmentRepository)
	orderRepo := new(MockOrderRepository)
	dispatcher := new(MockNotificationDispatcher)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("FulfillmentRepository").Return(fulfillmentRepo)
	uow.On("OrderRepository").Return(orderRepo).Once()
	fulfillmentRepo.On("Get", ctx, unit.ID()).Return(unit, nil).Once()
	fulfillmentRepo.On("Update", ctx, unit).Return(nil).Once()
	orderRepo.On("GetByLineID", ctx, unit.OrderLineID()).Return(fixture.order, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	dispatcher.On("Dispatch", ctx, mock.AnythingOfType("ports.Notification")).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateStatusCommandHandler(factory, dispatcher, discardLogger())
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, fulfillment.Processing, updated.Status())
}

func TestUpdateStatusCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()
	fixture := newOrderFixture(t)
	unit := newUnitFixture(t, fixture)
	seller := mustActor(t, fixture.sellerID, kernel.RoleSeller)

	cmd, err := commands.NewUpdateStatusCommand(unit.ID(), fulfillment.Processing, "", "", seller)
	require.NoError(t, err)

	fulfillmentRepo := new(MockFulfillmentRepository)
	dispatcher := new(MockNotificationDispatcher)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("FulfillmentRepository").Return(fulfillmentRepo)
	fulfillmentRepo.On("Get", ctx, unit.ID()).Return(unit, nil).Once()
	fulfillmentRepo.On("Update", ctx, unit).
		Return(errs.NewVersionIsInvalidError("unitVersion")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateStatusCommandHandler(factory, dispatcher, discardLogger())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	uow.AssertNotCalled(t, "Commit", ctx)
	dispatcher.AssertNotCalled(t, "Dispatch", ctx, mock.Anything)
}

func TestUpdateStatusCommandHandler_Handle_DispatchFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()
	fixture := newOrderFixture(t)
	unit := newUnitFixture(t, fixture)
	seller := mustActor(t, fixture.sellerID, kernel.RoleSeller)

	cmd, err := commands.NewUpdateStatusCommand(unit.ID(), fulfillment.Processing, "", "", seller)
	require.NoError(t, err)

	fulfillmentRepo := new(MockFulfillmentRepository)
	orderRepo := new(MockOrderRepository)
	dispatcher := new(MockNotificationDispatcher)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("FulfillmentRepository").Return(fulfillmentRepo)
	uow.On("OrderRepository").Return(orderRepo).Once()
	fulfillmentRepo.On("Get", ctx, unit.ID()).Return(unit, nil).Once()
	fulfillmentRepo.On("Update", ctx, unit).Return(nil).Once()
	orderRepo.On("GetByLineID", ctx, unit.OrderLineID()).Return(fixture.order, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	dispatcher.On("Dispatch", ctx, mock.AnythingOfType("ports.Notification")).
		Return(assert.AnError).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateStatusCommandHandler(factory, dispatcher, discardLogger())
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, fulfillment.Processing, updated.Status())
	dispatcher.AssertExpectations(t)
}
