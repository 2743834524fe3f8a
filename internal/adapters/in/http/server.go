package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createFulfillmentsHandler commands.CreateFulfillmentsCommandHandler
	assignCarrierHandler      commands.AssignCarrierCommandHandler
	updateStatusHandler       commands.UpdateStatusCommandHandler

	// Query handlers
	trackByCodeHandler           queries.TrackByCodeQueryHandler
	getBuyerFulfillmentsHandler  queries.GetBuyerFulfillmentsQueryHandler
	getSellerFulfillmentsHandler queries.GetSellerFulfillmentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createFulfillmentsHandler commands.CreateFulfillmentsCommandHandler,
	assignCarrierHandler commands.AssignCarrierCommandHandler,
	updateStatusHandler commands.UpdateStatusCommandHandler,
	trackByCodeHandler queries.TrackByCodeQueryHandler,
	getBuyerFulfillmentsHandler queries.GetBuyerFulfillmentsQueryHandler,
	getSellerFulfillmentsHandler queries.GetSellerFulfillmentsQueryHandler,
) *Server {
	return &Server{
		createFulfillmentsHandler:    createFulfillmentsHandler,
		assignCarrierHandler:         assignCarrierHandler,
		updateStatusHandler:          updateStatusHandler,
		trackByCodeHandler:           trackByCodeHandler,
		getBuyerFulfillmentsHandler:  getBuyerFulfillmentsHandler,
		getSellerFulfillmentsHandler: getSellerFulfillmentsHandler,
	}
}

// actorFromRequest resolves the caller from the identity headers set by the
// API gateway. Requests without a role header are treated as anonymous.
func actorFromRequest(ctx echo.Context) (kernel.Actor, error) {
	role := ctx.Request().Header.Get("X-Actor-Role")
	if role == "" {
		return kernel.NewAnonymousActor(), nil
	}

	id, err := kernel.UUIDFromString(ctx.Request().Header.Get("X-Actor-Id"))
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(id, kernel.Role(role))
}

// errorResponse maps application errors to HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, fulfillment.ErrInvalidTransition):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: err.Error(),
	})
}

// CreateFulfillments handles POST /api/v1/orders/{orderId}/fulfillments.
func (s *Server) CreateFulfillments(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateFulfillmentsCommand(orderID, actor)
	if err != nil {
		return errorResponse(ctx, err)
	}

	units, err := s.createFulfillmentsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.FulfillmentUnit, len(units))
	for i, unit := range units {
		response[i] = toFulfillmentUnitResponse(unit)
	}
	return ctx.JSON(http.StatusCreated, response)
}

// AssignCarrier handles POST /api/v1/fulfillments/{unitId}/carrier.
func (s *Server) AssignCarrier(ctx echo.Context, unitId openapi_types.UUID) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var body servers.AssignCarrierJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	unitID, err := kernel.UUIDFromBytes(unitId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	trackingNumber := ""
	if body.CarrierTrackingNumber != nil {
		trackingNumber = *body.CarrierTrackingNumber
	}

	cmd, err := commands.NewAssignCarrierCommand(unitID, body.CarrierName, trackingNumber, actor)
	if err != nil {
		return errorResponse(ctx, err)
	}

	unit, err := s.assignCarrierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toFulfillmentUnitResponse(unit))
}

// UpdateStatus handles POST /api/v1/fulfillments/{unitId}/status.
func (s *Server) UpdateStatus(ctx echo.Context, unitId openapi_types.UUID) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var body servers.UpdateStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	unitID, err := kernel.UUIDFromBytes(unitId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	target, err := fulfillment.StatusFromString(body.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	location := ""
	if body.Location != nil {
		location = *body.Location
	}
	description := ""
	if body.Description != nil {
		description = *body.Description
	}

	cmd, err := commands.NewUpdateStatusCommand(unitID, target, location, description, actor)
	if err != nil {
		return errorResponse(ctx, err)
	}

	unit, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toFulfillmentUnitResponse(unit))
}

// TrackByCode handles GET /api/v1/tracking/{trackingCode}. The endpoint is
// public: no identity headers are consulted.
func (s *Server) TrackByCode(ctx echo.Context, trackingCode string) error {
	query, err := queries.NewTrackByCodeQuery(trackingCode)
	if err != nil {
		return errorResponse(ctx, err)
	}

	view, err := s.trackByCodeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := servers.TrackingView{
		TrackingCode:        view.TrackingCode,
		Status:              view.Status,
		CarrierName:         optional(view.CarrierName),
		CurrentLocation:     optional(view.CurrentLocation),
		DestinationLocality: view.DestinationLocality,
		EstimatedDelivery:   view.EstimatedDelivery,
		History:             make([]servers.HistoryEntry, len(view.History)),
	}
	for i, entry := range view.History {
		response.History[i] = servers.HistoryEntry{
			Status:      entry.Status,
			Location:    optional(entry.Location),
			Description: entry.Description,
			OccurredAt:  entry.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetBuyerFulfillments handles GET /api/v1/buyers/{buyerId}/fulfillments.
func (s *Server) GetBuyerFulfillments(ctx echo.Context, buyerId openapi_types.UUID) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	buyerID, err := kernel.UUIDFromBytes(buyerId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetBuyerFulfillmentsQuery(buyerID, actor)
	if err != nil {
		return errorResponse(ctx, err)
	}

	units, err := s.getBuyerFulfillmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.BuyerFulfillment, len(units))
	for i, unit := range units {
		response[i] = servers.BuyerFulfillment{
			UnitId:            unit.UnitID.Bytes(),
			OrderId:           unit.OrderID.Bytes(),
			TrackingCode:      unit.TrackingCode,
			Status:            unit.Status,
			CarrierName:       optional(unit.CarrierName),
			EstimatedDelivery: unit.EstimatedDelivery,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetSellerFulfillments handles GET /api/v1/sellers/{sellerId}/fulfillments.
func (s *Server) GetSellerFulfillments(
	ctx echo.Context,
	sellerId openapi_types.UUID,
	params servers.GetSellerFulfillmentsParams,
) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	sellerID, err := kernel.UUIDFromBytes(sellerId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	status := fulfillment.Unknown
	if params.Status != nil {
		status, err = fulfillment.StatusFromString(*params.Status)
		if err != nil {
			return errorResponse(ctx, err)
		}
	}

	query, err := queries.NewGetSellerFulfillmentsQuery(sellerID, status, actor)
	if err != nil {
		return errorResponse(ctx, err)
	}

	units, err := s.getSellerFulfillmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.SellerFulfillment, len(units))
	for i, unit := range units {
		response[i] = servers.SellerFulfillment{
			UnitId:            unit.UnitID.Bytes(),
			OrderLineId:       unit.OrderLineID.Bytes(),
			TrackingCode:      unit.TrackingCode,
			Status:            unit.Status,
			CarrierName:       optional(unit.CarrierName),
			EstimatedDelivery: unit.EstimatedDelivery,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func toFulfillmentUnitResponse(unit *fulfillment.Unit) servers.FulfillmentUnit {
	return servers.FulfillmentUnit{
		Id:                    unit.ID().Bytes(),
		OrderLineId:           unit.OrderLineID().Bytes(),
		SellerId:              unit.SellerID().Bytes(),
		Status:                unit.Status().String(),
		TrackingCode:          unit.TrackingCode().String(),
		CarrierName:           optional(unit.CarrierName()),
		CarrierTrackingNumber: optional(unit.CarrierTrackingNumber()),
		CurrentLocation:       optional(unit.CurrentLocation()),
		ShippingMethod:        unit.ShippingMethod().String(),
		OriginLocality:        unit.OriginLocality(),
		DestinationLocality:   unit.DestinationLocality(),
		EstimatedDelivery:     unit.EstimatedDelivery(),
	}
}

// optional maps an empty string to an absent JSON field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
