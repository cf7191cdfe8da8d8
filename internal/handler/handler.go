package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/medportal/slotbooker/internal/domain"
	"github.com/medportal/slotbooker/internal/handler/dto"
	"github.com/medportal/slotbooker/internal/middleware"
	"github.com/medportal/slotbooker/internal/service"
	"github.com/wb-go/wbf/ginext"
)

type CatalogSvc interface {
	CreateSlot(ctx context.Context, input domain.CreateSlotInput) (*domain.Slot, error)
	GetSlot(ctx context.Context, id string) (*domain.Slot, error)
	ListOpen(ctx context.Context, rt domain.ResourceType, from, to time.Time) ([]*domain.Slot, error)
}

type ReservationSvc interface {
	Reserve(ctx context.Context, input service.ReserveInput) (*domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}

type Handler struct {
	catalogService     CatalogSvc
	reservationService ReservationSvc
}

func NewHandler(catalogService CatalogSvc, reservationService ReservationSvc) *Handler {
	return &Handler{
		catalogService:     catalogService,
		reservationService: reservationService,
	}
}

// Slots

func (h *Handler) CreateSlot(c *ginext.Context) {
	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date format, expected YYYY-MM-DD"})
		return
	}
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_time format, expected RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_time format, expected RFC3339"})
		return
	}

	input := domain.CreateSlotInput{
		ResourceType: domain.ResourceType(req.ResourceType),
		Date:         date,
		StartTime:    start,
		EndTime:      end,
		Location:     req.Location,
	}

	slot, err := h.catalogService.CreateSlot(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSlotResponse(slot))
}

func (h *Handler) GetSlot(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot id"})
		return
	}

	slot, err := h.catalogService.GetSlot(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotResponse(slot))
}

func (h *Handler) ListSlots(c *ginext.Context) {
	rt := domain.ResourceType(c.Query("type"))

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid to date, expected YYYY-MM-DD"})
		return
	}

	slots, err := h.catalogService.ListOpen(c.Request.Context(), rt, from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.ToSlotResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Reservations

func (h *Handler) Reserve(c *ginext.Context) {
	var req dto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	requester := domain.Requester{}
	if userID := c.GetString(middleware.UserIDKey); userID != "" {
		requester.UserID = &userID
	} else if req.Guest != nil {
		requester.Guest = &domain.GuestContact{
			Name:  req.Guest.Name,
			Email: req.Guest.Email,
			Phone: req.Guest.Phone,
		}
	}

	booking, err := h.reservationService.Reserve(c.Request.Context(), service.ReserveInput{
		SlotID:    req.SlotID,
		Requester: requester,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ReservationResponse{
		Status:    string(booking.Status),
		BookingID: booking.ID,
	})
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.reservationService.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListMyBookings(c *ginext.Context) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}

	bookings, err := h.reservationService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotNotBookable):
		c.JSON(http.StatusConflict, dto.ReservationResponse{
			Status: dto.ReservationStatusInvalid,
			Error:  dto.SlotTakenMessage,
		})

	case errors.Is(err, domain.ErrSlotClaimed):
		c.JSON(http.StatusConflict, dto.ReservationResponse{
			Status: dto.ReservationStatusConflict,
			Error:  dto.SlotTakenMessage,
		})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		// Storage or transport failure; the same request can be resubmitted
		// safely because a slot can only ever be claimed once.
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error:     "temporary error, please retry",
			Retryable: true,
		})
	}
}
