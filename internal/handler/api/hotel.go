package api

import (
	"errors"
	"net/http"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	hotelUseCase usecase.HotelUseCase
}

func NewHotelHandler(hotelUseCase usecase.HotelUseCase) *HotelHandler {
	return &HotelHandler{
		hotelUseCase: hotelUseCase,
	}
}

// @Summary Create hotel
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHotelRequest true "Hotel"
// @Success 201 {object} resdto.HotelResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /hotels [post]
func (h *HotelHandler) CreateHotel(c *gin.Context) {
	var req reqdto.CreateHotelRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rm, err := h.hotelUseCase.CreateHotel(c.Request.Context(), req.ToParams())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromHotelRM(rm))
}

// @Summary Get hotel
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelResponse
// @Failure 404 {object} map[string]string
// @Router /getHotelsById/{id} [get]
func (h *HotelHandler) GetHotel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rm, err := h.hotelUseCase.GetHotel(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelRM(rm))
}

// @Summary List hotels
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param offset query int false "Pagination offset"
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.HotelResponse
// @Router /getAllHotels [get]
func (h *HotelHandler) ListHotels(c *gin.Context) {
	list, err := h.hotelUseCase.ListHotels(c.Request.Context(), parsePage(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelRMs(list))
}

// @Summary Update hotel
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.UpdateHotelRequest true "Fields to update"
// @Success 200 {object} resdto.HotelResponse
// @Failure 404 {object} map[string]string
// @Router /updateHotels/{id} [put]
func (h *HotelHandler) UpdateHotel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateHotelRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rm, err := h.hotelUseCase.UpdateHotel(c.Request.Context(), id, req.ToParams())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelRM(rm))
}

// @Summary Delete hotel
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /deleteHotels/{id} [delete]
func (h *HotelHandler) DeleteHotel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.hotelUseCase.DeleteHotel(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *HotelHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel data",
		})
	case errors.Is(err, usecase.ErrHotelNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Hotel not found",
		})
	case errors.Is(err, usecase.ErrHotelDuplicate):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Hotel with the same name already exists",
		})
	case errors.Is(err, usecase.ErrHotelInUse):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Hotel still has rooms and cannot be deleted",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
