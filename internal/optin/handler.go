package optin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

//
// --------------------------------------------------
// POST /api/optin
// --------------------------------------------------
//

func (h *Handler) Register() gin.HandlerFunc {
	return func(c *gin.Context) {

		var req struct {
			Name  string `json:"name"`
			Phone string `json:"phone"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		o, err := h.service.Register(c.Request.Context(), req.Name, req.Phone)
		if err != nil {
			if errors.Is(err, ErrMissingFields) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store opt-in"})
			return
		}

		c.JSON(http.StatusCreated, o)
	}
}

//
// --------------------------------------------------
// GET /admin/optins
// --------------------------------------------------
//

func (h *Handler) List() gin.HandlerFunc {
	return func(c *gin.Context) {

		optins, err := h.service.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load opt-ins"})
			return
		}

		if optins == nil {
			optins = []*OptIn{}
		}

		c.JSON(http.StatusOK, optins)
	}
}
