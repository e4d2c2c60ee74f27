package category

import (
	"errors"
	"fmt"
	"net/http"

	"pizzadash/internal/catalog"
	"pizzadash/internal/notify"

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
// GET /category
// --------------------------------------------------
//

func (h *Handler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context(), c.GetString("token"))
	if err != nil {
		c.JSON(http.StatusBadGateway, notify.Error(err.Error()))
		return
	}
	c.JSON(http.StatusOK, categories)
}

//
// --------------------------------------------------
// POST /category
// --------------------------------------------------
//

func (h *Handler) Create(c *gin.Context) {
	var category catalog.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.Create(c.Request.Context(), c.GetString("token"), category); err != nil {
		if errors.Is(err, ErrMissingName) {
			c.JSON(http.StatusBadRequest, notify.Warning("Digite o nome da categoria!"))
			return
		}
		var validation *ValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, notify.Warning(validation.Msg))
			return
		}
		c.JSON(http.StatusBadGateway, notify.Error(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, notify.Success("Categoria cadastrada com sucesso!"))
}

//
// --------------------------------------------------
// DELETE /category?category_id=
// --------------------------------------------------
//

func (h *Handler) Delete(c *gin.Context) {
	categoryID := c.Query("category_id")

	name, err := h.service.Delete(c.Request.Context(), c.GetString("token"), categoryID)
	if err != nil {
		if errors.Is(err, ErrMissingID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category_id is required"})
			return
		}
		c.JSON(http.StatusBadGateway, notify.Error(err.Error()))
		return
	}

	if name == "" {
		c.JSON(http.StatusOK, notify.Success("Categoria deletada com sucesso!"))
		return
	}
	c.JSON(http.StatusOK, notify.Success(fmt.Sprintf("Categoria %q deletada com sucesso!", name)))
}
