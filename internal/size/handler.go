package size

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
// GET /sizes
// --------------------------------------------------
//

func (h *Handler) List(c *gin.Context) {
	sizes, err := h.service.List(c.Request.Context(), c.GetString("token"))
	if err != nil {
		c.JSON(http.StatusBadGateway, notify.Error(err.Error()))
		return
	}
	c.JSON(http.StatusOK, sizes)
}

//
// --------------------------------------------------
// POST /size
// --------------------------------------------------
//

func (h *Handler) Create(c *gin.Context) {
	var size catalog.Size
	if err := c.ShouldBindJSON(&size); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.Create(c.Request.Context(), c.GetString("token"), size); err != nil {
		if errors.Is(err, ErrMissingFields) {
			c.JSON(http.StatusBadRequest, notify.Warning("Preencha nome, exibição e ordem do tamanho!"))
			return
		}
		c.JSON(http.StatusBadGateway, notify.Error(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, notify.Success(fmt.Sprintf("Tamanho %s criado com sucesso!", size.Display)))
}

//
// --------------------------------------------------
// POST /size/defaults
// --------------------------------------------------
//

func (h *Handler) CreateDefaults(c *gin.Context) {
	created, err := h.service.CreateDefaults(c.Request.Context(), c.GetString("token"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"created": created,
			"toast":   notify.Error("Falha ao criar tamanhos!"),
		})
		return
	}

	if created == 0 {
		c.JSON(http.StatusOK, gin.H{
			"created": 0,
			"toast":   notify.Info("Todos os tamanhos já foram criados!"),
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"created": created,
		"toast":   notify.Success(fmt.Sprintf("%d tamanho(s) criado(s) com sucesso!", created)),
	})
}

//
// --------------------------------------------------
// DELETE /size?size_id=
// --------------------------------------------------
//

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.GetString("token"), c.Query("size_id")); err != nil {
		if errors.Is(err, ErrMissingID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "size_id is required"})
			return
		}
		c.JSON(http.StatusBadGateway, notify.Error(err.Error()))
		return
	}
	c.JSON(http.StatusOK, notify.Success("Tamanho deletado com sucesso!"))
}
