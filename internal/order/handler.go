package order

import (
	"errors"
	"net/http"

	"pizzadash/internal/catalog"
	"pizzadash/internal/money"
	"pizzadash/internal/notify"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	catalog *catalog.Service
}

func NewHandler(service *Service, catalogService *catalog.Service) *Handler {
	return &Handler{service: service, catalog: catalogService}
}

func token(c *gin.Context) string {
	return c.GetString("token")
}

// validation failures become warnings, everything else an error toast
// with the most specific message available.
func respondFailure(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingName):
		c.JSON(http.StatusBadRequest, notify.Warning("Digite o nome do cliente!"))
	case errors.Is(err, ErrEmptyOrder):
		c.JSON(http.StatusBadRequest, notify.Warning("Adicione pelo menos um item ao pedido!"))
	case errors.Is(err, ErrSizeRequired):
		c.JSON(http.StatusBadRequest, notify.Warning("Selecione um tamanho para este produto!"))
	case errors.Is(err, ErrHalfHalfPending):
		c.JSON(http.StatusBadRequest, notify.Warning("Escolha o segundo sabor da meia a meia!"))
	case errors.Is(err, ErrSameFlavor), errors.Is(err, ErrFlavorNotSizeable):
		c.JSON(http.StatusBadRequest, notify.Warning("Combinação de sabores inválida!"))
	case errors.Is(err, ErrPriceUndefined):
		c.JSON(http.StatusBadRequest, notify.Warning("Produto sem preço definido para esta seleção!"))
	case errors.Is(err, ErrUnknownProduct), errors.Is(err, ErrItemNotFound):
		c.JSON(http.StatusNotFound, notify.Error(err.Error()))
	case errors.Is(err, ErrDraftNotFound):
		c.JSON(http.StatusNotFound, notify.Error("Pedido em edição não encontrado!"))
	default:
		c.JSON(http.StatusBadGateway, notify.Error(err.Error()))
	}
}

//
// --------------------------------------------------
// POST /order/draft
// --------------------------------------------------
//

func (h *Handler) CreateDraft(c *gin.Context) {
	products, err := h.catalog.FetchProducts(c.Request.Context(), token(c))
	if err != nil {
		c.JSON(http.StatusBadGateway, notify.Error(err.Error()))
		return
	}

	draftID := h.service.Drafts().Create(products)
	c.JSON(http.StatusCreated, gin.H{"draft_id": draftID})
}

//
// --------------------------------------------------
// GET /order/draft/:id
// --------------------------------------------------
//

func (h *Handler) GetDraft(c *gin.Context) {
	composer, err := h.service.Drafts().Get(c.Param("id"))
	if err != nil {
		respondFailure(c, err)
		return
	}

	total := composer.Total()
	c.JSON(http.StatusOK, gin.H{
		"items":         composer.Items(),
		"total":         total,
		"total_display": money.FormatBRL(total),
	})
}

//
// --------------------------------------------------
// DELETE /order/draft/:id
// --------------------------------------------------
//

func (h *Handler) DiscardDraft(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.service.Drafts().Get(id); err != nil {
		respondFailure(c, err)
		return
	}

	h.service.Drafts().Discard(id)
	c.JSON(http.StatusOK, notify.Info("Pedido em edição descartado."))
}

//
// --------------------------------------------------
// POST /order/draft/:id/size
// --------------------------------------------------
//

func (h *Handler) SelectSize(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id" binding:"required"`
		SizeID    string `json:"size_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	composer, err := h.service.Drafts().Get(c.Param("id"))
	if err != nil {
		respondFailure(c, err)
		return
	}

	if err := composer.SelectSize(req.ProductID, req.SizeID); err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"can_add": composer.CanAdd(req.ProductID)})
}

//
// --------------------------------------------------
// POST /order/draft/:id/halfhalf
// --------------------------------------------------
//

func (h *Handler) ToggleHalfHalf(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id" binding:"required"`
		Enabled   *bool  `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	composer, err := h.service.Drafts().Get(c.Param("id"))
	if err != nil {
		respondFailure(c, err)
		return
	}

	if err := composer.ToggleHalfHalf(req.ProductID, *req.Enabled); err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"can_add": composer.CanAdd(req.ProductID)})
}

//
// --------------------------------------------------
// POST /order/draft/:id/second
// --------------------------------------------------
//

func (h *Handler) SelectSecondFlavor(c *gin.Context) {
	var req struct {
		ProductID       string `json:"product_id" binding:"required"`
		SecondProductID string `json:"second_product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	composer, err := h.service.Drafts().Get(c.Param("id"))
	if err != nil {
		respondFailure(c, err)
		return
	}

	if err := composer.SelectSecondFlavor(req.ProductID, req.SecondProductID); err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"can_add": composer.CanAdd(req.ProductID)})
}

//
// --------------------------------------------------
// POST /order/draft/:id/item
// --------------------------------------------------
//

func (h *Handler) AddItem(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	composer, err := h.service.Drafts().Get(c.Param("id"))
	if err != nil {
		respondFailure(c, err)
		return
	}

	item, err := composer.AddItem(req.ProductID)
	if err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item, "total": composer.Total()})
}

//
// --------------------------------------------------
// DELETE /order/draft/:id/item
// --------------------------------------------------
//

func (h *Handler) RemoveItem(c *gin.Context) {
	composer, err := h.service.Drafts().Get(c.Param("id"))
	if err != nil {
		respondFailure(c, err)
		return
	}

	productID := c.Query("product_id")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
		return
	}

	if err := composer.RemoveItem(productID, c.Query("size_id"), c.Query("second_product_id")); err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": composer.Items(), "total": composer.Total()})
}

//
// --------------------------------------------------
// POST /order/draft/:id/submit
// --------------------------------------------------
//

func (h *Handler) Submit(c *gin.Context) {
	var info DraftInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	orderID, err := h.service.Submit(c.Request.Context(), token(c), c.Param("id"), info)
	if err != nil {
		respondFailure(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order_id": orderID,
		"toast":    notify.Success("Pedido criado com sucesso!"),
	})
}

//
// --------------------------------------------------
// GET /order/detail?order_id=
// --------------------------------------------------
//

func (h *Handler) Detail(c *gin.Context) {
	orderID := c.Query("order_id")
	if orderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_id is required"})
		return
	}

	items, err := h.service.OpenDetail(c.Request.Context(), token(c), orderID)
	if err != nil {
		c.JSON(http.StatusBadGateway, notify.Error(err.Error()))
		return
	}

	total := CalculateTotal(items)
	c.JSON(http.StatusOK, gin.H{
		"items":         items,
		"total":         total,
		"total_display": money.FormatBRL(total),
	})
}

//
// --------------------------------------------------
// PUT /order/finish
// --------------------------------------------------
//

func (h *Handler) Finish(c *gin.Context) {
	var req struct {
		OrderID string `json:"order_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.Finish(c.Request.Context(), token(c), req.OrderID); err != nil {
		c.JSON(http.StatusBadGateway, notify.Error("Falha ao finalizar este pedido!"))
		return
	}
	c.JSON(http.StatusOK, notify.Success("Pedido finalizado com sucesso!"))
}

//
// --------------------------------------------------
// PUT /order/finish-batch
// --------------------------------------------------
//

func (h *Handler) FinishBatch(c *gin.Context) {
	var req struct {
		OrderIDs []string `json:"order_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.OrderIDs) == 0 {
		c.JSON(http.StatusBadRequest, notify.Warning("Selecione pelo menos um pedido para finalizar!"))
		return
	}

	succeeded, failed := h.service.FinishBatch(c.Request.Context(), token(c), req.OrderIDs)
	message := BatchMessage(succeeded, failed)

	switch {
	case failed > 0 && succeeded > 0:
		c.JSON(http.StatusMultiStatus, gin.H{
			"succeeded": succeeded,
			"failed":    failed,
			"toast":     notify.Warning(message),
		})
	case failed > 0:
		c.JSON(http.StatusBadGateway, gin.H{
			"succeeded": succeeded,
			"failed":    failed,
			"toast":     notify.Error(message),
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"succeeded": succeeded,
			"failed":    failed,
			"toast":     notify.Success(message),
		})
	}
}
