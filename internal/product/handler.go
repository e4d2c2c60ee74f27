package product

import (
	"errors"
	"net/http"
	"strings"

	"pizzadash/internal/catalog"
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

//
// --------------------------------------------------
// GET /products (grouped) and /category/product?category_id=
// --------------------------------------------------
//

func (h *Handler) ListGrouped(c *gin.Context) {
	grouped, err := h.service.List(c.Request.Context(), c.GetString("token"))
	if err != nil {
		c.JSON(http.StatusBadGateway, notify.Error(err.Error()))
		return
	}
	c.JSON(http.StatusOK, grouped)
}

func (h *Handler) ListByCategory(c *gin.Context) {
	products, err := h.catalog.FetchProducts(c.Request.Context(), c.GetString("token"))
	if err != nil {
		c.JSON(http.StatusBadGateway, notify.Error(err.Error()))
		return
	}
	c.JSON(http.StatusOK, catalog.FilterByCategory(products, c.Query("category_id")))
}

//
// --------------------------------------------------
// POST /product (multipart)
// --------------------------------------------------
//

func (h *Handler) Create(c *gin.Context) {
	form := CreateForm{
		Name:            c.PostForm("name"),
		Description:     c.PostForm("description"),
		CategoryID:      c.PostForm("category_id"),
		Price:           c.PostForm("price"),
		HasCustomPrices: c.PostForm("has_custom_prices") == "true",
		SizePrices:      make(map[string]string),
	}

	// size prices come as size_price[<size_id>]=<value>
	if c.Request.MultipartForm != nil {
		for key, values := range c.Request.MultipartForm.Value {
			if strings.HasPrefix(key, "size_price[") && strings.HasSuffix(key, "]") && len(values) > 0 {
				sizeID := key[len("size_price[") : len(key)-1]
				form.SizePrices[sizeID] = values[0]
			}
		}
	}

	if file, header, err := c.Request.FormFile("file"); err == nil {
		defer file.Close()
		form.Banner = file
		form.BannerName = header.Filename
	}

	if err := h.service.Create(c.Request.Context(), c.GetString("token"), form); err != nil {
		if errors.Is(err, ErrMissingFields) {
			c.JSON(http.StatusBadRequest, notify.Warning("Preencha o nome do produto e selecione uma categoria!"))
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
	c.JSON(http.StatusCreated, notify.Success("Produto cadastrado com sucesso!"))
}

//
// --------------------------------------------------
// DELETE /product?product_id=
// --------------------------------------------------
//

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.GetString("token"), c.Query("product_id")); err != nil {
		if errors.Is(err, ErrMissingID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
			return
		}
		c.JSON(http.StatusBadGateway, notify.Error(err.Error()))
		return
	}
	c.JSON(http.StatusOK, notify.Success("Produto deletado com sucesso!"))
}
