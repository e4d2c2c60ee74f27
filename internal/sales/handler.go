package sales

import (
	"net/http"
	"time"

	"pizzadash/internal/money"
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
// GET /order/sales?period=&date=&start_date=&end_date=
// --------------------------------------------------
//

func (h *Handler) Get(c *gin.Context) {
	filter, err := NewFilter(
		Period(c.DefaultQuery("period", string(PeriodDay))),
		c.Query("date"),
		c.Query("start_date"),
		c.Query("end_date"),
		time.Now(),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, notify.Warning(err.Error()))
		return
	}

	summary, err := h.service.Fetch(c.Request.Context(), c.GetString("token"), filter)
	if err != nil {
		c.JSON(http.StatusBadGateway, notify.Error("Erro ao buscar vendas"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":              summary.Total,
		"total_display":      money.FormatBRL(summary.Total),
		"period":             summary.Period,
		"start_date":         summary.StartDate,
		"end_date":           summary.EndDate,
		"orders_count":       summary.OrdersCount,
		"avg_ticket":         summary.AvgTicket,
		"avg_ticket_display": money.FormatBRL(summary.AvgTicket),
	})
}
