package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nanofrontier/internal/config"
	"nanofrontier/internal/pdf"
	"nanofrontier/internal/realtime"
	"nanofrontier/internal/services"
)

type DashboardHandler struct {
	Cfg     *config.Config
	Reports *services.ReportService
	Hub     *realtime.DashboardHub
	PDF     pdf.Generator
}

func NewDashboardHandler(cfg *config.Config, reports *services.ReportService, hub *realtime.DashboardHub, gen pdf.Generator) *DashboardHandler {
	return &DashboardHandler{Cfg: cfg, Reports: reports, Hub: hub, PDF: gen}
}

// @Summary      Сводка спроса
// @Tags         Dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        code  path      string  true  "Код предложения"
// @Success      200   {object}  models.DemandSummary
// @Failure      404   {object}  map[string]string
// @Router       /dashboard/{code}/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	off, ok := h.Cfg.FindOffering(c.Param("code"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "offering not found"})
		return
	}
	summary, err := h.Reports.Summary(off)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary      PDF-отчёт по спросу
// @Tags         Dashboard
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        code  path  string  true  "Код предложения"
// @Success      200   {file}  binary
// @Failure      404   {object}  map[string]string
// @Router       /dashboard/{code}/report.pdf [get]
func (h *DashboardHandler) ReportPDF(c *gin.Context) {
	off, ok := h.Cfg.FindOffering(c.Param("code"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "offering not found"})
		return
	}
	summary, err := h.Reports.Summary(off)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data := pdf.ReportData{
		ProductName: summary.ProductName,
		Currency:    summary.Currency,
		TotalVolume: summary.TotalVolume,
		LeadCount:   summary.LeadCount,
		GeneratedAt: time.Now(),
	}
	for _, l := range summary.Leads {
		data.Leads = append(data.Leads, pdf.ReportLead{
			InvestorName: l.InvestorName,
			Email:        l.Email,
			Amount:       l.Amount,
			SubmittedAt:  l.SubmittedAt,
		})
	}

	raw, err := h.PDF.GenerateDemandReport(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render report"})
		return
	}
	operatorID, _ := getOperatorAndRole(c)
	log.Printf("[dashboard][report] offering=%s operator=%d leads=%d", off.Code, operatorID, summary.LeadCount)
	filename := fmt.Sprintf("demand_%s.pdf", off.Code)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", raw)
}

// Stream — живая подписка: сразу отдаёт текущую сводку и далее шлёт
// свежий агрегат после каждой новой заявки. Отписка гарантирована на
// любом пути выхода.
//
// @Summary      Живой поток сводки (WebSocket)
// @Tags         Dashboard
// @Security     BearerAuth
// @Param        code  path  string  true  "Код предложения"
// @Success      101
// @Failure      404  {object}  map[string]string
// @Router       /dashboard/{code}/stream [get]
func (h *DashboardHandler) Stream(c *gin.Context) {
	off, ok := h.Cfg.FindOffering(c.Param("code"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "offering not found"})
		return
	}

	conn, err := realtime.Upgrade(c.Writer, c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.Hub.Register(off.Code, conn)
	defer h.Hub.Unregister(off.Code, conn)

	if summary, err := h.Reports.Summary(off); err == nil {
		if err := conn.WriteJSON(summary); err != nil {
			return
		}
	} else {
		log.Printf("[dashboard][stream] initial summary offering=%s: %v", off.Code, err)
	}

	conn.WaitClosed()
}
