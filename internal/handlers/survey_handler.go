package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"nanofrontier/internal/config"
	"nanofrontier/internal/services"
)

type SurveyHandler struct {
	Cfg     *config.Config
	Service *services.SurveyService
}

func NewSurveyHandler(cfg *config.Config, service *services.SurveyService) *SurveyHandler {
	return &SurveyHandler{Cfg: cfg, Service: service}
}

// @Summary      Каталог предложений
// @Tags         Offerings
// @Produce      json
// @Success      200  {array}  config.Offering
// @Router       /offerings [get]
func (h *SurveyHandler) ListOfferings(c *gin.Context) {
	c.JSON(http.StatusOK, h.Cfg.Offerings)
}

// @Summary      Предложение по коду
// @Tags         Offerings
// @Produce      json
// @Param        code  path      string  true  "Код предложения"
// @Success      200   {object}  config.Offering
// @Failure      404   {object}  map[string]string
// @Router       /offerings/{code} [get]
func (h *SurveyHandler) GetOffering(c *gin.Context) {
	off, ok := h.Cfg.FindOffering(c.Param("code"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "offering not found"})
		return
	}
	c.JSON(http.StatusOK, off)
}

// @Summary      Калькулятор прогноза
// @Description  Чистый расчёт amount × multiplier; ничего не сохраняет. Нечисловой ввод трактуется как 0.
// @Tags         Offerings
// @Produce      json
// @Param        code    path   string  true   "Код предложения"
// @Param        amount  query  string  false  "Номинал"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /offerings/{code}/projection [get]
func (h *SurveyHandler) Projection(c *gin.Context) {
	off, ok := h.Cfg.FindOffering(c.Param("code"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "offering not found"})
		return
	}
	amount := services.ParseAmount(c.Query("amount"))
	c.JSON(http.StatusOK, gin.H{
		"amount":          amount,
		"multiplier":      off.Multiplier,
		"projected_value": services.ComputeProjection(amount, off.Multiplier),
		"meets_minimum":   amount >= off.MinInvestment,
		"min_investment":  off.MinInvestment,
	})
}

// @Summary      Отправить заявку
// @Description  Валидирует и сохраняет заявку; submitted_at назначает БД. Повтор submission_token возвращает исходную заявку.
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        code  path  string                      true  "Код предложения"
// @Param        lead  body  services.SubmissionRequest  true  "Данные заявки"
// @Success      201  {object}  models.SubmissionResult
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /offerings/{code}/leads [post]
func (h *SurveyHandler) Submit(c *gin.Context) {
	off, ok := h.Cfg.FindOffering(c.Param("code"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "offering not found"})
		return
	}

	var req services.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.Submit(off, getVisitorID(c), req)
	if err != nil {
		var belowMin *services.BelowMinimumError
		var missing *services.MissingFieldError
		var persistence *services.PersistenceFailedError
		switch {
		case errors.Is(err, services.ErrNotReady):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "identity not ready, retry after obtaining a session"})
		case errors.As(err, &belowMin):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":          belowMin.Error(),
				"min_investment": belowMin.Minimum,
			})
		case errors.As(err, &missing):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": missing.Error(), "field": missing.Field})
		case errors.As(err, &persistence):
			log.Printf("[survey][submit] offering=%s persist failed: %v", off.Code, persistence.Unwrap())
			c.JSON(http.StatusBadGateway, gin.H{"error": "submission could not be saved, please try again"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	status := http.StatusCreated
	if result.Duplicate {
		status = http.StatusOK
	}
	c.JSON(status, result)
}
