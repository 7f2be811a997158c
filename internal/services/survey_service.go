package services

import (
	"encoding/json"
	"log"
	"math"
	"strconv"
	"strings"

	"nanofrontier/internal/config"
	"nanofrontier/internal/models"
	"nanofrontier/internal/repositories"
	"nanofrontier/internal/utils"
)

// LeadStore — то, что сервису нужно от хранилища заявок.
type LeadStore interface {
	Create(lead *models.Lead) error
	GetBySubmissionToken(token string) (*models.Lead, error)
	ListByOffering(code string) ([]*models.Lead, error)
}

type SubmissionRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	// Amount приходит из текстового поля: допускаем и число, и строку.
	Amount          interface{} `json:"amount" swaggertype:"number"`
	SubmissionToken string      `json:"submission_token"`
}

type SurveyService struct {
	Store    LeadStore
	Reports  *ReportService
	Mailer   EmailService
	Notifier *TelegramNotifier
}

func NewSurveyService(store LeadStore, reports *ReportService, mailer EmailService, notifier *TelegramNotifier) *SurveyService {
	return &SurveyService{Store: store, Reports: reports, Mailer: mailer, Notifier: notifier}
}

// ComputeProjection — чистая функция: amount × multiplier, без побочных эффектов.
func ComputeProjection(amount, multiplier float64) float64 {
	return amount * multiplier
}

// ParseAmount приводит пользовательский ввод к числу.
// Нечисловое или не-конечное значение считаем нулём, а не ошибкой.
func ParseAmount(v interface{}) float64 {
	var amount float64
	switch t := v.(type) {
	case float64:
		amount = t
	case int:
		amount = float64(t)
	case int64:
		amount = float64(t)
	case json.Number:
		amount, _ = t.Float64()
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		amount = parsed
	default:
		return 0
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return amount
}

// базовая проверка формы local@domain; доставляемость не проверяем
func validEmailShape(s string) bool {
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || domain == "" {
		return false
	}
	return !strings.Contains(domain, "@") && !strings.ContainsAny(s, " \t")
}

// Submit валидирует заявку и, если всё в порядке, сохраняет новый Lead.
// Порядок проверок фиксированный, первая ошибка выигрывает; все проверки
// выполняются до обращения к хранилищу.
func (s *SurveyService) Submit(off config.Offering, visitorID string, req SubmissionRequest) (*models.SubmissionResult, error) {
	if visitorID == "" {
		return nil, ErrNotReady
	}

	amount := ParseAmount(req.Amount)
	if amount < off.MinInvestment {
		return nil, &BelowMinimumError{Minimum: off.MinInvestment, Currency: off.Currency}
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}

	email := strings.TrimSpace(req.Email)
	if !validEmailShape(email) {
		return nil, &MissingFieldError{Field: "email"}
	}

	token := strings.TrimSpace(req.SubmissionToken)
	if token == "" {
		generated, err := utils.NewSubmissionToken()
		if err != nil {
			return nil, &PersistenceFailedError{Err: err}
		}
		token = generated
	}

	lead := &models.Lead{
		OfferingCode:    off.Code,
		ProductName:     off.ProductName,
		InvestorName:    name,
		Email:           email,
		Amount:          amount,
		VisitorID:       visitorID,
		SubmissionToken: token,
	}

	if err := s.Store.Create(lead); err != nil {
		if repositories.IsUniqueViolation(err) {
			// повторная отправка того же submission_token: возвращаем
			// исходную заявку, второй документ не создаём
			existing, lookupErr := s.Store.GetBySubmissionToken(token)
			if lookupErr == nil && existing != nil {
				return &models.SubmissionResult{
					LeadID:         existing.ID,
					Amount:         existing.Amount,
					ProjectedValue: ComputeProjection(existing.Amount, off.Multiplier),
					Duplicate:      true,
				}, nil
			}
		}
		return nil, &PersistenceFailedError{Err: err}
	}

	projected := ComputeProjection(amount, off.Multiplier)

	if s.Reports != nil {
		s.Reports.Publish(off)
	}
	if s.Mailer != nil {
		go func() {
			if err := s.Mailer.SendSubmissionReceipt(lead.Email, lead.InvestorName, off, lead.Amount, projected); err != nil {
				log.Printf("[survey][mail] receipt to %q failed: %v", lead.Email, err)
			}
		}()
	}
	if s.Notifier != nil {
		go func() {
			if err := s.Notifier.NotifyNewLead(lead, off); err != nil {
				log.Printf("[survey][tg] notify failed: %v", err)
			}
		}()
	}

	return &models.SubmissionResult{
		LeadID:         lead.ID,
		Amount:         lead.Amount,
		ProjectedValue: projected,
	}, nil
}
