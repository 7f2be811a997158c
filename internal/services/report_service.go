package services

import (
	"log"
	"math"
	"sort"

	"nanofrontier/internal/config"
	"nanofrontier/internal/models"
	"nanofrontier/internal/realtime"
)

// ReportService — привилегированный срез по всем заявкам предложения.
type ReportService struct {
	Store LeadStore
	Hub   *realtime.DashboardHub
}

func NewReportService(store LeadStore, hub *realtime.DashboardHub) *ReportService {
	return &ReportService{Store: store, Hub: hub}
}

// Summary пересчитывает агрегат по текущему набору заявок.
func (s *ReportService) Summary(off config.Offering) (*models.DemandSummary, error) {
	leads, err := s.Store.ListByOffering(off.Code)
	if err != nil {
		return nil, err
	}
	return BuildSummary(off, leads), nil
}

// BuildSummary сортирует заявки (свежие первыми, без серверной отметки —
// в конец, стабильно) и считает объём и количество. Хранилище не
// навязывает схему, поэтому суммирование терпимо к мусорным значениям.
func BuildSummary(off config.Offering, leads []*models.Lead) *models.DemandSummary {
	sorted := make([]*models.Lead, len(leads))
	copy(sorted, leads)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := sorted[i].SubmittedAt, sorted[j].SubmittedAt
		if ti.IsZero() || tj.IsZero() {
			return tj.IsZero() && !ti.IsZero()
		}
		return ti.After(tj)
	})

	var total float64
	for _, l := range sorted {
		a := l.Amount
		if math.IsNaN(a) || math.IsInf(a, 0) {
			a = 0
		}
		total += a
	}

	return &models.DemandSummary{
		OfferingCode: off.Code,
		ProductName:  off.ProductName,
		Currency:     off.Currency,
		TotalVolume:  total,
		LeadCount:    len(sorted),
		Leads:        sorted,
	}
}

// Publish рассылает свежий агрегат всем подписчикам дашборда.
// Ошибка здесь не должна ломать сам приём заявки.
func (s *ReportService) Publish(off config.Offering) {
	if s.Hub == nil {
		return
	}
	summary, err := s.Summary(off)
	if err != nil {
		log.Printf("[report][publish] offering=%s: %v", off.Code, err)
		return
	}
	s.Hub.Broadcast(off.Code, summary)
}
