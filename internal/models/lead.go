package models

import "time"

// Lead — одна заявка на участие. Append-only: после создания не меняется.
type Lead struct {
	ID           int64     `json:"id"`
	OfferingCode string    `json:"offering_code"`
	ProductName  string    `json:"product_name"`
	InvestorName string    `json:"investor_name"`
	Email        string    `json:"email"`
	Amount       float64   `json:"amount"`
	SubmittedAt  time.Time `json:"submitted_at"` // проставляется БД, не клиентом

	// идентичность отправителя — для трассировки, наружу не отдаём
	VisitorID       string `json:"-"`
	SubmissionToken string `json:"-"`
}

// SubmissionResult — что возвращаем клиенту после успешной заявки.
// ProjectedValue считается на лету и нигде не хранится.
type SubmissionResult struct {
	LeadID         int64   `json:"lead_id"`
	Amount         float64 `json:"amount"`
	ProjectedValue float64 `json:"projected_value"`
	Duplicate      bool    `json:"duplicate,omitempty"`
}

// DemandSummary — агрегат по всем заявкам предложения.
type DemandSummary struct {
	OfferingCode string  `json:"offering_code"`
	ProductName  string  `json:"product_name"`
	Currency     string  `json:"currency"`
	TotalVolume  float64 `json:"total_volume"`
	LeadCount    int     `json:"lead_count"`
	Leads        []*Lead `json:"leads"`
}
