package services

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanofrontier/internal/models"
)

func leadAt(id int64, amount float64, at time.Time) *models.Lead {
	return &models.Lead{
		ID:           id,
		OfferingCode: testOffering.Code,
		InvestorName: fmt.Sprintf("Investor %d", id),
		Email:        fmt.Sprintf("i%d@example.com", id),
		Amount:       amount,
		SubmittedAt:  at,
	}
}

func TestBuildSummaryAggregates(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	leads := []*models.Lead{
		leadAt(1, 5000, base),
		leadAt(2, 7500, base.Add(time.Minute)),
		leadAt(3, 12000, base.Add(2*time.Minute)),
	}

	summary := BuildSummary(testOffering, leads)

	assert.Equal(t, 24500.0, summary.TotalVolume)
	assert.Equal(t, 3, summary.LeadCount)
	assert.Equal(t, testOffering.ProductName, summary.ProductName)
}

func TestBuildSummaryRunningTotals(t *testing.T) {
	// агрегат пересчитывается корректно после каждой новой заявки
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	amounts := []float64{5000, 6000, 7000, 8000}

	var leads []*models.Lead
	var wantTotal float64
	for i, a := range amounts {
		leads = append(leads, leadAt(int64(i+1), a, base.Add(time.Duration(i)*time.Second)))
		wantTotal += a

		summary := BuildSummary(testOffering, leads)
		assert.Equal(t, wantTotal, summary.TotalVolume)
		assert.Equal(t, i+1, summary.LeadCount)
	}
}

func TestBuildSummarySortOrder(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	// порядок прихода событий не совпадает с submitted_at
	leads := []*models.Lead{
		leadAt(2, 100, base.Add(time.Minute)),
		leadAt(4, 100, base.Add(3*time.Minute)),
		leadAt(1, 100, base),
		leadAt(3, 100, base.Add(2*time.Minute)),
	}

	summary := BuildSummary(testOffering, leads)

	require.Len(t, summary.Leads, 4)
	for i := 0; i < len(summary.Leads)-1; i++ {
		assert.True(t,
			summary.Leads[i].SubmittedAt.After(summary.Leads[i+1].SubmittedAt),
			"leads must be strictly descending by submitted_at",
		)
	}
	assert.Equal(t, int64(4), summary.Leads[0].ID)
	assert.Equal(t, int64(1), summary.Leads[3].ID)
}

func TestBuildSummaryInFlightLeadsSortLast(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	inFlightA := leadAt(10, 100, time.Time{})
	inFlightB := leadAt(11, 100, time.Time{})
	leads := []*models.Lead{
		inFlightA,
		leadAt(1, 100, base),
		inFlightB,
		leadAt(2, 100, base.Add(time.Minute)),
	}

	summary := BuildSummary(testOffering, leads)

	require.Len(t, summary.Leads, 4)
	assert.Equal(t, int64(2), summary.Leads[0].ID)
	assert.Equal(t, int64(1), summary.Leads[1].ID)
	// без серверной отметки — в конец, в порядке прихода
	assert.Equal(t, int64(10), summary.Leads[2].ID)
	assert.Equal(t, int64(11), summary.Leads[3].ID)
}

func TestBuildSummaryDefensiveAmounts(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	bad := leadAt(2, math.NaN(), base.Add(time.Second))
	leads := []*models.Lead{
		leadAt(1, 5000, base),
		bad,
	}

	summary := BuildSummary(testOffering, leads)

	assert.Equal(t, 5000.0, summary.TotalVolume, "non-numeric amount counts as 0")
	assert.Equal(t, 2, summary.LeadCount)
}

func TestSummaryReadsStore(t *testing.T) {
	store := newFakeLeadStore()
	svc := NewSurveyService(store, nil, nil, nil)
	reports := NewReportService(store, nil)

	for i := 0; i < 3; i++ {
		req := validRequest()
		req.SubmissionToken = fmt.Sprintf("tok-%d", i)
		_, err := svc.Submit(testOffering, "visitor-1", req)
		require.NoError(t, err)
	}

	summary, err := reports.Summary(testOffering)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.LeadCount)
	assert.Equal(t, 15000.0, summary.TotalVolume)

	// Publish с не сконфигурированным хабом — безопасный no-op
	reports.Publish(testOffering)
}
