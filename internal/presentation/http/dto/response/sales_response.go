package response

import (
	"time"

	"github.com/jakindah/motorshop-api/internal/domain/entity"
	"github.com/jakindah/motorshop-api/internal/domain/repository"
)

// DailySummaryResponse is the reconciliation payload terminals treat as
// authoritative for the day's figures
type DailySummaryResponse struct {
	Date               string  `json:"date"`
	GrossSalesAmount   float64 `json:"grossSalesAmount"`
	TaxCollectedAmount float64 `json:"taxCollectedAmount"`
	NetRevenueAmount   float64 `json:"netRevenueAmount"`
	TotalTransactions  int64   `json:"totalTransactions"`
}

// NewDailySummaryResponse converts a cents-based aggregate to the wire format
func NewDailySummaryResponse(date time.Time, summary *repository.SalesSummary) *DailySummaryResponse {
	return &DailySummaryResponse{
		Date:               date.Format("2006-01-02"),
		GrossSalesAmount:   float64(summary.GrossSales) / 100,
		TaxCollectedAmount: float64(summary.TaxCollected) / 100,
		NetRevenueAmount:   float64(summary.NetRevenue) / 100,
		TotalTransactions:  summary.TotalTransactions,
	}
}

// RecordSaleResponse returns the persisted invoice together with the
// refreshed daily summary in a single round trip. The summary is omitted
// when its recompute fails after the sale has committed; terminals fall
// back to their own refresh.
type RecordSaleResponse struct {
	Invoice        *entity.Sale          `json:"invoice"`
	UpdatedSummary *DailySummaryResponse `json:"updatedSummary,omitempty"`
}
