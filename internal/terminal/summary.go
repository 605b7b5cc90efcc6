package terminal

import (
	"context"
	"log"
)

// DailySummary is the terminal's view of the day's aggregate figures
type DailySummary struct {
	GrossSalesAmount   float64
	TaxCollectedAmount float64
	NetRevenueAmount   float64
	TotalTransactions  int64
}

// SummaryAggregator holds the day's figures as shown on the terminal. The
// backend is the only writer of substance: figures are fetched or overwritten
// wholesale, never incremented locally from cart contents.
type SummaryAggregator struct {
	client  *Client
	current DailySummary
	loaded  bool
}

// NewSummaryAggregator creates an aggregator over the given client
func NewSummaryAggregator(client *Client) *SummaryAggregator {
	return &SummaryAggregator{client: client}
}

// Fetch reads today's figures from the backend. On failure the prior figures
// are kept; a transient network blip must not blank the display to zero.
func (a *SummaryAggregator) Fetch(ctx context.Context) error {
	wire, err := a.client.FetchDailySummary(ctx)
	if err != nil {
		log.Printf("Daily summary fetch failed, keeping last known figures: %v", err)
		return err
	}
	a.applyWire(wire)
	return nil
}

// ApplyAuthoritative overwrites the figures with a trusted backend response
func (a *SummaryAggregator) ApplyAuthoritative(wire *SummaryWire) {
	a.applyWire(wire)
}

func (a *SummaryAggregator) applyWire(wire *SummaryWire) {
	a.current = DailySummary{
		GrossSalesAmount:   wire.GrossSalesAmount,
		TaxCollectedAmount: wire.TaxCollectedAmount,
		NetRevenueAmount:   wire.NetRevenueAmount,
		TotalTransactions:  wire.TotalTransactions,
	}
	a.loaded = true
}

// Current returns the last known figures
func (a *SummaryAggregator) Current() DailySummary {
	return a.current
}

// Loaded reports whether any figures have been received yet
func (a *SummaryAggregator) Loaded() bool {
	return a.loaded
}
