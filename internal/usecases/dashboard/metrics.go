package dashboard

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/portalcondominio/clube-api/internal/domain"
	"github.com/portalcondominio/clube-api/pkg/utils"
)

// ComputeMetrics calcula os indicadores do painel sem efeitos colaterais.
// O mês corrente é o YYYY-MM de now; splitPercent é a comissão do gestor em %.
func ComputeMetrics(
	records []*domain.FinancialRecord,
	advertisers []*domain.Advertiser,
	now time.Time,
	splitPercent decimal.Decimal,
) domain.DashboardMetrics {
	currentKey := utils.MonthKey(now)
	previousKey := utils.MonthKey(utils.PreviousMonth(now))

	metrics := domain.DashboardMetrics{
		ReferenceMonth:      currentKey,
		ManagerSharePercent: splitPercent,
	}

	previousRevenue := decimal.Zero
	payingAdvertisers := make(map[string]struct{})

	for _, record := range records {
		if record == nil {
			continue
		}

		month := utils.FormatDate(record.ReferenceMonth)

		if strings.HasPrefix(month, previousKey) && record.IsPaid() {
			previousRevenue = previousRevenue.Add(record.AmountPaid.Decimal)
			continue
		}

		if !strings.HasPrefix(month, currentKey) {
			continue
		}

		metrics.PotentialMonthlyRevenue = metrics.PotentialMonthlyRevenue.Add(record.AmountDue)

		switch {
		case record.IsPaid():
			metrics.MonthlyRevenue = metrics.MonthlyRevenue.Add(record.AmountPaid.Decimal)
			payingAdvertisers[record.AdvertiserID] = struct{}{}
		case record.Status.IsOpen():
			metrics.PendingAmount = metrics.PendingAmount.Add(record.AmountDue)
			metrics.PendingPayments++
		}
	}

	metrics.PreviousMonthlyRevenue = previousRevenue
	metrics.ManagerMonthlyShare = utils.RoundWithTwoDecimalPlace(utils.ApplyPercent(metrics.MonthlyRevenue, splitPercent))
	metrics.CondominiumMonthlyShare = metrics.MonthlyRevenue.Sub(metrics.ManagerMonthlyShare)
	metrics.RevenueGrowthPercent = growthPercent(metrics.MonthlyRevenue, previousRevenue)

	metrics.PayingAdvertisers = len(payingAdvertisers)
	if metrics.PayingAdvertisers > 0 {
		metrics.AverageRevenuePerPayment = utils.RoundWithTwoDecimalPlace(
			metrics.MonthlyRevenue.Div(decimal.NewFromInt(int64(metrics.PayingAdvertisers))),
		)
	}

	for _, advertiser := range advertisers {
		if advertiser == nil || !advertiser.Active {
			continue
		}
		metrics.ActiveAdvertisers++
		metrics.TotalViews += advertiser.Views
		metrics.TotalClicks += advertiser.Clicks
	}

	if metrics.ActiveAdvertisers > 0 {
		active := decimal.NewFromInt(int64(metrics.ActiveAdvertisers))
		metrics.AverageViewsPerAdvertiser = utils.RoundWithTwoDecimalPlace(decimal.NewFromInt(metrics.TotalViews).Div(active))
		metrics.AverageClicksPerAdvertiser = utils.RoundWithTwoDecimalPlace(decimal.NewFromInt(metrics.TotalClicks).Div(active))
	}
	metrics.ClickThroughRatePercent = utils.Percent(decimal.NewFromInt(metrics.TotalClicks), decimal.NewFromInt(metrics.TotalViews))

	return metrics
}

// growthPercent vale 100 quando o mês anterior é zero e o atual é positivo
func growthPercent(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.GreaterThan(decimal.Zero) {
			return decimal.NewFromInt(100)
		}
		return decimal.Zero
	}

	return utils.Percent(current.Sub(previous), previous)
}
