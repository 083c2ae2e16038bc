package domain

import "github.com/shopspring/decimal"

// DashboardMetrics são os indicadores do painel do clube, sempre derivados
// dos registros financeiros e dos anunciantes ativos no momento da leitura.
type DashboardMetrics struct {
	ReferenceMonth string `json:"mesReferencia"`

	PotentialMonthlyRevenue decimal.Decimal `json:"receitaPotencialMensal"`
	MonthlyRevenue          decimal.Decimal `json:"receitaMensal"`
	PreviousMonthlyRevenue  decimal.Decimal `json:"receitaMesAnterior"`
	ManagerMonthlyShare     decimal.Decimal `json:"ganhoGestorMensal"`
	CondominiumMonthlyShare decimal.Decimal `json:"ganhoCondominioMensal"`
	ManagerSharePercent     decimal.Decimal `json:"comissaoPercentual"`
	RevenueGrowthPercent    decimal.Decimal `json:"crescimentoReceitaPercentual"`

	PendingAmount   decimal.Decimal `json:"valorPendente"`
	PendingPayments int             `json:"pagamentosPendentes"`

	PayingAdvertisers        int             `json:"anunciantesPagantesEsteMes"`
	AverageRevenuePerPayment decimal.Decimal `json:"receitaMediaPorAnunciante"`

	ActiveAdvertisers          int             `json:"totalAnunciantesAtivos"`
	TotalViews                 int64           `json:"visualizacoesTotais"`
	TotalClicks                int64           `json:"cliquesTotais"`
	AverageViewsPerAdvertiser  decimal.Decimal `json:"mediaVisualizacoesPorAnunciante"`
	AverageClicksPerAdvertiser decimal.Decimal `json:"mediaCliquesPorAnunciante"`
	ClickThroughRatePercent    decimal.Decimal `json:"taxaCliquesPercentual"`
}
