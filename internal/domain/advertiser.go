package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Plano string

const (
	PlanoBronze Plano = "bronze"
	PlanoPrata  Plano = "prata"
	PlanoOuro   Plano = "ouro"
)

func (p Plano) IsValid() bool {
	switch p {
	case PlanoBronze, PlanoPrata, PlanoOuro:
		return true
	}
	return false
}

// Advertiser é uma empresa listada no clube de vantagens (tabela anunciantes).
// MonthlyFee igual a zero indica listagem gratuita de morador.
type Advertiser struct {
	ID                string          `json:"id"`
	CompanyName       string          `json:"nome_empresa"`
	CategoryID        *string         `json:"categoria_id"`
	Description       string          `json:"descricao"`
	Phone             *string         `json:"telefone"`
	Whatsapp          *string         `json:"whatsapp"`
	Email             *string         `json:"email"`
	Address           *string         `json:"endereco"`
	SiteURL           *string         `json:"site_url"`
	Instagram         *string         `json:"instagram"`
	LogoURL           *string         `json:"logo_url"`
	BannerURL         *string         `json:"banner_url"`
	Plan              Plano           `json:"plano"`
	Active            bool            `json:"ativo"`
	Featured          bool            `json:"destaque"`
	Views             int64           `json:"visualizacoes"`
	Clicks            int64           `json:"cliques"`
	MonthlyFee        decimal.Decimal `json:"valor_mensal"`
	DueDay            int             `json:"dia_vencimento"`
	ManagerCommission decimal.Decimal `json:"comissao_gestor"`
	ContractStart     *time.Time      `json:"contrato_inicio"`
	ContractMonths    *int            `json:"contrato_duracao"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// IsBillable indica se o anunciante deve ter cobrança no mês corrente
func (a *Advertiser) IsBillable() bool {
	return a != nil && a.Active && a.MonthlyFee.GreaterThan(decimal.Zero)
}

type AdvertiserFilter struct {
	OnlyActive   bool
	OnlyFeatured bool
	Limit        uint64
}

type CreateAdvertiserRequest struct {
	CompanyName       string           `json:"nome_empresa"`
	CategoryID        *string          `json:"categoria_id,omitempty"`
	Description       string           `json:"descricao"`
	Phone             *string          `json:"telefone,omitempty"`
	Whatsapp          *string          `json:"whatsapp,omitempty"`
	Email             *string          `json:"email,omitempty"`
	Address           *string          `json:"endereco,omitempty"`
	SiteURL           *string          `json:"site_url,omitempty"`
	Instagram         *string          `json:"instagram,omitempty"`
	LogoURL           *string          `json:"logo_url,omitempty"`
	BannerURL         *string          `json:"banner_url,omitempty"`
	Plan              Plano            `json:"plano"`
	Active            *bool            `json:"ativo,omitempty"`
	Featured          bool             `json:"destaque"`
	MonthlyFee        decimal.Decimal  `json:"valor_mensal"`
	DueDay            int              `json:"dia_vencimento"`
	ManagerCommission *decimal.Decimal `json:"comissao_gestor,omitempty"`
	ContractStart     *string          `json:"contrato_inicio,omitempty"` // AAAA-MM-DD
	ContractMonths    *int             `json:"contrato_duracao,omitempty"`
}

type UpdateAdvertiserRequest struct {
	ID                string           `json:"id"`
	CompanyName       *string          `json:"nome_empresa,omitempty"`
	CategoryID        *string          `json:"categoria_id,omitempty"`
	Description       *string          `json:"descricao,omitempty"`
	Phone             *string          `json:"telefone,omitempty"`
	Whatsapp          *string          `json:"whatsapp,omitempty"`
	Email             *string          `json:"email,omitempty"`
	Address           *string          `json:"endereco,omitempty"`
	SiteURL           *string          `json:"site_url,omitempty"`
	Instagram         *string          `json:"instagram,omitempty"`
	LogoURL           *string          `json:"logo_url,omitempty"`
	BannerURL         *string          `json:"banner_url,omitempty"`
	Plan              *Plano           `json:"plano,omitempty"`
	Active            *bool            `json:"ativo,omitempty"`
	Featured          *bool            `json:"destaque,omitempty"`
	MonthlyFee        *decimal.Decimal `json:"valor_mensal,omitempty"`
	DueDay            *int             `json:"dia_vencimento,omitempty"`
	ManagerCommission *decimal.Decimal `json:"comissao_gestor,omitempty"`
	ContractStart     *string          `json:"contrato_inicio,omitempty"` // AAAA-MM-DD
	ContractMonths    *int             `json:"contrato_duracao,omitempty"`
}
