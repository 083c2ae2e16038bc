package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type FinancialStatus string

const (
	StatusPendente  FinancialStatus = "pendente"
	StatusPago      FinancialStatus = "pago"
	StatusAtrasado  FinancialStatus = "atrasado"
	StatusCancelado FinancialStatus = "cancelado"
)

// IsOpen indica cobranças ainda não quitadas e não canceladas
func (s FinancialStatus) IsOpen() bool {
	return s == StatusPendente || s == StatusAtrasado
}

// FinancialRecord é a cobrança de um anunciante para um mês de referência
// (tabela financeiro_clube). Existe no máximo um registro por (anunciante, mês).
type FinancialRecord struct {
	ID             string              `json:"id"`
	AdvertiserID   string              `json:"anunciante_id"`
	ReferenceMonth time.Time           `json:"mes_referencia"`
	AmountDue      decimal.Decimal     `json:"valor_contratado"`
	AmountPaid     decimal.NullDecimal `json:"valor_pago"`
	PaidAt         *time.Time          `json:"data_pagamento"`
	Status         FinancialStatus     `json:"status"`
	DueDate        time.Time           `json:"data_vencimento"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

func (r *FinancialRecord) IsPaid() bool {
	return r != nil && r.Status == StatusPago
}

// FinancialRecordWithAdvertiser é usado na listagem de pagamentos do mês
type FinancialRecordWithAdvertiser struct {
	FinancialRecord
	CompanyName string `json:"nome_empresa"`
}

type FinancialRecordFilter struct {
	FromMonth *time.Time
	ToMonth   *time.Time
	Statuses  []FinancialStatus
}

// SyncAction descreve o efeito de uma sincronização de cobrança
type SyncAction string

const (
	SyncActionCreated   SyncAction = "created"
	SyncActionUpdated   SyncAction = "updated"
	SyncActionDeleted   SyncAction = "deleted"
	SyncActionUnchanged SyncAction = "unchanged"
)

type BillingRunResult struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

type RegisterPaymentRequest struct {
	AmountPaid *decimal.Decimal `json:"valor_pago,omitempty"`
}
