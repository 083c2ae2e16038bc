// Package metrics expõe os contadores Prometheus do financeiro do clube
package metrics

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/portalcondominio/clube-api/internal/domain"
	"github.com/portalcondominio/clube-api/internal/usecases/authorizing"
)

const (
	OperationGenerate = "gerar_cobrancas"
	OperationOverdue  = "atualizar_atrasados"
	OperationSync     = "sincronizar"
	OperationPayment  = "registrar_pagamento"
)

const (
	ReasonDeadlineExceeded = "deadline_exceeded"
	ReasonForbidden        = "forbidden"
	ReasonUniqueViolation  = "unique_violation"
	ReasonDB               = "db"
	ReasonUnknown          = "unknown"
)

// BillingMetrics agrupa os contadores das rotinas de cobrança. Um ponteiro nil
// é válido e ignora todas as observações.
type BillingMetrics struct {
	runs               *prometheus.CounterVec
	syncedRecords      *prometheus.CounterVec
	syncFailures       *prometheus.CounterVec
	overdueTransitions prometheus.Counter
	payments           prometheus.Counter
}

func NewBillingMetrics(registerer prometheus.Registerer) *BillingMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &BillingMetrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clube_billing_runs_total",
			Help: "Execuções das rotinas de cobrança por operação e resultado.",
		}, []string{"operation", "result"}),
		syncedRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clube_billing_synced_records_total",
			Help: "Registros financeiros sincronizados por efeito.",
		}, []string{"action"}),
		syncFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clube_billing_sync_failures_total",
			Help: "Falhas de sincronização de anunciantes por motivo.",
		}, []string{"reason"}),
		overdueTransitions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clube_billing_overdue_transitions_total",
			Help: "Registros movidos de pendente para atrasado.",
		}),
		payments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clube_billing_payments_total",
			Help: "Pagamentos registrados.",
		}),
	}

	registerer.MustRegister(m.runs, m.syncedRecords, m.syncFailures, m.overdueTransitions, m.payments)

	return m
}

func (m *BillingMetrics) ObserveRun(operation string, err error) {
	if m == nil {
		return
	}

	result := "success"
	if err != nil {
		result = "failure"
	}
	m.runs.WithLabelValues(operation, result).Inc()
}

func (m *BillingMetrics) ObserveSync(action domain.SyncAction) {
	if m == nil {
		return
	}
	m.syncedRecords.WithLabelValues(string(action)).Inc()
}

func (m *BillingMetrics) ObserveSyncFailure(err error) {
	if m == nil {
		return
	}
	m.syncFailures.WithLabelValues(ClassifyReason(err)).Inc()
}

func (m *BillingMetrics) AddOverdueTransitions(count int64) {
	if m == nil || count <= 0 {
		return
	}
	m.overdueTransitions.Add(float64(count))
}

func (m *BillingMetrics) ObservePayment() {
	if m == nil {
		return
	}
	m.payments.Inc()
}

// ClassifyReason reduz um erro a um rótulo de baixa cardinalidade
func ClassifyReason(err error) string {
	if err == nil {
		return ReasonUnknown
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ReasonDeadlineExceeded
	}

	if authorizing.IsPolicyError(err) {
		return ReasonForbidden
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code.Name() == "unique_violation" {
			return ReasonUniqueViolation
		}
		return ReasonDB
	}

	return ReasonUnknown
}
