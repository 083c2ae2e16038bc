package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/portalcondominio/clube-api/infrastructure/database/postgres"
	"github.com/portalcondominio/clube-api/internal/domain"
	"github.com/portalcondominio/clube-api/pkg/utils"
)

//go:generate mockgen -source=financial_record.go -destination=mocks/financial_record.go -package=mocks

const (
	financialRecordsTable  = "financeiro_clube f"
	financialRecordColumns = "f.id, f.anunciante_id, f.mes_referencia, f.valor_contratado, f.valor_pago, " +
		"f.data_pagamento, f.status, f.data_vencimento, f.created_at, f.updated_at"
)

type FinancialRecordRepository interface {
	FindByAdvertiserAndMonth(ctx context.Context, advertiserID string, month time.Time) (*domain.FinancialRecord, error)
	GetByID(ctx context.Context, id string) (*domain.FinancialRecord, error)
	// Upsert grava a cobrança do mês. Retorna false quando o registro existente
	// já está pago e por isso não foi alterado.
	Upsert(ctx context.Context, record *domain.FinancialRecord) (bool, error)
	DeleteIfUnpaid(ctx context.Context, advertiserID string, month time.Time) (int64, error)
	BulkMarkOverdue(ctx context.Context, today time.Time) (int64, error)
	MarkAsPaid(ctx context.Context, id string, amount decimal.Decimal, paidAt time.Time) (bool, error)
	ListRecords(ctx context.Context, filter domain.FinancialRecordFilter) ([]*domain.FinancialRecord, error)
	ListByMonthWithAdvertiser(ctx context.Context, month time.Time) ([]*domain.FinancialRecordWithAdvertiser, error)
}

type financialRecordRepository struct {
	conn postgres.Conn
}

func NewFinancialRecordRepository(conn postgres.Conn) FinancialRecordRepository {
	return &financialRecordRepository{
		conn: conn,
	}
}

func (r *financialRecordRepository) FindByAdvertiserAndMonth(ctx context.Context, advertiserID string, month time.Time) (*domain.FinancialRecord, error) {
	sqlQuery, args, err := squirrel.
		Select(financialRecordColumns).
		From(financialRecordsTable).
		Where(squirrel.Eq{
			"f.anunciante_id":  advertiserID,
			"f.mes_referencia": utils.FormatDate(utils.FirstDayOfMonth(month)),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.getOne(ctx, sqlQuery, args)
}

func (r *financialRecordRepository) GetByID(ctx context.Context, id string) (*domain.FinancialRecord, error) {
	sqlQuery, args, err := squirrel.
		Select(financialRecordColumns).
		From(financialRecordsTable).
		Where(squirrel.Eq{"f.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.getOne(ctx, sqlQuery, args)
}

func (r *financialRecordRepository) getOne(ctx context.Context, sqlQuery string, args []interface{}) (*domain.FinancialRecord, error) {
	record, err := scanFinancialRecord(r.conn.QueryRowContext(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDatabaseError(err, "buscar registro financeiro")
	}

	return record, nil
}

// upsertFinancialRecordQuery nunca altera o status nem toca em registros pagos:
// o conflito pela chave (anunciante_id, mes_referencia) só atualiza valor e vencimento
func upsertFinancialRecordQuery(record *domain.FinancialRecord) squirrel.InsertBuilder {
	return squirrel.
		Insert("financeiro_clube").
		Columns("id", "anunciante_id", "mes_referencia", "valor_contratado", "status", "data_vencimento").
		Values(
			record.ID,
			record.AdvertiserID,
			utils.FormatDate(record.ReferenceMonth),
			record.AmountDue,
			record.Status,
			utils.FormatDate(record.DueDate),
		).
		Suffix(
			"ON CONFLICT (anunciante_id, mes_referencia) DO UPDATE SET "+
				"valor_contratado = EXCLUDED.valor_contratado, "+
				"data_vencimento = EXCLUDED.data_vencimento, "+
				"updated_at = CURRENT_TIMESTAMP "+
				"WHERE financeiro_clube.status <> ? "+
				"RETURNING id, status, created_at, updated_at",
			domain.StatusPago,
		).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *financialRecordRepository) Upsert(ctx context.Context, record *domain.FinancialRecord) (bool, error) {
	sqlQuery, args, err := upsertFinancialRecordQuery(record).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(
		&record.ID,
		&record.Status,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, wrapDatabaseError(err, "gravar registro financeiro")
	}

	return true, nil
}

func deleteUnpaidQuery(advertiserID string, month time.Time) squirrel.DeleteBuilder {
	return squirrel.
		Delete("financeiro_clube").
		Where(squirrel.Eq{
			"anunciante_id":  advertiserID,
			"mes_referencia": utils.FormatDate(utils.FirstDayOfMonth(month)),
		}).
		Where(squirrel.NotEq{"status": domain.StatusPago}).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *financialRecordRepository) DeleteIfUnpaid(ctx context.Context, advertiserID string, month time.Time) (int64, error) {
	sqlQuery, args, err := deleteUnpaidQuery(advertiserID, month).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, wrapDatabaseError(err, "remover registro financeiro")
	}

	return result.RowsAffected()
}

func markOverdueQuery(today time.Time) squirrel.UpdateBuilder {
	return squirrel.
		Update("financeiro_clube").
		Set("status", domain.StatusAtrasado).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"status": domain.StatusPendente}).
		Where(squirrel.Lt{"data_vencimento": utils.FormatDate(today)}).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *financialRecordRepository) BulkMarkOverdue(ctx context.Context, today time.Time) (int64, error) {
	sqlQuery, args, err := markOverdueQuery(today).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, wrapDatabaseError(err, "atualizar registros atrasados")
	}

	return result.RowsAffected()
}

func markAsPaidQuery(id string, amount decimal.Decimal, paidAt time.Time) squirrel.UpdateBuilder {
	return squirrel.
		Update("financeiro_clube").
		Set("status", domain.StatusPago).
		Set("valor_pago", amount).
		Set("data_pagamento", utils.FormatDate(paidAt)).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{
			"id":     id,
			"status": []domain.FinancialStatus{domain.StatusPendente, domain.StatusAtrasado},
		}).
		PlaceholderFormat(squirrel.Dollar)
}

// MarkAsPaid quita apenas registros em aberto. Retorna false quando o
// registro não existe ou já saiu do estado em aberto.
func (r *financialRecordRepository) MarkAsPaid(ctx context.Context, id string, amount decimal.Decimal, paidAt time.Time) (bool, error) {
	sqlQuery, args, err := markAsPaidQuery(id, amount, paidAt).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return false, wrapDatabaseError(err, "registrar pagamento")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error getting rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

func listRecordsQuery(filter domain.FinancialRecordFilter) squirrel.SelectBuilder {
	queryBuilder := squirrel.
		Select(financialRecordColumns).
		From(financialRecordsTable).
		OrderBy("f.mes_referencia DESC", "f.data_vencimento ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.FromMonth != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"f.mes_referencia": utils.FormatDate(utils.FirstDayOfMonth(*filter.FromMonth))})
	}

	if filter.ToMonth != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"f.mes_referencia": utils.FormatDate(utils.FirstDayOfMonth(*filter.ToMonth))})
	}

	if len(filter.Statuses) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"f.status": filter.Statuses})
	}

	return queryBuilder
}

func (r *financialRecordRepository) ListRecords(ctx context.Context, filter domain.FinancialRecordFilter) ([]*domain.FinancialRecord, error) {
	sqlQuery, args, err := listRecordsQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, wrapDatabaseError(err, "listar registros financeiros")
	}
	defer rows.Close()

	records := make([]*domain.FinancialRecord, 0)
	for rows.Next() {
		record, err := scanFinancialRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar registro financeiro: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os registros financeiros: %w", err)
	}

	return records, nil
}

// listByMonthQuery ordena os registros em aberto antes dos pagos e depois pelo nome da empresa
func listByMonthQuery(month time.Time) squirrel.SelectBuilder {
	return squirrel.
		Select(financialRecordColumns, "a.nome_empresa").
		From(financialRecordsTable).
		Join("anunciantes a ON a.id = f.anunciante_id").
		Where(squirrel.Eq{"f.mes_referencia": utils.FormatDate(utils.FirstDayOfMonth(month))}).
		OrderBy("CASE WHEN f.status = 'pago' THEN 1 ELSE 0 END", "a.nome_empresa ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *financialRecordRepository) ListByMonthWithAdvertiser(ctx context.Context, month time.Time) ([]*domain.FinancialRecordWithAdvertiser, error) {
	sqlQuery, args, err := listByMonthQuery(month).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, wrapDatabaseError(err, "listar registros do mês")
	}
	defer rows.Close()

	records := make([]*domain.FinancialRecordWithAdvertiser, 0)
	for rows.Next() {
		item := &domain.FinancialRecordWithAdvertiser{}
		f := &item.FinancialRecord

		if err := rows.Scan(
			&f.ID,
			&f.AdvertiserID,
			&f.ReferenceMonth,
			&f.AmountDue,
			&f.AmountPaid,
			&f.PaidAt,
			&f.Status,
			&f.DueDate,
			&f.CreatedAt,
			&f.UpdatedAt,
			&item.CompanyName,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar registro financeiro: %w", err)
		}

		records = append(records, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os registros financeiros: %w", err)
	}

	return records, nil
}

func scanFinancialRecord(row rowScanner) (*domain.FinancialRecord, error) {
	f := &domain.FinancialRecord{}

	if err := row.Scan(
		&f.ID,
		&f.AdvertiserID,
		&f.ReferenceMonth,
		&f.AmountDue,
		&f.AmountPaid,
		&f.PaidAt,
		&f.Status,
		&f.DueDate,
		&f.CreatedAt,
		&f.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return f, nil
}
