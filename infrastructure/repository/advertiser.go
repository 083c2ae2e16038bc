package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/portalcondominio/clube-api/infrastructure/database/postgres"
	"github.com/portalcondominio/clube-api/internal/domain"
	"github.com/portalcondominio/clube-api/pkg/utils"
)

//go:generate mockgen -source=advertiser.go -destination=mocks/advertiser.go -package=mocks

const (
	advertisersTable  = "anunciantes a"
	advertiserColumns = "a.id, a.nome_empresa, a.categoria_id, a.descricao, a.telefone, a.whatsapp, a.email, a.endereco, " +
		"a.site_url, a.instagram, a.logo_url, a.banner_url, a.plano, a.ativo, a.destaque, a.visualizacoes, a.cliques, " +
		"a.valor_mensal, a.dia_vencimento, a.comissao_gestor, a.contrato_inicio, a.contrato_duracao, a.created_at, a.updated_at"
)

type AdvertiserRepository interface {
	ListAdvertisers(ctx context.Context, filter domain.AdvertiserFilter) ([]*domain.Advertiser, error)
	GetAdvertiserByID(ctx context.Context, id string) (*domain.Advertiser, error)
	CreateAdvertiser(ctx context.Context, advertiser *domain.Advertiser) error
	UpdateAdvertiser(ctx context.Context, advertiser *domain.Advertiser) error
	DeleteAdvertiser(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
	IncrementClicks(ctx context.Context, id string) error
}

type advertiserRepository struct {
	conn postgres.Conn
}

func NewAdvertiserRepository(conn postgres.Conn) AdvertiserRepository {
	return &advertiserRepository{
		conn: conn,
	}
}

func listAdvertisersQuery(filter domain.AdvertiserFilter) squirrel.SelectBuilder {
	queryBuilder := squirrel.
		Select(advertiserColumns).
		From(advertisersTable).
		OrderBy("a.destaque DESC", "a.nome_empresa ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.OnlyActive {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.ativo": true})
	}

	if filter.OnlyFeatured {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.destaque": true})
	}

	if filter.Limit > 0 {
		queryBuilder = queryBuilder.Limit(filter.Limit)
	}

	return queryBuilder
}

func (r *advertiserRepository) ListAdvertisers(ctx context.Context, filter domain.AdvertiserFilter) ([]*domain.Advertiser, error) {
	sqlQuery, args, err := listAdvertisersQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, wrapDatabaseError(err, "listar anunciantes")
	}
	defer rows.Close()

	advertisers := make([]*domain.Advertiser, 0)
	for rows.Next() {
		advertiser, err := scanAdvertiser(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar anunciante: %w", err)
		}
		advertisers = append(advertisers, advertiser)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os anunciantes: %w", err)
	}

	return advertisers, nil
}

func (r *advertiserRepository) GetAdvertiserByID(ctx context.Context, id string) (*domain.Advertiser, error) {
	sqlQuery, args, err := squirrel.
		Select(advertiserColumns).
		From(advertisersTable).
		Where(squirrel.Eq{"a.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	advertiser, err := scanAdvertiser(r.conn.QueryRowContext(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDatabaseError(err, "buscar anunciante")
	}

	return advertiser, nil
}

func insertAdvertiserQuery(a *domain.Advertiser) squirrel.InsertBuilder {
	return squirrel.StatementBuilder.
		Insert("anunciantes").
		Columns(
			"id", "nome_empresa", "categoria_id", "descricao", "telefone", "whatsapp", "email", "endereco",
			"site_url", "instagram", "logo_url", "banner_url", "plano", "ativo", "destaque",
			"valor_mensal", "dia_vencimento", "comissao_gestor", "contrato_inicio", "contrato_duracao",
		).
		Values(
			a.ID, a.CompanyName, a.CategoryID, a.Description, a.Phone, a.Whatsapp, a.Email, a.Address,
			a.SiteURL, a.Instagram, a.LogoURL, a.BannerURL, a.Plan, a.Active, a.Featured,
			a.MonthlyFee, a.DueDay, a.ManagerCommission, nullableDate(a.ContractStart), a.ContractMonths,
		).
		Suffix("RETURNING visualizacoes, cliques, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *advertiserRepository) CreateAdvertiser(ctx context.Context, advertiser *domain.Advertiser) error {
	sqlQuery, args, err := insertAdvertiserQuery(advertiser).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(
		&advertiser.Views,
		&advertiser.Clicks,
		&advertiser.CreatedAt,
		&advertiser.UpdatedAt,
	)
	if err != nil {
		return wrapDatabaseError(err, "criar anunciante")
	}

	return nil
}

func updateAdvertiserQuery(a *domain.Advertiser) squirrel.UpdateBuilder {
	return squirrel.
		Update("anunciantes").
		SetMap(map[string]interface{}{
			"nome_empresa":     a.CompanyName,
			"categoria_id":     a.CategoryID,
			"descricao":        a.Description,
			"telefone":         a.Phone,
			"whatsapp":         a.Whatsapp,
			"email":            a.Email,
			"endereco":         a.Address,
			"site_url":         a.SiteURL,
			"instagram":        a.Instagram,
			"logo_url":         a.LogoURL,
			"banner_url":       a.BannerURL,
			"plano":            a.Plan,
			"ativo":            a.Active,
			"destaque":         a.Featured,
			"valor_mensal":     a.MonthlyFee,
			"dia_vencimento":   a.DueDay,
			"comissao_gestor":  a.ManagerCommission,
			"contrato_inicio":  nullableDate(a.ContractStart),
			"contrato_duracao": a.ContractMonths,
			"updated_at":       squirrel.Expr("CURRENT_TIMESTAMP"),
		}).
		Where(squirrel.Eq{"id": a.ID}).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *advertiserRepository) UpdateAdvertiser(ctx context.Context, advertiser *domain.Advertiser) error {
	if advertiser.ID == "" {
		return errors.New("ID is required")
	}

	sqlQuery, args, err := updateAdvertiserQuery(advertiser).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return wrapDatabaseError(err, "atualizar anunciante")
	}

	return requireAffected(result)
}

// DeleteAdvertiser remove primeiro o histórico financeiro e depois o anunciante,
// na mesma transação
func (r *advertiserRepository) DeleteAdvertiser(ctx context.Context, id string) error {
	deleteRecordsSQL, deleteRecordsArgs, err := squirrel.
		Delete("financeiro_clube").
		Where(squirrel.Eq{"anunciante_id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	deleteAdvertiserSQL, deleteAdvertiserArgs, err := squirrel.
		Delete("anunciantes").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteRecordsSQL, deleteRecordsArgs...); err != nil {
			return wrapDatabaseError(err, "remover registros financeiros do anunciante")
		}

		result, err := tx.ExecContext(ctx, deleteAdvertiserSQL, deleteAdvertiserArgs...)
		if err != nil {
			return wrapDatabaseError(err, "remover anunciante")
		}

		return requireAffected(result)
	})
}

func incrementCounterQuery(column, id string) squirrel.UpdateBuilder {
	return squirrel.
		Update("anunciantes").
		Set(column, squirrel.Expr(column+" + 1")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *advertiserRepository) IncrementViews(ctx context.Context, id string) error {
	return r.incrementCounter(ctx, "visualizacoes", id)
}

func (r *advertiserRepository) IncrementClicks(ctx context.Context, id string) error {
	return r.incrementCounter(ctx, "cliques", id)
}

func (r *advertiserRepository) incrementCounter(ctx context.Context, column, id string) error {
	sqlQuery, args, err := incrementCounterQuery(column, id).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return wrapDatabaseError(err, "incrementar "+column)
	}

	return requireAffected(result)
}

func scanAdvertiser(row rowScanner) (*domain.Advertiser, error) {
	a := &domain.Advertiser{}

	if err := row.Scan(
		&a.ID,
		&a.CompanyName,
		&a.CategoryID,
		&a.Description,
		&a.Phone,
		&a.Whatsapp,
		&a.Email,
		&a.Address,
		&a.SiteURL,
		&a.Instagram,
		&a.LogoURL,
		&a.BannerURL,
		&a.Plan,
		&a.Active,
		&a.Featured,
		&a.Views,
		&a.Clicks,
		&a.MonthlyFee,
		&a.DueDay,
		&a.ManagerCommission,
		&a.ContractStart,
		&a.ContractMonths,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return a, nil
}

func requireAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func nullableDate(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return utils.FormatDate(*t)
}
