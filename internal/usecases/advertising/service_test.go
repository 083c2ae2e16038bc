package advertising

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/portalcondominio/clube-api/infrastructure/repository"
	"github.com/portalcondominio/clube-api/infrastructure/repository/mocks"
	"github.com/portalcondominio/clube-api/internal/domain"
	"github.com/portalcondominio/clube-api/internal/usecases/authorizing"
)

type stubSynchronizer struct {
	calls []*domain.Advertiser
	err   error
}

func (s *stubSynchronizer) Sync(_ context.Context, advertiser *domain.Advertiser) (domain.SyncAction, error) {
	s.calls = append(s.calls, advertiser)
	if s.err != nil {
		return "", s.err
	}
	return domain.SyncActionCreated, nil
}

func managerContext() context.Context {
	return domain.ContextWithSession(context.Background(), &domain.Session{Perfil: domain.PerfilGestorClube})
}

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func TestService_CreateAdvertiser(t *testing.T) {
	tests := []struct {
		name      string
		request   *domain.CreateAdvertiserRequest
		setupMock func(repo *mocks.MockAdvertiserRepository)
		syncErr   error
		expectErr error
		syncCalls int
	}{
		{
			name: "cria com valores padrão e sincroniza",
			request: &domain.CreateAdvertiserRequest{
				CompanyName: "  Padaria do Bairro ",
				MonthlyFee:  decimal.NewFromInt(150),
			},
			setupMock: func(repo *mocks.MockAdvertiserRepository) {
				repo.EXPECT().CreateAdvertiser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *domain.Advertiser) error {
						assert.NotEmpty(t, a.ID)
						assert.Equal(t, "Padaria do Bairro", a.CompanyName)
						assert.Equal(t, domain.PlanoBronze, a.Plan)
						assert.Equal(t, 10, a.DueDay)
						assert.True(t, a.Active)
						assert.True(t, decimal.NewFromInt(60).Equal(a.ManagerCommission))
						return nil
					},
				)
			},
			syncCalls: 1,
		},
		{
			name: "falha na sincronização não desfaz o cadastro",
			request: &domain.CreateAdvertiserRequest{
				CompanyName: "Academia",
				Plan:        domain.PlanoOuro,
				MonthlyFee:  decimal.NewFromInt(500),
				DueDay:      5,
			},
			setupMock: func(repo *mocks.MockAdvertiserRepository) {
				repo.EXPECT().CreateAdvertiser(gomock.Any(), gomock.Any()).Return(nil)
			},
			syncErr:   errors.New("banco indisponível"),
			syncCalls: 1,
		},
		{
			name:      "nome obrigatório",
			request:   &domain.CreateAdvertiserRequest{CompanyName: "  "},
			setupMock: func(repo *mocks.MockAdvertiserRepository) {},
			expectErr: ErrCompanyNameRequired,
		},
		{
			name:      "plano inválido",
			request:   &domain.CreateAdvertiserRequest{CompanyName: "Loja", Plan: domain.Plano("diamante")},
			setupMock: func(repo *mocks.MockAdvertiserRepository) {},
			expectErr: ErrInvalidPlan,
		},
		{
			name:      "vencimento fora do intervalo",
			request:   &domain.CreateAdvertiserRequest{CompanyName: "Loja", DueDay: 32},
			setupMock: func(repo *mocks.MockAdvertiserRepository) {},
			expectErr: ErrInvalidDueDay,
		},
		{
			name:      "valor negativo",
			request:   &domain.CreateAdvertiserRequest{CompanyName: "Loja", MonthlyFee: decimal.NewFromInt(-1)},
			setupMock: func(repo *mocks.MockAdvertiserRepository) {},
			expectErr: ErrInvalidMonthlyFee,
		},
		{
			name: "comissão acima de 100",
			request: func() *domain.CreateAdvertiserRequest {
				commission := decimal.NewFromInt(101)
				return &domain.CreateAdvertiserRequest{CompanyName: "Loja", ManagerCommission: &commission}
			}(),
			setupMock: func(repo *mocks.MockAdvertiserRepository) {},
			expectErr: ErrInvalidCommission,
		},
		{
			name:    "erro do banco",
			request: &domain.CreateAdvertiserRequest{CompanyName: "Loja"},
			setupMock: func(repo *mocks.MockAdvertiserRepository) {
				repo.EXPECT().CreateAdvertiser(gomock.Any(), gomock.Any()).Return(errors.New("duplicate key"))
			},
			expectErr: ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockAdvertiserRepository(ctrl)
			tt.setupMock(repo)
			sync := &stubSynchronizer{err: tt.syncErr}

			service := NewService(repo, sync)
			advertiser, err := service.CreateAdvertiser(managerContext(), tt.request)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, advertiser)
				assert.Empty(t, sync.calls)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, advertiser)
			assert.Len(t, sync.calls, tt.syncCalls)
		})
	}
}

func TestService_CreateAdvertiser_InicioDoContrato(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Time
	}{
		{name: "data simples", value: "2024-01-01", expected: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{name: "formato devolvido pela API", value: "2024-03-15T00:00:00Z", expected: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockAdvertiserRepository(ctrl)
			repo.EXPECT().CreateAdvertiser(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, a *domain.Advertiser) error {
					require.NotNil(t, a.ContractStart)
					assert.Equal(t, tt.expected, *a.ContractStart)
					return nil
				},
			)

			service := NewService(repo, &stubSynchronizer{})
			_, err := service.CreateAdvertiser(managerContext(), &domain.CreateAdvertiserRequest{
				CompanyName:   "Padaria",
				ContractStart: stringPtr(tt.value),
			})

			require.NoError(t, err)
		})
	}

	t.Run("data inválida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sync := &stubSynchronizer{}
		service := NewService(mocks.NewMockAdvertiserRepository(ctrl), sync)

		_, err := service.CreateAdvertiser(managerContext(), &domain.CreateAdvertiserRequest{
			CompanyName:   "Padaria",
			ContractStart: stringPtr("01/01/2024"),
		})

		assert.ErrorIs(t, err, ErrInvalidContractStart)
		assert.True(t, IsValidationError(err))
		assert.Empty(t, sync.calls)
	})
}

func TestService_UpdateAdvertiser_InicioDoContrato(t *testing.T) {
	start := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		value    string
		expected *time.Time
	}{
		{name: "altera a data", value: "2024-02-01", expected: func() *time.Time { d := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC); return &d }()},
		{name: "string vazia remove a data", value: "", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockAdvertiserRepository(ctrl)
			repo.EXPECT().GetAdvertiserByID(gomock.Any(), "anun-1").Return(&domain.Advertiser{
				ID:            "anun-1",
				CompanyName:   "Padaria",
				Plan:          domain.PlanoBronze,
				DueDay:        10,
				ContractStart: &start,
			}, nil)
			repo.EXPECT().UpdateAdvertiser(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, a *domain.Advertiser) error {
					assert.Equal(t, tt.expected, a.ContractStart)
					return nil
				},
			)

			service := NewService(repo, &stubSynchronizer{})
			_, err := service.UpdateAdvertiser(managerContext(), &domain.UpdateAdvertiserRequest{
				ID:            "anun-1",
				ContractStart: stringPtr(tt.value),
			})

			require.NoError(t, err)
		})
	}
}

func TestService_CreateAdvertiser_ExigeSessao(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewService(mocks.NewMockAdvertiserRepository(ctrl), &stubSynchronizer{})

	_, err := service.CreateAdvertiser(context.Background(), &domain.CreateAdvertiserRequest{CompanyName: "Loja"})
	assert.ErrorIs(t, err, authorizing.ErrNotAuthenticated)
}

func TestService_UpdateAdvertiser(t *testing.T) {
	existing := func() *domain.Advertiser {
		return &domain.Advertiser{
			ID:                "anun-1",
			CompanyName:       "Padaria",
			Plan:              domain.PlanoPrata,
			Active:            true,
			MonthlyFee:        decimal.NewFromInt(150),
			DueDay:            10,
			ManagerCommission: decimal.NewFromInt(60),
		}
	}

	t.Run("atualização parcial sincroniza a cobrança", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAdvertiserRepository(ctrl)
		sync := &stubSynchronizer{}

		inactive := false
		repo.EXPECT().GetAdvertiserByID(gomock.Any(), "anun-1").Return(existing(), nil)
		repo.EXPECT().UpdateAdvertiser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a *domain.Advertiser) error {
				assert.False(t, a.Active)
				assert.Equal(t, "Padaria", a.CompanyName)
				assert.Equal(t, 10, a.DueDay)
				return nil
			},
		)

		service := NewService(repo, sync)
		advertiser, err := service.UpdateAdvertiser(managerContext(), &domain.UpdateAdvertiserRequest{ID: "anun-1", Active: &inactive})

		require.NoError(t, err)
		assert.False(t, advertiser.Active)
		require.Len(t, sync.calls, 1)
		assert.False(t, sync.calls[0].Active)
	})

	t.Run("anunciante inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAdvertiserRepository(ctrl)
		repo.EXPECT().GetAdvertiserByID(gomock.Any(), "anun-x").Return(nil, nil)

		service := NewService(repo, &stubSynchronizer{})
		_, err := service.UpdateAdvertiser(managerContext(), &domain.UpdateAdvertiserRequest{ID: "anun-x", CompanyName: stringPtr("Nova")})

		assert.ErrorIs(t, err, ErrAdvertiserNotFound)
	})

	t.Run("validação após aplicar os campos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAdvertiserRepository(ctrl)
		repo.EXPECT().GetAdvertiserByID(gomock.Any(), "anun-1").Return(existing(), nil)

		sync := &stubSynchronizer{}
		service := NewService(repo, sync)
		_, err := service.UpdateAdvertiser(managerContext(), &domain.UpdateAdvertiserRequest{ID: "anun-1", ContractMonths: intPtr(0)})

		assert.ErrorIs(t, err, ErrInvalidContract)
		assert.True(t, IsValidationError(err))
		assert.Empty(t, sync.calls)
	})

	t.Run("removido entre a leitura e a escrita", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAdvertiserRepository(ctrl)
		repo.EXPECT().GetAdvertiserByID(gomock.Any(), "anun-1").Return(existing(), nil)
		repo.EXPECT().UpdateAdvertiser(gomock.Any(), gomock.Any()).Return(repository.ErrNotFound)

		service := NewService(repo, &stubSynchronizer{})
		_, err := service.UpdateAdvertiser(managerContext(), &domain.UpdateAdvertiserRequest{ID: "anun-1"})

		assert.ErrorIs(t, err, ErrAdvertiserNotFound)
	})
}

func TestService_DeleteAdvertiser(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		repoErr   error
		callRepo  bool
		expectErr error
	}{
		{name: "sucesso", id: "anun-1", callRepo: true},
		{name: "id vazio", id: "", expectErr: ErrAdvertiserIDRequired},
		{name: "inexistente", id: "anun-x", callRepo: true, repoErr: repository.ErrNotFound, expectErr: ErrAdvertiserNotFound},
		{name: "erro do banco", id: "anun-1", callRepo: true, repoErr: errors.New("fk"), expectErr: ErrDatabaseOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockAdvertiserRepository(ctrl)
			if tt.callRepo {
				repo.EXPECT().DeleteAdvertiser(gomock.Any(), tt.id).Return(tt.repoErr)
			}

			err := NewService(repo, nil).DeleteAdvertiser(managerContext(), tt.id)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_Tracking(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAdvertiserRepository(ctrl)

	repo.EXPECT().IncrementViews(gomock.Any(), "anun-1").Return(nil)
	repo.EXPECT().IncrementClicks(gomock.Any(), "anun-1").Return(nil)
	repo.EXPECT().IncrementClicks(gomock.Any(), "anun-x").Return(repository.ErrNotFound)

	service := NewService(repo, nil)

	assert.NoError(t, service.TrackView(context.Background(), "anun-1"))
	assert.NoError(t, service.TrackClick(context.Background(), "anun-1"))
	assert.ErrorIs(t, service.TrackClick(context.Background(), "anun-x"), ErrAdvertiserNotFound)
	assert.ErrorIs(t, service.TrackView(context.Background(), ""), ErrAdvertiserIDRequired)
}

func TestService_GetAdvertiser(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAdvertiserRepository(ctrl)

	repo.EXPECT().GetAdvertiserByID(gomock.Any(), "anun-1").Return(&domain.Advertiser{ID: "anun-1"}, nil)
	repo.EXPECT().GetAdvertiserByID(gomock.Any(), "anun-2").Return(nil, errors.New("timeout"))

	service := NewService(repo, nil)

	advertiser, err := service.GetAdvertiser(context.Background(), "anun-1")
	require.NoError(t, err)
	assert.Equal(t, "anun-1", advertiser.ID)

	_, err = service.GetAdvertiser(context.Background(), "anun-2")
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}
