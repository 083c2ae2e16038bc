package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/portalcondominio/clube-api/internal/config"
	"github.com/portalcondominio/clube-api/internal/domain"
)

const (
	JobGenerateBilling = "gerar-cobrancas"
	JobMarkOverdue     = "atualizar-atrasados"
)

var ErrUnknownJob = errors.New("rotina agendada desconhecida")

// BillingRunner são as duas rotinas de cobrança executadas pelo agendador
type BillingRunner interface {
	GenerateForCurrentMonth(ctx context.Context) (domain.BillingRunResult, error)
	MarkOverdue(ctx context.Context) (domain.BillingRunResult, error)
}

// BillingScheduleConfig representa a configuração do agendador de cobranças
type BillingScheduleConfig struct {
	GenerationCron string
	OverdueCron    string
	Enabled        bool
}

type jobState struct {
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastCount       int
	lastError       string
}

// BillingScheduleService agenda a geração mensal e a atualização diária de atrasados
type BillingScheduleService struct {
	scheduler *gocron.Scheduler
	config    BillingScheduleConfig
	runner    BillingRunner
	baseCtx   context.Context
	mutex     sync.Mutex
	jobs      map[string]*jobState
}

func NewBillingScheduleService(runner BillingRunner, appConfig *config.Config) *BillingScheduleService {
	scheduleConfig := BillingScheduleConfig{
		GenerationCron: appConfig.BillingSchedule.GenerationCron,
		OverdueCron:    appConfig.BillingSchedule.OverdueCron,
		Enabled:        appConfig.BillingSchedule.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"generation_cron": scheduleConfig.GenerationCron,
		"overdue_cron":    scheduleConfig.OverdueCron,
		"enabled":         scheduleConfig.Enabled,
	}).Info("Configuração do agendador de cobranças carregada")

	return &BillingScheduleService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    scheduleConfig,
		runner:    runner,
		baseCtx:   context.Background(),
		jobs: map[string]*jobState{
			JobGenerateBilling: {},
			JobMarkOverdue:     {},
		},
	}
}

// Start inicia o agendador
func (s *BillingScheduleService) Start(ctx context.Context) error {
	s.mutex.Lock()
	s.baseCtx = ctx
	s.mutex.Unlock()

	if !s.config.Enabled {
		logrus.Info("Agendador de cobranças desabilitado por configuração")
		return nil
	}

	if _, err := s.scheduler.Cron(s.config.GenerationCron).Do(func() {
		s.runJob(JobGenerateBilling)
	}); err != nil {
		return fmt.Errorf("erro ao agendar geração de cobranças: %w", err)
	}

	if _, err := s.scheduler.Cron(s.config.OverdueCron).Do(func() {
		s.runJob(JobMarkOverdue)
	}); err != nil {
		return fmt.Errorf("erro ao agendar atualização de atrasados: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de cobranças")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualRun dispara uma rotina fora do horário agendado
func (s *BillingScheduleService) TriggerManualRun(job string) error {
	if _, ok := s.jobs[job]; !ok {
		return ErrUnknownJob
	}

	logrus.WithField("job", job).Info("Execução manual de rotina de cobrança solicitada")
	go s.runJob(job)

	return nil
}

// runJob retorna false quando a mesma rotina já está em execução
func (s *BillingScheduleService) runJob(job string) bool {
	s.mutex.Lock()
	state, ok := s.jobs[job]
	if !ok || state.running {
		s.mutex.Unlock()
		logrus.WithField("job", job).Info("Rotina de cobrança já em andamento, ignorando")
		return false
	}
	state.running = true
	state.lastStartedAt = time.Now()
	ctx := domain.SystemContext(s.baseCtx)
	s.mutex.Unlock()

	var (
		result domain.BillingRunResult
		err    error
	)

	switch job {
	case JobGenerateBilling:
		result, err = s.runner.GenerateForCurrentMonth(ctx)
	case JobMarkOverdue:
		result, err = s.runner.MarkOverdue(ctx)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	state.running = false
	state.lastCompletedAt = time.Now()
	state.lastCount = result.Count
	state.lastError = ""

	if err != nil {
		state.lastError = err.Error()
		logrus.WithError(err).WithField("job", job).Error("Erro na rotina de cobrança agendada")
		return true
	}

	logrus.WithFields(logrus.Fields{
		"job":   job,
		"count": result.Count,
	}).Info("Rotina de cobrança concluída")

	return true
}

// GetStatus retorna o status atual do agendador
func (s *BillingScheduleService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	status := map[string]any{
		"enabled":         s.config.Enabled,
		"generation_cron": s.config.GenerationCron,
		"overdue_cron":    s.config.OverdueCron,
	}

	for name, state := range s.jobs {
		status[name] = map[string]any{
			"running":           state.running,
			"last_started_at":   state.lastStartedAt,
			"last_completed_at": state.lastCompletedAt,
			"last_count":        state.lastCount,
			"last_error":        state.lastError,
		}
	}

	return status
}
