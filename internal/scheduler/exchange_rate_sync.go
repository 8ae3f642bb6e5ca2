package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-finance-api/internal/config"
	"github.com/vfg2006/ads-finance-api/internal/usecases/exchanging"
)

// ExchangeRateSyncConfig representa a configuração do agendador de cotações
type ExchangeRateSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ExchangeRateSyncService agenda a atualização periódica do canal de custo a
// partir do feed externo. O canal de receita nunca é tocado por este
// agendador: ele é exclusivamente ajustado pelo operador.
type ExchangeRateSyncService struct {
	scheduler           *gocron.Scheduler
	config              ExchangeRateSyncConfig
	rateManager         exchanging.RateManager
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewExchangeRateSyncService cria uma nova instância do agendador de cotações
func NewExchangeRateSyncService(
	rateManager exchanging.RateManager,
	appConfig *config.Config,
) *ExchangeRateSyncService {
	syncConfig := ExchangeRateSyncConfig{
		CronSchedule: appConfig.Exchange.CronSchedule,
		SyncEnabled:  appConfig.Exchange.SyncEnabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de cotações carregada")

	return &ExchangeRateSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		rateManager: rateManager,
		syncRunning: false,
	}
}

// Start inicia o agendador e dispara uma atualização imediata para abrir a
// sessão com a cotação corrente
func (s *ExchangeRateSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de cotações desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de cotações")

	// Atualização de abertura de sessão, em background para não atrasar o boot
	go s.syncExchangeRate()

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncExchangeRate()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de cotações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de cotações")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow dispara uma sincronização imediata (usada pelo endpoint de cron)
func (s *ExchangeRateSyncService) RunNow() {
	s.syncExchangeRate()
}

// LastSync retorna os instantes da última execução
func (s *ExchangeRateSyncService) LastSync() (startedAt, completedAt time.Time) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.lastSyncStartedAt, s.lastSyncCompletedAt
}

func (s *ExchangeRateSyncService) syncExchangeRate() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de cotações já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	// Melhor esforço: falhas do feed são absorvidas pelo RateManager e o
	// último valor conhecido continua valendo
	s.rateManager.RefreshCostRate()
}
