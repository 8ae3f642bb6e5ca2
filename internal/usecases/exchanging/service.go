package exchanging

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-finance-api/infrastructure/integrator/exchange"
	"github.com/vfg2006/ads-finance-api/internal/config"
	"github.com/vfg2006/ads-finance-api/internal/domain"
)

var (
	ErrInvalidRate     = errors.New("cotação deve ser maior que zero")
	ErrInvalidCurrency = errors.New("código de moeda inválido")
)

// Snapshotter entrega uma fotografia atômica dos dois canais de cotação.
// Cada cálculo de agregação tira um único snapshot no início e nunca relê as
// cotações no meio do cálculo, para não misturar valores antigos e novos em
// um mesmo relatório.
type Snapshotter interface {
	Snapshot() domain.RateSnapshot
}

// RateManager é a interface completa do estado de câmbio do processo
type RateManager interface {
	Snapshotter

	// SetRevenueRate ajusta a cotação manual do canal de receita/reembolso
	SetRevenueRate(currency string, rate float64) error

	// RefreshCostRate atualiza o canal de custo a partir do feed externo.
	// Melhor esforço: falhas são registradas e o último valor conhecido é
	// mantido, nunca propagadas ao chamador.
	RefreshCostRate()
}

// Service mantém os dois canais de cotação do processo. O canal de custo é
// alimentado pelo feed de mercado; o canal de receita é ajustado pelo
// operador para casar com a liquidação do processador de pagamento. O último
// valor escrito vence.
type Service struct {
	mu sync.RWMutex

	base    string
	foreign string
	fetcher exchange.RateFetcher

	costRates    domain.Rates
	revenueRates domain.Rates
}

func NewService(cfg *config.Config, fetcher exchange.RateFetcher) *Service {
	base := cfg.Exchange.BaseCurrency
	if base == "" {
		base = domain.DefaultCurrency
	}

	return &Service{
		base:    base,
		foreign: cfg.Exchange.ForeignCurrency,
		fetcher: fetcher,
		costRates: domain.Rates{
			base:                         1,
			cfg.Exchange.ForeignCurrency: cfg.Exchange.DefaultCostRate,
		},
		revenueRates: domain.Rates{
			base:                         1,
			cfg.Exchange.ForeignCurrency: cfg.Exchange.DefaultRevenueRate,
		},
	}
}

// Snapshot copia os dois canais sob lock de leitura
func (s *Service) Snapshot() domain.RateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := domain.RateSnapshot{
		Base:    s.base,
		Cost:    make(domain.Rates, len(s.costRates)),
		Revenue: make(domain.Rates, len(s.revenueRates)),
	}

	for code, rate := range s.costRates {
		snapshot.Cost[code] = rate
	}
	for code, rate := range s.revenueRates {
		snapshot.Revenue[code] = rate
	}

	return snapshot
}

func (s *Service) SetRevenueRate(currency string, rate float64) error {
	if len(currency) != 3 {
		return ErrInvalidCurrency
	}
	if rate <= 0 {
		return ErrInvalidRate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.revenueRates[currency] = rate

	logrus.WithFields(logrus.Fields{
		"currency": currency,
		"rate":     rate,
	}).Info("Cotação manual do canal de receita ajustada")

	return nil
}

func (s *Service) RefreshCostRate() {
	if s.fetcher == nil || s.foreign == "" {
		return
	}

	rate, err := s.fetcher.GetCurrentRate(s.foreign, s.base)
	if err != nil {
		// Falha no feed não bloqueia nenhum cálculo: mantém a última cotação
		logrus.WithError(err).Warn("Falha ao atualizar cotação do canal de custo, mantendo último valor conhecido")
		return
	}

	if rate <= 0 {
		logrus.WithField("rate", rate).Warn("Feed retornou cotação inválida, mantendo último valor conhecido")
		return
	}

	s.mu.Lock()
	s.costRates[s.foreign] = rate
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"currency": s.foreign,
		"rate":     rate,
	}).Debug("Cotação do canal de custo atualizada pelo feed")
}
