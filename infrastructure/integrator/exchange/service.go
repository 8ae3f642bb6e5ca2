package exchange

import (
	"fmt"

	"github.com/vfg2006/ads-finance-api/infrastructure/integrator/exchange/exchangeclient"
	"github.com/vfg2006/ads-finance-api/internal/config"
)

// RateFetcher obtém a cotação de mercado corrente de uma moeda estrangeira
// expressa na moeda-base do sistema
type RateFetcher interface {
	GetCurrentRate(foreign, base string) (float64, error)
}

type ExchangeService struct {
	cfg    *config.Config
	Client exchangeclient.Client
}

func New(cfg *config.Config, client exchangeclient.Client) RateFetcher {
	return &ExchangeService{
		cfg:    cfg,
		Client: client,
	}
}

// GetCurrentRate consulta o feed e retorna quanto vale 1 unidade da moeda
// estrangeira na moeda-base
func (s *ExchangeService) GetCurrentRate(foreign, base string) (float64, error) {
	pair := fmt.Sprintf("%s-%s", foreign, base)

	quote, err := s.Client.GetQuote(pair)
	if err != nil {
		return 0, err
	}

	return quote.BidValue()
}
