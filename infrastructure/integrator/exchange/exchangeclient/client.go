package exchangeclient

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-finance-api/internal/config"
	"github.com/vfg2006/ads-finance-api/pkg/utils"
)

type Client interface {
	GetQuote(pair string) (*Quote, error)
}

// Quote é a cotação de um par de moedas como retornada pelo feed
// (economia.awesomeapi.com.br)
type Quote struct {
	Code   string `json:"code"`
	CodeIn string `json:"codein"`
	Bid    string `json:"bid"`
	Ask    string `json:"ask"`
}

// BidValue converte o campo bid (string no payload do feed) para float64
func (q *Quote) BidValue() (float64, error) {
	value, err := strconv.ParseFloat(q.Bid, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "cotação bid inválida: %q", q.Bid)
	}
	return value, nil
}

type ExchangeClient struct {
	config *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &ExchangeClient{
		config: cfg,
	}
}

// GetQuote consulta a última cotação do par informado (formato "USD-BRL")
func (c *ExchangeClient) GetQuote(pair string) (*Quote, error) {
	url := fmt.Sprintf("%s/json/last/%s", c.config.Exchange.FeedURL, pair)

	data, err := utils.MakeRequest(url)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar o feed de cotação")
	}

	// A resposta é um objeto indexado pelo par sem o hífen, ex: {"USDBRL": {...}}
	var payload map[string]*Quote
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta do feed de cotação")
	}

	for _, quote := range payload {
		return quote, nil
	}

	return nil, errors.Errorf("feed de cotação não retornou o par %s", pair)
}
