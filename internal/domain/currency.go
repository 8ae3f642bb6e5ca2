package domain

// Rates mapeia um código de moeda para o seu valor expresso na moeda-base do
// sistema (quanto vale 1 unidade da moeda na base). A base vale sempre 1.
type Rates map[string]float64

// Value retorna a cotação de uma moeda na base. Moeda desconhecida é tratada
// como paridade com a base, o que mantém a conversão um no-op em vez de
// zerar valores.
func (r Rates) Value(currency string) float64 {
	if rate, ok := r[currency]; ok && rate > 0 {
		return rate
	}
	return 1
}

// RateSnapshot é a fotografia das cotações tirada no início de um cálculo de
// agregação. O sistema mantém dois canais independentes e intencionais:
// Cost para valores de gasto de anúncio (cotação de mercado, alimentada pelo
// feed externo) e Revenue para receita/reembolso (cotação ajustada pelo
// operador, reconciliada com a liquidação do processador de pagamento).
// Os dois canais nunca devem ser colapsados em uma cotação única.
type RateSnapshot struct {
	Base    string `json:"base"`
	Cost    Rates  `json:"cost"`
	Revenue Rates  `json:"revenue"`
}

// Normalize converte um valor entre moedas usando uma tabela de cotações.
// A conversão é feita em dois saltos: da moeda de origem para a base
// (multiplicando pela cotação da origem) e da base para a moeda de destino
// (dividindo pela cotação do destino). Conversão entre moedas iguais é no-op.
func Normalize(amount float64, from, to string, rates Rates) float64 {
	if from == to || amount == 0 {
		return amount
	}

	inBase := amount * rates.Value(from)
	return inBase / rates.Value(to)
}

// NormalizeCost converte um valor de gasto usando o canal de custo do snapshot
func (s RateSnapshot) NormalizeCost(amount float64, from, to string) float64 {
	return Normalize(amount, from, to, s.Cost)
}

// NormalizeRevenue converte um valor de receita/reembolso usando o canal de
// receita do snapshot
func (s RateSnapshot) NormalizeRevenue(amount float64, from, to string) float64 {
	return Normalize(amount, from, to, s.Revenue)
}
