package domain

import (
	"time"
)

// AdditionalCost é um custo avulso não relacionado a anúncios (ferramentas,
// taxas, freelancers). Não há restrição de unicidade: várias entradas por
// data são permitidas e o ciclo de vida é independente das métricas diárias.
type AdditionalCost struct {
	ID          int64     `json:"id"`
	UserID      int       `json:"user_id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"created_at"`
}
