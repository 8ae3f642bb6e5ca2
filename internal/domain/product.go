package domain

import (
	"time"
)

// Status possíveis de um produto
const (
	ProductStatusActive = "active"
	ProductStatusPaused = "paused"
)

// Plataformas de origem de um produto
const (
	PlatformGoogleAds = "google_ads"
	PlatformManual    = "manual"
)

// Valores sentinela usados quando o payload de ingestão não informa os rótulos
// de agrupamento da conta
const (
	UnknownAccountName = "Unknown Account"
	NoGroupName        = "No Group"
)

// DefaultCurrency é a moeda de relatório padrão do sistema
const DefaultCurrency = "BRL"

// Product representa uma entidade rastreável (campanha de anúncios ou oferta
// manual). O par (UserID, CampaignName) é único e funciona como chave de
// resolução na ingestão.
type Product struct {
	ID           string     `json:"id"`
	UserID       int        `json:"user_id"`
	Name         string     `json:"name"`
	CampaignName string     `json:"campaign_name"`
	Currency     string     `json:"currency"`
	Platform     string     `json:"platform"`
	Status       string     `json:"status"`
	Hidden       bool       `json:"hidden"`
	AccountName  string     `json:"account_name"`
	MCCName      string     `json:"mcc_name"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// UpdateProductRequest carrega os campos mutáveis por ação do operador
type UpdateProductRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	Status      *string `json:"status"`
	Hidden      *bool   `json:"hidden"`
	AccountName *string `json:"account_name"`
	MCCName     *string `json:"mcc_name"`
}
