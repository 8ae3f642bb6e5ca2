package ingesting

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de ingestão
var (
	// Erros de validação: rejeitam o payload antes de qualquer escrita
	ErrMissingUserID       = errors.New("user_id é obrigatório")
	ErrMissingCampaignName = errors.New("campaign_name é obrigatório")
	ErrInvalidDate         = errors.New("data inválida, esperado YYYY-MM-DD")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")

	// Erros de geração de identificador
	ErrGenerateID = errors.New("erro ao gerar ID do produto")
)

// IngestError é um erro com contexto adicional para ingestão
type IngestError struct {
	Err          error  // Erro base
	Code         string // Código de erro para API
	CampaignName string // Campanha envolvida (quando aplicável)
	Details      string // Detalhes adicionais
}

// Error implementa a interface error
func (e *IngestError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *IngestError) Unwrap() error {
	return e.Err
}

// IsValidationError verifica se o erro rejeita o payload antes da escrita
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingUserID) ||
		errors.Is(err, ErrMissingCampaignName) ||
		errors.Is(err, ErrInvalidDate)
}

// NewIngestError cria um novo erro de ingestão
func NewIngestError(baseErr error, code string, details string) *IngestError {
	return &IngestError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewCampaignIngestError cria um novo erro de ingestão com contexto de campanha
func NewCampaignIngestError(baseErr error, code string, campaignName string, details string) *IngestError {
	return &IngestError{
		Err:          baseErr,
		Code:         code,
		CampaignName: campaignName,
		Details:      details,
	}
}
