package entries

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de entrada manual
var (
	ErrProductNotFound    = errors.New("produto não encontrado")
	ErrProductIDRequired  = errors.New("product_id é obrigatório")
	ErrInvalidDate        = errors.New("data inválida, esperado YYYY-MM-DD")
	ErrInvalidMonth       = errors.New("mês inválido, esperado YYYY-MM")
	ErrDescriptionMissing = errors.New("descrição do custo é obrigatória")
	ErrCostNotFound       = errors.New("custo avulso não encontrado")
	ErrMetricNotFound     = errors.New("métrica diária não encontrada")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// EntryError é um erro com contexto adicional para entradas manuais
type EntryError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	ProductID string // Produto envolvido (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *EntryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError cria um novo erro de entrada manual
func NewEntryError(baseErr error, code string, details string) *EntryError {
	return &EntryError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewProductEntryError cria um novo erro de entrada manual com contexto de produto
func NewProductEntryError(baseErr error, code string, productID string, details string) *EntryError {
	return &EntryError{
		Err:       baseErr,
		Code:      code,
		ProductID: productID,
		Details:   details,
	}
}
