package products

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de produtos
var (
	ErrProductNotFound   = errors.New("produto não encontrado")
	ErrNameRequired      = errors.New("nome do produto é obrigatório")
	ErrInvalidStatus     = errors.New("status de produto inválido")
	ErrGenerateID        = errors.New("erro ao gerar identificador do produto")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// ProductError é um erro com contexto adicional sobre o produto envolvido
type ProductError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	ProductID string // Produto envolvido (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ProductError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ProductError) Unwrap() error {
	return e.Err
}

// NewProductError cria um novo erro de produto
func NewProductError(baseErr error, code string, details string) *ProductError {
	return &ProductError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewProductErrorWithID cria um novo erro de produto com o id envolvido
func NewProductErrorWithID(baseErr error, code string, productID string, details string) *ProductError {
	return &ProductError{
		Err:       baseErr,
		Code:      code,
		ProductID: productID,
		Details:   details,
	}
}
