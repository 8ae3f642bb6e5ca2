package reporting

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de relatórios
var (
	ErrMissingPeriod     = errors.New("start_date e end_date são obrigatórios")
	ErrInvalidPeriod     = errors.New("start_date deve ser anterior ou igual a end_date")
	ErrInvalidMonth      = errors.New("mês inválido, esperado YYYY-MM")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// ReportError é um erro com contexto adicional para relatórios
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError cria um novo erro de relatório
func NewReportError(baseErr error, code string, details string) *ReportError {
	return &ReportError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
