// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrNotFound indica que nenhuma linha foi afetada pela operação
var ErrNotFound = errors.New("registro não encontrado")

// rowScanner é satisfeito por *sql.Row e *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func wrapDatabaseError(err error, action string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("erro de banco ao %s: %w (code: %s)", action, pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao %s: %w", action, err)
}
