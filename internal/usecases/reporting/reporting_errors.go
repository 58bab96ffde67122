package reporting

import "errors"

// Erros específicos para o contexto de relatórios
var (
	ErrClientNotFound = errors.New("client not found")
)
