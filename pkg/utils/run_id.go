package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	runIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	runIDLength   = 10
)

// NewRunID gera o identificador de uma execução de atualização, usado nos logs e na resposta
func NewRunID() (string, error) {
	id, err := gonanoid.Generate(runIDAlphabet, runIDLength)
	if err != nil {
		return "", err
	}
	return "run_" + id, nil
}
