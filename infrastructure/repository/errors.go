package repository

import "errors"

// ErrDuplicateKey indica que o banco rejeitou a linha por violar uma chave única
var ErrDuplicateKey = errors.New("duplicate key")
