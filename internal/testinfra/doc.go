//go:build integration

// Package testinfra sobe os bancos usados pelos testes de integração com testcontainers-go.
//
// Os testes que dependem deste pacote usam a tag de build integration:
//
//	go test -tags integration ./...
//
// Sem Docker disponível os testes são ignorados.
package testinfra
