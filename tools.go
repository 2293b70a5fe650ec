//go:build tools

// Package tools pins the lint and benchmark-comparison binaries so
// `go run` resolves them at the versions in go.mod.
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "golang.org/x/perf/cmd/benchstat"
)
