//go:build tools

package tools

// Developer tools, installed with go install rather than imported:
//
//	github.com/matryer/moq                 mocks for service dependencies (go generate ./...)
//	github.com/pressly/goose/v3/cmd/goose  ad-hoc migration status against a live database
