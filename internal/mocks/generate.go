// Package mocks holds mockery-generated doubles for the domain ports the
// event service depends on. Regenerate with go generate ./internal/mocks.
package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/event --output domain/event --outpkg eventmock --filename repository_mock.go --with-expecter=false
