//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the dayplan project using Mage.
//
// Usage:
//
//	mage build            Compile planner binary to bin/
//	mage test:all         Run all tests (unit + integration)
//	mage test:unit        Run only unit tests (exclude integration)
//	mage test:integration Run only integration tests (builds first)
//	mage test:property    Run property-based tests
//	mage lint             Run golangci-lint
//	mage clean            Remove build artifacts
//	mage install          Install planner to GOPATH/bin
//	mage stats            Print Go LOC and documentation word counts
package main
