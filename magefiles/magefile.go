//go:build mage

// Package main provides build targets for gridstash using Mage.
//
// Usage:
//
//	mage build      Compile the gridstash binary to bin/
//	mage test       Run all tests
//	mage race       Run all tests with the race detector
//	mage lint       Run go vet and golangci-lint
//	mage demo       Build and run the demo with the shipped config
//	mage clean      Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "gridstash"
	binaryDir  = "bin"
	cmdDir     = "./cmd/gridstash"
)

// Build compiles the gridstash binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Race runs all tests with the race detector.
func Race() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Lint runs go vet and golangci-lint.
func Lint() error {
	if err := sh.RunV(binGo, "vet", "./..."); err != nil {
		return err
	}
	return sh.RunV(binLint, "run", "./...")
}

// Demo builds the binary and runs the demo with the shipped configuration.
func Demo() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, binaryName), "--config", "./configs/gridstash.yaml", "demo")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
