//go:build mage
// +build mage

package main

import (
	"context"
	"os"

	"github.com/magefile/mage/sh"
)

// Default is the default build target.
var Default = Test

// All tests and lints.
func All(ctx context.Context) error {
	type target func(context.Context) error

	targets := []target{
		Test,
		Lint,
		LintFix,
	}

	for _, t := range targets {
		if err := t(ctx); err != nil {
			return err
		}
	}

	return nil
}

// Test runs the test suite.
func Test(ctx context.Context) error {
	testArgs := []string{"test", "-parallel", "4"}

	if report := os.Getenv("REPORT"); report != "" {
		testArgs = append(testArgs, "-v")
	}

	testArgs = append(testArgs, "./...")

	return sh.RunV("go", testArgs...)
}

// Lint runs the linter & performs static-analysis checks.
func Lint(ctx context.Context) error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Applies lint checks and fixes any issues.
func LintFix(ctx context.Context) error {
	if err := sh.RunV("golangci-lint", "run", "--fix", "./..."); err != nil {
		return err
	}

	if err := sh.RunV("go", "mod", "tidy"); err != nil {
		return err
	}

	return nil
}
