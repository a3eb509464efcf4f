//go:build mage

// Package main provides build targets for the stockroom project using Mage.
//
// Usage:
//
//	mage build    Compile stockroom binary to bin/
//	mage test     Run all tests
//	mage cover    Run tests with a coverage profile
//	mage lint     Run golangci-lint
//	mage demo     Build and run the demonstration session in a temp dir
//	mage clean    Remove build artifacts
//	mage install  Install stockroom to GOPATH/bin
//	mage stats    Print Go lines of code
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName   = "stockroom"
	binaryDir    = "bin"
	cmdDir       = "./cmd/stockroom"
	coverProfile = "coverage.out"
)

// Build compiles the stockroom binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Cover runs all tests and writes a coverage profile.
func Cover() error {
	if err := sh.RunV("go", "test", "-coverprofile="+coverProfile, "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func="+coverProfile)
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Demo builds the binary and runs the demonstration session with config
// and inventory isolated in a temporary directory.
func Demo() error {
	mg.Deps(Build)
	dir, err := os.MkdirTemp("", "stockroom-demo-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	bin, err := filepath.Abs(filepath.Join(binaryDir, binaryName))
	if err != nil {
		return err
	}
	return sh.RunV(bin,
		"--config-dir", filepath.Join(dir, "config"),
		"--data-file", filepath.Join(dir, "inventory.json"))
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	_ = os.Remove(coverProfile)
	return sh.RunV("go", "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

// Stats prints Go lines of code.
func Stats() error {
	var prodLines, testLines int

	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path == "vendor" || path == ".git" || path == binaryDir || strings.HasPrefix(path, "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasPrefix(path, "magefiles") {
			return nil
		}
		count, countErr := countLines(path)
		if countErr != nil {
			return nil
		}
		if strings.HasSuffix(path, "_test.go") {
			testLines += count
		} else {
			prodLines += count
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Lines of code (Go, total):      %d\n", prodLines+testLines)
	return nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	return count, scanner.Err()
}
