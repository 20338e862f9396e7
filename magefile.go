//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default is the target run when mage is invoked without arguments.
var Default = Build

var binaries = []string{"hanzirecall", "hanzidict"}

// Build compiles all binaries into ./bin.
func Build() error {
	if err := os.MkdirAll("bin", 0755); err != nil {
		return err
	}
	for _, name := range binaries {
		fmt.Printf("Building %s...\n", name)
		if err := sh.Run("go", "build", "-o", filepath.Join("bin", name), "./cmd/"+name); err != nil {
			return err
		}
	}
	return nil
}

// Install installs the binaries into GOBIN.
func Install() error {
	for _, name := range binaries {
		if err := sh.Run("go", "install", "./cmd/"+name); err != nil {
			return err
		}
	}
	return nil
}

// Test runs the test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and the tests.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll("bin")
}
