//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Builds the wasm binary and serves the demo on :8080.
func (Run) Serve() error {
	mg.Deps(Build.Wasm)
	fmt.Println("Serving on http://localhost:8080 ...")
	_, err := executeCmd("go", withArgs("run", "./examples/serve", "-dir", "."), withStream())
	return err
}

// Runs the animation without a browser.
func (Run) Headless() error {
	_, err := executeCmd("go", withArgs("run", ".", "-frames", "400"), withStream())
	return err
}

// Runs all tests.
func Test() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}
