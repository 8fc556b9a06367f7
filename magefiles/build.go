//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Build mg.Namespace

// Builds glrotate.wasm and copies wasm_exec.js next to index.html.
func (Build) Wasm() error {
	if _, err := executeCmd("go",
		withArgs("build", "-o", "glrotate.wasm", "."),
		withEnv("GOOS=js", "GOARCH=wasm"),
		withStream(),
	); err != nil {
		return err
	}
	return copyWasmExec()
}

// Builds the headless runner.
func (Build) Headless() error {
	_, err := executeCmd("go", withArgs("build", "-o", "glrotate", "."), withStream())
	return err
}

func copyWasmExec() error {
	out, err := executeCmd("go", withArgs("env", "GOROOT"))
	if err != nil {
		return err
	}
	root := strings.TrimSpace(out)
	for _, dir := range []string{"lib/wasm", "misc/wasm"} {
		src := filepath.Join(root, dir, "wasm_exec.js")
		if _, err := os.Stat(src); err == nil {
			return sh.Copy("wasm_exec.js", src)
		}
	}
	return fmt.Errorf("wasm_exec.js not found under %s", root)
}
