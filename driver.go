package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// DriverOptions configures a single end-to-end build invocation.
type DriverOptions struct {
	InputPath   string
	OutputPath  string
	EmitAsmOnly bool
	Log         *logrus.Logger
}

// defaultOutputPath strips the input's extension, matching the documented
// CLI default. An input path with no extension collides with the input
// itself; the driver does not special-case this (see design notes).
func defaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return inputPath[:len(inputPath)-len(ext)]
}

// RunDriver reads the source at opts.InputPath, runs the compilation
// pipeline, and -- unless EmitAsmOnly is set -- hands the emitted assembly
// to the platform assembler and linker to produce a native executable. It
// returns a non-nil error on any compile or toolchain failure; the caller
// is expected to translate that into a nonzero process exit.
func RunDriver(opts DriverOptions) error {
	log := opts.Log
	if log == nil {
		log = logrus.New()
	}

	source, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", opts.InputPath, err)
	}
	log.WithField("path", opts.InputPath).Debug("source read")

	result, diag := Compile(source)
	if diag != nil {
		return &compileError{diag: diag, source: string(source), path: opts.InputPath}
	}
	log.WithField("statements", len(result.Program.Statements)).Debug("compiled to assembly")

	if opts.EmitAsmOnly {
		outputPath := opts.OutputPath
		if outputPath == "" {
			outputPath = defaultOutputPath(opts.InputPath) + ".s"
		}
		return os.WriteFile(outputPath, []byte(result.Assembly), 0644)
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = defaultOutputPath(opts.InputPath)
	}

	return assembleAndLink(result.Assembly, outputPath, log)
}

// compileError adapts a *Diagnostic (plus the source it refers to) to the
// error interface expected by the CLI layer.
type compileError struct {
	diag   *Diagnostic
	source string
	path   string
}

func (e *compileError) Error() string {
	return FormatDiagnostic(e.diag, e.source, int(os.Stderr.Fd()))
}

// assembleAndLink writes asm to a temporary .s file scoped to this process,
// invokes `as` to produce an object file, then `cc` to link it against the
// system C runtime. Both temporary files are removed once linking
// completes, regardless of outcome.
func assembleAndLink(asm string, outputPath string, log *logrus.Logger) error {
	tmpDir := os.TempDir()
	pid := os.Getpid()
	asmPath := filepath.Join(tmpDir, fmt.Sprintf("toy_output_%d.s", pid))
	objPath := filepath.Join(tmpDir, fmt.Sprintf("toy_output_%d.o", pid))
	defer os.Remove(asmPath)
	defer os.Remove(objPath)

	if err := os.WriteFile(asmPath, []byte(asm), 0644); err != nil {
		return fmt.Errorf("writing temporary assembly: %w", err)
	}

	log.WithField("as", asmPath).Debug("assembling")
	asCmd := exec.Command("as", "-o", objPath, asmPath)
	asCmd.Stdout = os.Stdout
	asCmd.Stderr = os.Stderr
	if err := asCmd.Run(); err != nil {
		return &toolchainError{tool: "as", err: err}
	}

	log.WithField("cc", outputPath).Debug("linking")
	ccCmd := exec.Command("cc", "-o", outputPath, objPath)
	ccCmd.Stdout = os.Stdout
	ccCmd.Stderr = os.Stderr
	if err := ccCmd.Run(); err != nil {
		return &toolchainError{tool: "cc", err: err}
	}

	return nil
}

type toolchainError struct {
	tool string
	err  error
}

func (e *toolchainError) Error() string {
	return fmt.Sprintf("%s: %s: %v", DiagToolchainFailure, e.tool, e.err)
}

func (e *toolchainError) Unwrap() error {
	return e.err
}
