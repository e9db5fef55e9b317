package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/nalgeon/be"

	"toycompiler/sexy"
)

// TestFixtures runs every "Test: <name>" case in testdata/program_test.md
// through the compiler and checks its assertions: "ast" against the
// rendered S-expression (wildcards allowed via sexy.Match), "compile-error"
// against the failing diagnostic's kind, and "execute" against the actual
// compiled binary's stdout (skipped off AArch64 Darwin, where `as`/`cc`
// cannot produce a runnable binary).
func TestFixtures(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("testdata", "program_test.md"))
	be.Err(t, err, nil)

	cases, err := sexy.ExtractTestCases(string(content))
	be.Err(t, err, nil)
	be.True(t, len(cases) > 0)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			runFixture(t, tc)
		})
	}
}

func runFixture(t *testing.T, tc sexy.TestCase) {
	result, diag := Compile([]byte(tc.Input))

	for _, assertion := range tc.Assertions {
		switch assertion.Type {
		case sexy.AssertionTypeCompileError:
			if diag == nil {
				t.Fatalf("expected compile error %q, but compilation succeeded", assertion.Content)
			}
			be.Equal(t, string(diag.Kind), assertion.Content)

		case sexy.AssertionTypeAST:
			if diag != nil {
				t.Fatalf("expected AST, got compile error: %v", diag)
			}
			actual, err := sexy.Parse(ProgramToSExpr(result.Program))
			be.Err(t, err, nil)
			if !sexy.Match(assertion.ParsedSexy, actual) {
				t.Fatalf("AST mismatch:\n  want %s\n  got  %s", assertion.ParsedSexy, actual)
			}

		case sexy.AssertionTypeExecute:
			if diag != nil {
				t.Fatalf("expected executable output, got compile error: %v", diag)
			}
			runAndCompareStdout(t, result.Assembly, assertion.Content)
		}
	}
}

func runAndCompareStdout(t *testing.T, assembly, wantStdout string) {
	if runtime.GOOS != "darwin" || runtime.GOARCH != "arm64" {
		t.Skip("execute assertions require an AArch64 Darwin toolchain")
	}

	dir := t.TempDir()
	asmPath := filepath.Join(dir, "fixture.s")
	binPath := filepath.Join(dir, "fixture")

	be.Err(t, os.WriteFile(asmPath, []byte(assembly), 0644), nil)

	objPath := filepath.Join(dir, "fixture.o")
	be.Err(t, exec.Command("as", "-o", objPath, asmPath).Run(), nil)
	be.Err(t, exec.Command("cc", "-o", binPath, objPath).Run(), nil)

	out, _ := exec.Command(binPath).Output()
	be.Equal(t, string(out), wantStdout+"\n")
}
