package sexy

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestExtractTestCases_BasicTest(t *testing.T) {
	markdown := `# Binary expressions

## Test: +
` + "```toy" + `
print 1 + 2;
` + "```" + `
` + "```ast" + `
(program (print (binary "+" (int 1) (int 2))))
` + "```" + `

## Test: -
` + "```toy" + `
print 1 - 2;
` + "```" + `
` + "```ast" + `
(program (print (binary "-" (int 1) (int 2))))
` + "```"

	testCases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 2)

	tc1 := testCases[0]
	be.Equal(t, tc1.Name, "+")
	be.Equal(t, tc1.Input, "print 1 + 2;")
	be.Equal(t, tc1.InputType, InputTypeToyProgram)
	be.Equal(t, len(tc1.Assertions), 1)
	be.Equal(t, tc1.Assertions[0].Type, AssertionTypeAST)
	be.Equal(t, tc1.Assertions[0].ParsedSexy.String(), `(program (print (binary "+" (int 1) (int 2))))`)

	tc2 := testCases[1]
	be.Equal(t, tc2.Name, "-")
	be.Equal(t, tc2.Input, "print 1 - 2;")
}

func TestExtractTestCases_DifferentAssertionTypes(t *testing.T) {
	markdown := `## Test: execute and ast together
` + "```toy" + `
print 42;
` + "```" + `
` + "```ast" + `
(program (print (int 42)))
` + "```" + `
` + "```execute" + `
42
` + "```"

	testCases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 1)

	tc := testCases[0]
	be.Equal(t, len(tc.Assertions), 2)
	be.Equal(t, tc.Assertions[0].Type, AssertionTypeAST)
	be.Equal(t, tc.Assertions[1].Type, AssertionTypeExecute)
	be.Equal(t, tc.Assertions[1].Content, "42")
}

func TestExtractTestCases_CompileErrorAssertion(t *testing.T) {
	markdown := `## Test: undefined variable
` + "```toy" + `
x = 1;
` + "```" + `
` + "```compile-error" + `
UndefinedVariable
` + "```"

	testCases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 1)

	tc := testCases[0]
	be.Equal(t, tc.Assertions[0].Type, AssertionTypeCompileError)
	be.Equal(t, tc.Assertions[0].Content, "UndefinedVariable")
}

func TestExtractTestCases_EmptyFile(t *testing.T) {
	testCases, err := ExtractTestCases("")
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 0)
}

func TestExtractTestCases_NoTestCases(t *testing.T) {
	markdown := `# Some document

This is just regular markdown content.

## Regular heading

No test cases here.`

	testCases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 0)
}

func TestExtractTestCases_UnknownFenceOutsideTest(t *testing.T) {
	markdown := `# Some document

` + "```go" + `
func main() {}
` + "```" + `

## Regular heading

No test cases here.`

	_, err := ExtractTestCases(markdown)
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), `unknown fence language "go" found outside of test case`))
}

func TestExtractTestCases_InvalidASTAssertion(t *testing.T) {
	markdown := `## Test: invalid ast
` + "```toy" + `
print 1 + 2;
` + "```" + `
` + "```ast" + `
(unclosed list
` + "```"

	_, err := ExtractTestCases(markdown)
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), "failed to parse ast assertion"))
	be.True(t, strings.Contains(err.Error(), "line"))
}

func TestExtractTestCases_FenceOutsideTestCase(t *testing.T) {
	tests := []struct {
		name      string
		markdown  string
		fenceType string
	}{
		{"toy fence outside test", "# Document\n\n```toy\nprint 1;\n```\n", "toy"},
		{"ast fence outside test", "# Document\n\n```ast\n(program)\n```\n", "ast"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ExtractTestCases(test.markdown)
			be.True(t, err != nil)
			be.True(t, strings.Contains(err.Error(), test.fenceType+" fence found outside of test case"))
		})
	}
}

func TestExtractTestCases_UnknownFenceLanguageInTest(t *testing.T) {
	markdown := `## Test: with unknown fence
` + "```python" + `
print("hello")
` + "```" + `
` + "```toy" + `
print 1 + 2;
` + "```" + `
` + "```ast" + `
(program (print (binary "+" (int 1) (int 2))))
` + "```"

	_, err := ExtractTestCases(markdown)
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), `unknown fence language "python"`))
}

func TestExtractTestCases_TestMissingInputFence(t *testing.T) {
	markdown := `## Test: no input
` + "```ast" + `
(program)
` + "```"

	_, err := ExtractTestCases(markdown)
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), `test "no input" has no input fence`))
}

func TestExtractTestCases_TestMissingAssertionFence(t *testing.T) {
	markdown := `## Test: no assertions
` + "```toy" + `
print 1;
` + "```"

	_, err := ExtractTestCases(markdown)
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), `test "no assertions" has no assertion fences`))
}

func TestExtractTestCases_MultipleInputFences(t *testing.T) {
	markdown := `## Test: multiple inputs
` + "```toy" + `
print 1;
` + "```" + `
` + "```toy" + `
print 2;
` + "```" + `
` + "```ast" + `
(program (print (int 1)))
` + "```"

	_, err := ExtractTestCases(markdown)
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), "multiple input fences found"))
}

func TestExtractTestCases_AllowFencesWithoutLanguage(t *testing.T) {
	markdown := `# Document with generic code block

` + "```" + `
some code without language
` + "```" + `

## Test: valid test
` + "```toy" + `
print 1;
` + "```" + `
` + "```ast" + `
(program (print (int 1)))
` + "```"

	testCases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(testCases), 1)
	be.Equal(t, testCases[0].Name, "valid test")
}

func TestExtractTestCases_ErrorInSecondTest(t *testing.T) {
	markdown := `## Test: first test
` + "```toy" + `
print 1;
` + "```" + `
` + "```ast" + `
(program (print (int 1)))
` + "```" + `

## Test: second test missing input
` + "```ast" + `
(program)
` + "```"

	_, err := ExtractTestCases(markdown)
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), `test "second test missing input" has no input fence`))
}
