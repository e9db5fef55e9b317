package main

// CompileResult is the output of a successful compilation: the emitted
// assembly text plus the resolved program, kept for the driver's verbose
// progress log and for AST-shape fixture assertions.
type CompileResult struct {
	Assembly string
	Program  *Program
}

// Compile runs the full Lexer -> Parser -> Resolver -> CodeGen pipeline
// over src. Each stage consumes the previous stage's output and fails fast
// on the first error; later stages never run once one has failed.
func Compile(src []byte) (*CompileResult, *Diagnostic) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}

	prog, err := Parse(tokens)
	if err != nil {
		return nil, err
	}

	if err := Resolve(prog); err != nil {
		return nil, err
	}

	asm := Generate(prog)
	return &CompileResult{Assembly: asm, Program: prog}, nil
}
