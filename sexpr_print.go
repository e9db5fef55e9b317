package main

import "strconv"

// ExprToSExpr renders an expression as an s-expression, used by the
// "check -v" diagnostic dump and by the sexy test harness to assert AST
// shape without depending on internal struct layout.
func ExprToSExpr(e *Expr) string {
	switch e.Kind {
	case ExprIntLit:
		return strconv.FormatInt(e.IntValue, 10)
	case ExprVar:
		if e.Name != "" {
			return "(var \"" + e.Name + "\")"
		}
		return "(var " + strconv.Itoa(e.Slot) + ")"
	case ExprNeg:
		return "(neg " + ExprToSExpr(e.Left) + ")"
	case ExprBin:
		return "(binary \"" + string(e.Op) + "\" " + ExprToSExpr(e.Left) + " " + ExprToSExpr(e.Right) + ")"
	default:
		return "(unknown)"
	}
}

// StmtToSExpr renders a single statement as an s-expression.
func StmtToSExpr(s *Stmt) string {
	switch s.Kind {
	case StmtLet:
		return "(let \"" + s.Name + "\" " + ExprToSExpr(s.Expr) + ")"
	case StmtAssign:
		return "(assign \"" + s.Name + "\" " + ExprToSExpr(s.Expr) + ")"
	case StmtPrint:
		return "(print " + ExprToSExpr(s.Expr) + ")"
	default:
		return "(unknown)"
	}
}

// ProgramToSExpr renders the full statement list as a single s-expression.
func ProgramToSExpr(p *Program) string {
	out := "(program"
	for _, s := range p.Statements {
		out += " " + StmtToSExpr(s)
	}
	return out + ")"
}
