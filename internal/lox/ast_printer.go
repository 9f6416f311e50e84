package lox

import (
	"fmt"
	"strconv"
	"strings"
)

// AstPrinter renders a syntax tree as parenthesized prefix notation, which
// makes the nesting of the parsed productions explicit.
type AstPrinter struct{}

// Print renders a whole program, one statement per line.
func (printer *AstPrinter) Print(statements []Stmt) string {
	lines := make([]string, 0, len(statements))
	for _, stmt := range statements {
		lines = append(lines, fmt.Sprintf("%v", stmt.Accept(printer)))
	}
	return strings.Join(lines, "\n")
}

// PrintExpr renders a single expression.
func (printer *AstPrinter) PrintExpr(expr Expr) string {
	return fmt.Sprintf("%v", expr.Accept(printer))
}

func (printer *AstPrinter) VisitAssignExpr(expr *AssignExpr) interface{} {
	return fmt.Sprintf(
		"(assign %s %s)",
		expr.Name.Lexeme,
		expr.Value.Accept(printer),
	)
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) interface{} {
	return fmt.Sprintf(
		"(%s %s %s)",
		expr.Op.Lexeme,
		expr.Left.Accept(printer),
		expr.Right.Accept(printer),
	)
}

func (printer *AstPrinter) VisitCallExpr(expr *CallExpr) interface{} {
	var sb strings.Builder
	fmt.Fprintf(&sb, "(call %s", expr.Callee.Accept(printer))
	for _, arg := range expr.Args {
		fmt.Fprintf(&sb, " %s", arg.Accept(printer))
	}
	sb.WriteString(")")
	return sb.String()
}

func (printer *AstPrinter) VisitFunctionExpr(expr *FunctionExpr) interface{} {
	return fmt.Sprintf(
		"(fun (%s)%s)",
		joinParams(expr.Params),
		printer.printBody(expr.Body),
	)
}

func (printer *AstPrinter) VisitGetExpr(expr *GetExpr) interface{} {
	return fmt.Sprintf(
		"(. %s %s)",
		expr.Object.Accept(printer),
		expr.Name.Lexeme,
	)
}

func (printer *AstPrinter) VisitGroupingExpr(expr *GroupingExpr) interface{} {
	return fmt.Sprintf("(group %s)", expr.Expression.Accept(printer))
}

func (printer *AstPrinter) VisitLiteralExpr(expr *LiteralExpr) interface{} {
	switch v := expr.Value.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (printer *AstPrinter) VisitLogicalExpr(expr *LogicalExpr) interface{} {
	return fmt.Sprintf(
		"(%s %s %s)",
		expr.Op.Lexeme,
		expr.Left.Accept(printer),
		expr.Right.Accept(printer),
	)
}

func (printer *AstPrinter) VisitSetExpr(expr *SetExpr) interface{} {
	return fmt.Sprintf(
		"(= %s %s %s)",
		expr.Object.Accept(printer),
		expr.Name.Lexeme,
		expr.Value.Accept(printer),
	)
}

func (printer *AstPrinter) VisitSuperExpr(expr *SuperExpr) interface{} {
	return fmt.Sprintf("(super %s)", expr.Method.Lexeme)
}

func (printer *AstPrinter) VisitUnaryExpr(expr *UnaryExpr) interface{} {
	return fmt.Sprintf(
		"(%s %s)",
		expr.Op.Lexeme,
		expr.Expression.Accept(printer),
	)
}

func (printer *AstPrinter) VisitVariableExpr(expr *VariableExpr) interface{} {
	return expr.Name.Lexeme
}

func (printer *AstPrinter) VisitBlockStmt(stmt *BlockStmt) interface{} {
	return fmt.Sprintf("(block%s)", printer.printBody(stmt.Statements))
}

func (printer *AstPrinter) VisitClassStmt(stmt *ClassStmt) interface{} {
	var sb strings.Builder
	fmt.Fprintf(&sb, "(class %s", stmt.Name.Lexeme)
	if stmt.Superclass != nil {
		fmt.Fprintf(&sb, " (< %s)", stmt.Superclass.Name.Lexeme)
	}
	for _, method := range stmt.Methods {
		fmt.Fprintf(&sb, " %s", method.Accept(printer))
	}
	sb.WriteString(")")
	return sb.String()
}

func (printer *AstPrinter) VisitExpressionStmt(stmt *ExpressionStmt) interface{} {
	return fmt.Sprintf("(; %s)", stmt.Expression.Accept(printer))
}

func (printer *AstPrinter) VisitFunctionStmt(stmt *FunctionStmt) interface{} {
	return fmt.Sprintf(
		"(fun %s (%s)%s)",
		stmt.Name.Lexeme,
		joinParams(stmt.Params),
		printer.printBody(stmt.Body),
	)
}

func (printer *AstPrinter) VisitIfStmt(stmt *IfStmt) interface{} {
	if stmt.ElseBranch == nil {
		return fmt.Sprintf(
			"(if %s %s)",
			stmt.Condition.Accept(printer),
			stmt.ThenBranch.Accept(printer),
		)
	}
	return fmt.Sprintf(
		"(if %s %s %s)",
		stmt.Condition.Accept(printer),
		stmt.ThenBranch.Accept(printer),
		stmt.ElseBranch.Accept(printer),
	)
}

func (printer *AstPrinter) VisitPrintStmt(stmt *PrintStmt) interface{} {
	return fmt.Sprintf("(print %s)", stmt.Expression.Accept(printer))
}

func (printer *AstPrinter) VisitReturnStmt(stmt *ReturnStmt) interface{} {
	if stmt.Value == nil {
		return "(return)"
	}
	return fmt.Sprintf("(return %s)", stmt.Value.Accept(printer))
}

func (printer *AstPrinter) VisitVarStmt(stmt *VarStmt) interface{} {
	if stmt.Initializer == nil {
		return fmt.Sprintf("(var %s)", stmt.Name.Lexeme)
	}
	return fmt.Sprintf(
		"(var %s %s)",
		stmt.Name.Lexeme,
		stmt.Initializer.Accept(printer),
	)
}

func (printer *AstPrinter) VisitWhileStmt(stmt *WhileStmt) interface{} {
	return fmt.Sprintf(
		"(while %s %s)",
		stmt.Condition.Accept(printer),
		stmt.Body.Accept(printer),
	)
}

func (printer *AstPrinter) printBody(body []Stmt) string {
	var sb strings.Builder
	for _, stmt := range body {
		fmt.Fprintf(&sb, " %s", stmt.Accept(printer))
	}
	return sb.String()
}

func joinParams(params []*Token) string {
	names := make([]string, 0, len(params))
	for _, param := range params {
		names = append(names, param.Lexeme)
	}
	return strings.Join(names, " ")
}
