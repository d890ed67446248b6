package parser

import (
	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/token"
)

// expression → assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment → IDENT "=" assignment | logic_or
//
// The left-hand side is parsed as an ordinary expression; if it's followed
// by '=', it must turn out to have been a Variable, or an
// "Invalid assignment target." error is reported (without aborting the
// parse — the error is recorded and the right-hand side is still parsed
// and discarded so the cursor stays in sync).
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.matchAny(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		if variable, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: variable.Name, Value: value}
		}
		p.errorAt(equals, "Invalid assignment target.")
	}

	return expr
}

// logic_or → logic_and ( "or" logic_and )*
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.matchAny(token.OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// logic_and → equality ( "and" equality )*
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.matchAny(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// equality → comparison ( ("!=" | "==") comparison )*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.matchAny(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// comparison → term ( (">" | ">=" | "<" | "<=") term )*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.matchAny(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// term → factor ( ("-" | "+") factor )*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.matchAny(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// factor → unary ( ("/" | "*") unary )*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.matchAny(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// unary → ("!" | "-") unary | call
func (p *Parser) unary() ast.Expr {
	if p.matchAny(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: op, Right: right}
	}
	return p.call()
}

// call → primary ( "(" arguments? ")" )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		if p.matchAny(token.LEFT_PAREN) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

// arguments → expression ( "," expression )*
func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.matchAny(token.COMMA) {
				break
			}
		}
	}
	paren := p.mustConsume(token.RIGHT_PAREN, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}
}

// primary → "true" | "false" | "nil" | NUMBER | STRING | IDENT
//
//	| "(" expression ")"
func (p *Parser) primary() ast.Expr {
	switch {
	case p.matchAny(token.FALSE):
		return &ast.Literal{Token: p.previous(), Value: false}
	case p.matchAny(token.TRUE):
		return &ast.Literal{Token: p.previous(), Value: true}
	case p.matchAny(token.NIL):
		return &ast.Literal{Token: p.previous(), Value: nil}
	case p.matchAny(token.NUMBER, token.STRING):
		tok := p.previous()
		return &ast.Literal{Token: tok, Value: tok.Literal}
	case p.matchAny(token.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}
	case p.matchAny(token.LEFT_PAREN):
		lparen := p.previous()
		inner := p.expression()
		p.mustConsume(token.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.Grouping{LParen: lparen, Inner: inner}
	default:
		panic(p.errorAt(p.peek(), "Expect expression."))
	}
}
