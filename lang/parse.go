package lang

import (
	"context"
	"errors"

	"github.com/ardnew/deft/lang/lexer"
	"github.com/ardnew/deft/lang/token"
)

// parser holds the state for one descent over the token stream.
// It keeps a single token of lookahead.
type parser struct {
	lex *lexer.Lexer
	tok token.Token
}

// parse consumes the lexer output and populates ast.Forms.
func (ast *AST) parse(ctx context.Context, l *lexer.Lexer) error {
	p := &parser{lex: l}

	err := p.next()
	if err != nil {
		return err
	}

	for p.tok.Kind != token.EOF {
		form, err := p.parseForm()
		if err != nil {
			return err
		}

		ast.Forms = append(ast.Forms, form)
	}

	return nil
}

// next advances the lookahead token, converting lexical errors into
// syntax errors.
func (p *parser) next() error {
	tok, err := p.lex.Next()
	if err != nil {
		le := &lexer.Error{}
		if errors.As(err, &le) {
			return NewParseError(le.Line, le.Col, le.Msg)
		}

		return err
	}

	p.tok = tok

	return nil
}

// unexpected constructs a syntax error for the current lookahead token.
func (p *parser) unexpected(expected ...string) *ParseError {
	pe := NewParseError(
		p.tok.Line,
		p.tok.Col,
		"unexpected "+p.tok.Kind.String(),
	)
	pe.Expected = expected

	return pe
}

// expect consumes the lookahead token if it has the given kind, or fails
// with a syntax error naming the expectation.
func (p *parser) expect(kind token.Kind) (token.Token, error) {
	if p.tok.Kind != kind {
		return token.Token{}, p.unexpected(kind.String())
	}

	tok := p.tok

	err := p.next()
	if err != nil {
		return token.Token{}, err
	}

	return tok, nil
}

// parseForm parses one top-level form:
//
//	const_decl := "(" "def" NAME value ")"
//	mapping    := "{" (NAME "=" value)* "}"
func (p *parser) parseForm() (*Form, error) {
	switch p.tok.Kind {
	case token.LParen:
		return p.parseConstDecl()

	case token.LBrace:
		mapping, err := p.parseMapping()
		if err != nil {
			return nil, err
		}

		return &Form{Kind: FormMapping, Value: mapping}, nil

	default:
		return nil, p.unexpected(
			token.LParen.String(),
			token.LBrace.String(),
		)
	}
}

// parseConstDecl parses "(" "def" NAME value ")". The opening paren is
// the current lookahead.
func (p *parser) parseConstDecl() (*Form, error) {
	_, err := p.expect(token.LParen)
	if err != nil {
		return nil, err
	}

	_, err = p.expect(token.Def)
	if err != nil {
		return nil, err
	}

	name, err := p.expect(token.Name)
	if err != nil {
		return nil, err
	}

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	_, err = p.expect(token.RParen)
	if err != nil {
		return nil, err
	}

	return &Form{Kind: FormConst, Name: &name, Value: value}, nil
}

// parseMapping parses "{" (NAME "=" value)* "}". The opening brace is the
// current lookahead.
func (p *parser) parseMapping() (*Node, error) {
	_, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}

	node := &Node{Type: TypeMapping}

	for p.tok.Kind == token.Name {
		name := p.tok

		err = p.next()
		if err != nil {
			return nil, err
		}

		_, err = p.expect(token.Assign)
		if err != nil {
			return nil, err
		}

		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		node.Entries = append(node.Entries, &Entry{Name: &name, Value: value})
	}

	_, err = p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}

	return node, nil
}

// parseValue parses value := number | string | mapping | expression | NAME.
func (p *parser) parseValue() (*Node, error) {
	switch p.tok.Kind {
	case token.Number:
		tok := p.tok

		err := p.next()
		if err != nil {
			return nil, err
		}

		return &Node{Type: TypeNumber, Token: &tok}, nil

	case token.String:
		tok := p.tok

		err := p.next()
		if err != nil {
			return nil, err
		}

		return &Node{Type: TypeString, Token: &tok}, nil

	case token.Name:
		tok := p.tok

		err := p.next()
		if err != nil {
			return nil, err
		}

		return &Node{Type: TypeName, Token: &tok}, nil

	case token.LBrace:
		return p.parseMapping()

	case token.ExprOpen:
		return p.parseExpr()

	default:
		return nil, p.unexpected(
			token.Number.String(),
			token.String.String(),
			token.Name.String(),
			token.LBrace.String(),
			token.ExprOpen.String(),
		)
	}
}

// parseExpr parses expression := "$[" (value | operator)* "]". The token
// order inside the brackets is preserved verbatim for the postfix
// evaluator; no structure is imposed here.
func (p *parser) parseExpr() (*Node, error) {
	open, err := p.expect(token.ExprOpen)
	if err != nil {
		return nil, err
	}

	node := &Node{Type: TypeExpr, Token: &open}

	for p.tok.Kind != token.ExprClose {
		if p.tok.Kind == token.EOF {
			return nil, p.unexpected(token.ExprClose.String())
		}

		if p.tok.Kind == token.Operator {
			tok := p.tok

			err = p.next()
			if err != nil {
				return nil, err
			}

			node.Items = append(node.Items, &Node{Type: TypeOperator, Token: &tok})

			continue
		}

		item, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		node.Items = append(node.Items, item)
	}

	_, err = p.expect(token.ExprClose)
	if err != nil {
		return nil, err
	}

	return node, nil
}
