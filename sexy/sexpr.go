// Package sexy implements a small S-expression notation used to describe
// expected AST shapes in test fixtures, plus a matcher that compares a
// parsed pattern against an AST rendered with ExprToSExpr/StmtToSExpr. A
// pattern may use "..." as a wildcard that matches any single sub-node.
package sexy

import (
	"fmt"
	"strings"
)

// NodeType represents the type of a Node.
type NodeType int

const (
	NodeSymbol NodeType = iota
	NodeString
	NodeInteger
	NodeEllipsis
	NodeList
)

// Node represents a parsed S-expression datum.
type Node struct {
	Type NodeType

	Text  string // NodeSymbol, NodeString, NodeInteger
	Items []*Node // NodeList
}

func (n *Node) String() string {
	switch n.Type {
	case NodeSymbol:
		return n.Text
	case NodeString:
		escaped := strings.ReplaceAll(n.Text, "\\", "\\\\")
		escaped = strings.ReplaceAll(escaped, "\"", "\\\"")
		return fmt.Sprintf("\"%s\"", escaped)
	case NodeInteger:
		return n.Text
	case NodeEllipsis:
		return "..."
	case NodeList:
		parts := make([]string, len(n.Items))
		for i, item := range n.Items {
			parts[i] = item.String()
		}
		return fmt.Sprintf("(%s)", strings.Join(parts, " "))
	default:
		return fmt.Sprintf("UNKNOWN_NODE_TYPE_%d", n.Type)
	}
}

func NewSymbol(name string) *Node  { return &Node{Type: NodeSymbol, Text: name} }
func NewString(value string) *Node { return &Node{Type: NodeString, Text: value} }
func NewInteger(text string) *Node { return &Node{Type: NodeInteger, Text: text} }
func NewEllipsis() *Node           { return &Node{Type: NodeEllipsis} }
func NewList(items []*Node) *Node  { return &Node{Type: NodeList, Items: items} }

// IsAtom reports whether the node is a leaf value rather than a list.
func (n *Node) IsAtom() bool {
	return n.Type == NodeSymbol || n.Type == NodeString || n.Type == NodeInteger || n.Type == NodeEllipsis
}

// Match reports whether pattern matches value. An ellipsis node in pattern
// matches any single value node, atom or list, without recursing into it.
func Match(pattern, value *Node) bool {
	if pattern == nil || value == nil {
		return pattern == value
	}
	if pattern.Type == NodeEllipsis {
		return true
	}
	if pattern.Type != value.Type {
		return false
	}
	if pattern.Type == NodeList {
		if len(pattern.Items) != len(value.Items) {
			return false
		}
		for i := range pattern.Items {
			if !Match(pattern.Items[i], value.Items[i]) {
				return false
			}
		}
		return true
	}
	return pattern.Text == value.Text
}

type parser struct {
	lexer        *lexer
	currentToken token
	peekToken    token
}

// Parse parses the entire input and returns the top-level datum.
func Parse(input string) (*Node, error) {
	p := &parser{lexer: newLexer(input)}
	p.nextToken()
	p.nextToken()

	result, err := p.parseDatum()
	if len(p.lexer.errors) > 0 {
		return nil, fmt.Errorf("%s", p.lexer.errors[0])
	}
	if err != nil {
		return nil, err
	}

	if p.currentToken.Type != tokenEOF {
		return nil, fmt.Errorf("expected EOF but got %s", p.currentToken.Type)
	}

	return result, nil
}

func (p *parser) nextToken() {
	p.currentToken = p.peekToken
	p.peekToken = p.lexer.nextToken()
}

func (p *parser) parseDatum() (*Node, error) {
	switch p.currentToken.Type {
	case tokenSymbol:
		n := NewSymbol(p.currentToken.Value)
		p.nextToken()
		return n, nil
	case tokenString:
		n := NewString(p.currentToken.Value)
		p.nextToken()
		return n, nil
	case tokenInteger:
		n := NewInteger(p.currentToken.Value)
		p.nextToken()
		return n, nil
	case tokenEllipsis:
		n := NewEllipsis()
		p.nextToken()
		return n, nil
	case tokenLParen:
		return p.parseList()
	default:
		return nil, fmt.Errorf("unexpected token: %s", p.currentToken.Type)
	}
}

func (p *parser) parseList() (*Node, error) {
	var items []*Node
	p.nextToken() // consume '('

	for p.currentToken.Type != tokenRParen && p.currentToken.Type != tokenEOF {
		item, err := p.parseDatum()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if p.currentToken.Type != tokenRParen {
		return nil, fmt.Errorf("expected ')' but got %s", p.currentToken.Type)
	}
	p.nextToken() // consume ')'

	return NewList(items), nil
}

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenSymbol
	tokenString
	tokenInteger
	tokenEllipsis
	tokenLParen
	tokenRParen
)

func (t tokenType) String() string {
	switch t {
	case tokenEOF:
		return "EOF"
	case tokenSymbol:
		return "symbol"
	case tokenString:
		return "string"
	case tokenInteger:
		return "integer"
	case tokenEllipsis:
		return "ellipsis"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	default:
		return fmt.Sprintf("unknown token %d", int(t))
	}
}

type token struct {
	Type  tokenType
	Value string
}

type lexer struct {
	input    string
	position int
	current  byte
	errors   []string
}

func newLexer(input string) *lexer {
	l := &lexer{input: input}
	l.readChar()
	return l
}

func (l *lexer) readChar() {
	if l.position >= len(l.input) {
		l.current = 0
	} else {
		l.current = l.input[l.position]
	}
	l.position++
}

func (l *lexer) peekChar() byte {
	if l.position >= len(l.input) {
		return 0
	}
	return l.input[l.position]
}

func (l *lexer) skipWhitespace() {
	for isSpace(l.current) {
		l.readChar()
	}
}

func (l *lexer) readSymbol() string {
	start := l.position - 1
	for isSymbolChar(l.current) {
		l.readChar()
	}
	return l.input[start : l.position-1]
}

func (l *lexer) readString() (string, error) {
	var result strings.Builder
	l.readChar() // skip opening quote

	for l.current != '"' && l.current != 0 {
		if l.current == '\\' {
			l.readChar()
			switch l.current {
			case '"':
				result.WriteByte('"')
			case '\\':
				result.WriteByte('\\')
			default:
				return "", fmt.Errorf("invalid escape sequence: \\%c", l.current)
			}
		} else {
			result.WriteByte(l.current)
		}
		l.readChar()
	}

	if l.current != '"' {
		return "", fmt.Errorf("unterminated string")
	}
	l.readChar() // skip closing quote

	return result.String(), nil
}

func (l *lexer) readInteger() string {
	start := l.position - 1
	if l.current == '+' || l.current == '-' {
		l.readChar()
	}
	for isDigit(l.current) {
		l.readChar()
	}
	return l.input[start : l.position-1]
}

func (l *lexer) nextToken() token {
	l.skipWhitespace()

	switch l.current {
	case 0:
		return token{Type: tokenEOF}
	case '(':
		l.readChar()
		return token{Type: tokenLParen, Value: "("}
	case ')':
		l.readChar()
		return token{Type: tokenRParen, Value: ")"}
	case '"':
		str, err := l.readString()
		if err != nil {
			l.errors = append(l.errors, err.Error())
			return token{Type: tokenEOF}
		}
		return token{Type: tokenString, Value: str}
	case '.':
		if l.peekChar() == '.' {
			l.readChar()
			if l.peekChar() == '.' {
				l.readChar()
				l.readChar()
				return token{Type: tokenEllipsis, Value: "..."}
			}
		}
		l.errors = append(l.errors, "unexpected character '.'")
		return token{Type: tokenEOF}
	default:
		if isLetter(l.current) {
			return token{Type: tokenSymbol, Value: l.readSymbol()}
		}
		if isDigit(l.current) || l.current == '+' || l.current == '-' {
			if (l.current == '+' || l.current == '-') && !isDigit(l.peekChar()) {
				return token{Type: tokenSymbol, Value: l.readSymbol()}
			}
			return token{Type: tokenInteger, Value: l.readInteger()}
		}
		l.errors = append(l.errors, fmt.Sprintf("unexpected character '%c'", l.current))
		return token{Type: tokenEOF}
	}
}

func isSpace(b byte) bool  { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }
func isDigit(b byte) bool  { return b >= '0' && b <= '9' }
func isLetter(b byte) bool { return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '_' }

func isSymbolChar(b byte) bool {
	return isLetter(b) || isDigit(b) || b == '-' || b == '*' || b == '/' || b == '%' || b == '+'
}
