// Copyright 2026 The Substrait Validator Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/extref"
)

// This file parses the textual form of type-derivation programs and
// patterns: statements separated by ';' or newlines, '#' starting an
// end-of-line comment, "assert X matches Y"
// and "assert X" as sugar for "Y = X" and "true = X", and the final
// non-empty expression as the program's result. The parser is a
// hand-written lexer plus recursive descent; the language is small enough
// that a generated parser would be more trouble than it saves.
//
// The expression language itself is small: integer/boolean/string
// literals, ?name bindings (a bare identifier that is not a type or
// function name also binds), '?' and '_' wildcards, lo..hi integer ranges,
// [a|b|c] enum sets, function calls (min, max, abs), the usual arithmetic,
// comparison and boolean operators, "if c then a else b", and type
// expressions like decimal<P, S> or u!point with an optional '?'
// nullability suffix. Inside a type's <...> parameter list, '<' and '>'
// are brackets rather than comparisons; parenthesize to compare there.

// ParseProgram parses the textual form of a type-derivation program.
// Errors carry diag.TypeParseError and name the offending line and column.
func ParseProgram(text string) (Program, error) {
	p := newDeriveParser(text)
	var prog Program

	p.skipSeps()
	for p.err == nil && p.tok.kind != tokEOF {
		if p.isIdent("assert") {
			p.advance()
			expr := p.parseExpr()
			var lhs Pattern = LiteralPattern{Value: BoolValue(true)}
			if p.isIdent("matches") {
				p.advance()
				lhs = p.parseExpr()
			}
			prog.Statements = append(prog.Statements, Statement{LHS: lhs, Expr: expr})
			p.endOfStatement()
			continue
		}

		first := p.parseExpr()
		if p.tok.kind == tokSym && p.tok.text == "=" {
			p.advance()
			rhs := p.parseExpr()
			prog.Statements = append(prog.Statements, Statement{LHS: first, Expr: rhs})
			p.endOfStatement()
			continue
		}

		// No '=' follows, so this must be the final expression.
		p.skipSeps()
		if p.err == nil && p.tok.kind != tokEOF {
			p.errorAt(p.tok, "only the last expression of a derivation program may stand alone; expected '='")
		}
		prog.Final = first
		break
	}
	if p.err != nil {
		return Program{}, p.err
	}
	if prog.Final == nil {
		return Program{}, newEvalError(diag.TypeParseError, "derivation program is missing its final expression")
	}
	return prog, nil
}

// ParsePattern parses a single pattern/expression, e.g. an argument slot's
// declared type.
func ParsePattern(text string) (Pattern, error) {
	p := newDeriveParser(text)
	p.skipSeps()
	pat := p.parseExpr()
	p.skipSeps()
	if p.err == nil && p.tok.kind != tokEOF {
		p.errorAt(p.tok, "unexpected %s after pattern", p.tok.describe())
	}
	if p.err != nil {
		return nil, p.err
	}
	return pat, nil
}

// --- Lexer ---------------------------------------------------------------

type tokKind int

const (
	tokEOF tokKind = iota
	tokSep
	tokIdent
	tokUserType
	tokBinding
	tokInt
	tokString
	tokSym
)

type deriveToken struct {
	kind tokKind
	text string
	pos  int
}

func (t deriveToken) describe() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokSep:
		return "end of statement"
	case tokString:
		return fmt.Sprintf("%q", t.text)
	default:
		return fmt.Sprintf("%q", t.text)
	}
}

type deriveLexer struct {
	src string
	pos int
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func (l *deriveLexer) ident() string {
	start := l.pos
	for l.pos < len(l.src) && isIdentChar(l.src[l.pos]) {
		l.pos++
	}
	return l.src[start:l.pos]
}

var deriveDoubleSyms = [...]string{"==", "!=", "<=", ">=", "&&", "||", ".."}

func (l *deriveLexer) next() (deriveToken, error) {
	for l.pos < len(l.src) {
		switch c := l.src[l.pos]; {
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++
		case c == '#':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		default:
			return l.scan()
		}
	}
	return deriveToken{kind: tokEOF, pos: l.pos}, nil
}

func (l *deriveLexer) scan() (deriveToken, error) {
	start := l.pos
	c := l.src[l.pos]

	switch {
	case c == '\n' || c == ';':
		l.pos++
		return deriveToken{kind: tokSep, text: string(c), pos: start}, nil

	case isIdentStart(c):
		name := l.ident()
		// u!name introduces a user-defined type.
		if name == "u" && l.pos+1 < len(l.src) && l.src[l.pos] == '!' && isIdentStart(l.src[l.pos+1]) {
			l.pos++
			return deriveToken{kind: tokUserType, text: l.ident(), pos: start}, nil
		}
		return deriveToken{kind: tokIdent, text: name, pos: start}, nil

	case c >= '0' && c <= '9':
		for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
			l.pos++
		}
		return deriveToken{kind: tokInt, text: l.src[start:l.pos], pos: start}, nil

	case c == '"':
		l.pos++
		for l.pos < len(l.src) && l.src[l.pos] != '"' && l.src[l.pos] != '\n' {
			l.pos++
		}
		if l.pos >= len(l.src) || l.src[l.pos] != '"' {
			return deriveToken{}, posError(l.src, start, "unterminated string literal")
		}
		l.pos++
		return deriveToken{kind: tokString, text: l.src[start+1 : l.pos-1], pos: start}, nil

	case c == '?':
		l.pos++
		if l.pos < len(l.src) && isIdentStart(l.src[l.pos]) {
			return deriveToken{kind: tokBinding, text: l.ident(), pos: start}, nil
		}
		return deriveToken{kind: tokSym, text: "?", pos: start}, nil

	default:
		if l.pos+1 < len(l.src) {
			two := l.src[l.pos : l.pos+2]
			for _, s := range deriveDoubleSyms {
				if two == s {
					l.pos += 2
					return deriveToken{kind: tokSym, text: two, pos: start}, nil
				}
			}
		}
		if strings.IndexByte("()<>,=+-*/|[]!", c) >= 0 {
			l.pos++
			return deriveToken{kind: tokSym, text: string(c), pos: start}, nil
		}
		return deriveToken{}, posError(l.src, start, "unexpected character %q", string(c))
	}
}

// posError formats a lexing/parsing error with its 1-based line and
// column, in "at line:column: message" form.
func posError(src string, pos int, format string, args ...interface{}) error {
	line, col := 1, 1
	for i := 0; i < pos && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return newEvalError(diag.TypeParseError, "at %d:%d: %s", line, col, fmt.Sprintf(format, args...))
}

// --- Parser --------------------------------------------------------------

type deriveParser struct {
	lex        deriveLexer
	tok        deriveToken
	err        error
	angleDepth int
}

func newDeriveParser(text string) *deriveParser {
	p := &deriveParser{lex: deriveLexer{src: text}}
	p.advance()
	return p
}

func (p *deriveParser) advance() {
	if p.err != nil {
		return
	}
	tok, err := p.lex.next()
	if err != nil {
		p.err = err
		p.tok = deriveToken{kind: tokEOF, pos: p.lex.pos}
		return
	}
	p.tok = tok
}

func (p *deriveParser) errorAt(tok deriveToken, format string, args ...interface{}) {
	if p.err == nil {
		p.err = posError(p.lex.src, tok.pos, format, args...)
	}
}

func (p *deriveParser) isIdent(name string) bool {
	return p.err == nil && p.tok.kind == tokIdent && strings.EqualFold(p.tok.text, name)
}

func (p *deriveParser) isSym(text string) bool {
	return p.err == nil && p.tok.kind == tokSym && p.tok.text == text
}

func (p *deriveParser) expectSym(text string) {
	if p.err != nil {
		return
	}
	if !p.isSym(text) {
		p.errorAt(p.tok, "expected %q, found %s", text, p.tok.describe())
		return
	}
	p.advance()
}

func (p *deriveParser) expectIdent(name string) {
	if p.err != nil {
		return
	}
	if !p.isIdent(name) {
		p.errorAt(p.tok, "expected %q, found %s", name, p.tok.describe())
		return
	}
	p.advance()
}

func (p *deriveParser) skipSeps() {
	for p.err == nil && p.tok.kind == tokSep {
		p.advance()
	}
}

// endOfStatement requires a separator (or end of input) after a statement.
func (p *deriveParser) endOfStatement() {
	if p.err != nil {
		return
	}
	if p.tok.kind != tokSep && p.tok.kind != tokEOF {
		p.errorAt(p.tok, "expected end of statement, found %s", p.tok.describe())
		return
	}
	p.skipSeps()
}

func (p *deriveParser) parseExpr() Pattern {
	if p.err != nil {
		return WildcardPattern{}
	}
	if p.isIdent("if") {
		p.advance()
		cond := p.parseExpr()
		p.expectIdent("then")
		then := p.parseExpr()
		p.expectIdent("else")
		els := p.parseExpr()
		return FunctionPattern{Name: "if", Args: []Pattern{cond, then, els}}
	}
	return p.parseOr()
}

func (p *deriveParser) parseOr() Pattern {
	left := p.parseAnd()
	for p.isSym("||") {
		p.advance()
		left = FunctionPattern{Name: "||", Args: []Pattern{left, p.parseAnd()}}
	}
	return left
}

func (p *deriveParser) parseAnd() Pattern {
	left := p.parseCmp()
	for p.isSym("&&") {
		p.advance()
		left = FunctionPattern{Name: "&&", Args: []Pattern{left, p.parseCmp()}}
	}
	return left
}

func (p *deriveParser) parseCmp() Pattern {
	left := p.parseAdd()
	if p.err != nil || p.tok.kind != tokSym {
		return left
	}
	switch op := p.tok.text; op {
	case "..":
		p.advance()
		right := p.parseAdd()
		return p.makeRange(left, right)
	case "==", "!=":
		p.advance()
		return FunctionPattern{Name: op, Args: []Pattern{left, p.parseAdd()}}
	case "<", ">", "<=", ">=":
		// Inside a type's parameter list, angle brackets are brackets.
		if p.angleDepth > 0 {
			return left
		}
		p.advance()
		return FunctionPattern{Name: op, Args: []Pattern{left, p.parseAdd()}}
	default:
		return left
	}
}

func (p *deriveParser) makeRange(lo, hi Pattern) Pattern {
	lv, lok := literalInt(lo)
	hv, hok := literalInt(hi)
	if !lok || !hok {
		p.errorAt(p.tok, "range bounds must be integer literals")
		return WildcardPattern{}
	}
	return IntRangePattern{Min: lv, Max: hv}
}

func literalInt(pat Pattern) (int64, bool) {
	lp, ok := pat.(LiteralPattern)
	if !ok {
		return 0, false
	}
	iv, ok := lp.Value.(IntValue)
	return int64(iv), ok
}

func (p *deriveParser) parseAdd() Pattern {
	left := p.parseMul()
	for p.err == nil && p.tok.kind == tokSym && (p.tok.text == "+" || p.tok.text == "-") {
		op := p.tok.text
		p.advance()
		left = FunctionPattern{Name: op, Args: []Pattern{left, p.parseMul()}}
	}
	return left
}

func (p *deriveParser) parseMul() Pattern {
	left := p.parseUnary()
	for p.err == nil && p.tok.kind == tokSym && (p.tok.text == "*" || p.tok.text == "/") {
		op := p.tok.text
		p.advance()
		left = FunctionPattern{Name: op, Args: []Pattern{left, p.parseUnary()}}
	}
	return left
}

func (p *deriveParser) parseUnary() Pattern {
	switch {
	case p.isSym("-"):
		p.advance()
		operand := p.parseUnary()
		if v, ok := literalInt(operand); ok {
			return LiteralPattern{Value: IntValue(-v)}
		}
		return FunctionPattern{Name: "-", Args: []Pattern{operand}}
	case p.isSym("!"):
		p.advance()
		return FunctionPattern{Name: "!", Args: []Pattern{p.parseUnary()}}
	default:
		return p.parsePrimary()
	}
}

func (p *deriveParser) parsePrimary() Pattern {
	if p.err != nil {
		return WildcardPattern{}
	}
	switch p.tok.kind {
	case tokInt:
		v, err := strconv.ParseInt(p.tok.text, 10, 64)
		if err != nil {
			p.errorAt(p.tok, "integer literal %s out of range", p.tok.text)
			return WildcardPattern{}
		}
		p.advance()
		return LiteralPattern{Value: IntValue(v)}

	case tokString:
		s := p.tok.text
		p.advance()
		return LiteralPattern{Value: StringValue(s)}

	case tokBinding:
		name := p.tok.text
		p.advance()
		return BindingPattern{Name: name}

	case tokUserType:
		cls := NewUserDefinedClass(extref.Reference[TypeClassDef]{Name: p.tok.text})
		p.advance()
		return p.parseTypeSuffix(cls)

	case tokIdent:
		return p.parseIdent()

	case tokSym:
		switch p.tok.text {
		case "?":
			p.advance()
			return WildcardPattern{}
		case "(":
			p.advance()
			saved := p.angleDepth
			p.angleDepth = 0
			e := p.parseExpr()
			p.angleDepth = saved
			p.expectSym(")")
			return e
		case "[":
			return p.parseEnumSet()
		}
	}
	p.errorAt(p.tok, "expected an expression, found %s", p.tok.describe())
	return WildcardPattern{}
}

func (p *deriveParser) parseIdent() Pattern {
	name := p.tok.text
	p.advance()

	if name == "_" {
		return WildcardPattern{}
	}
	lower := strings.ToLower(name)
	switch lower {
	case "true":
		return LiteralPattern{Value: BoolValue(true)}
	case "false":
		return LiteralPattern{Value: BoolValue(false)}
	case "bool":
		lower = "boolean"
	}

	if s, ok := ParseSimple(lower); ok {
		return p.parseTypeSuffix(NewSimpleClass(s))
	}
	if c, ok := ParseCompound(lower); ok {
		return p.parseTypeSuffix(NewCompoundClass(c))
	}
	if p.isSym("(") {
		return p.parseCall(lower)
	}
	return BindingPattern{Name: name}
}

func (p *deriveParser) parseCall(name string) Pattern {
	p.expectSym("(")
	saved := p.angleDepth
	p.angleDepth = 0
	var args []Pattern
	if !p.isSym(")") {
		for {
			args = append(args, p.parseExpr())
			if !p.isSym(",") {
				break
			}
			p.advance()
		}
	}
	p.angleDepth = saved
	p.expectSym(")")
	return FunctionPattern{Name: name, Args: args}
}

// parseTypeSuffix parses the optional nullability marker and parameter
// list after a class name: the bare name leaves nullability unconstrained
// (and evaluates as non-nullable), '?' pins it to nullable, and '?name'
// binds it.
func (p *deriveParser) parseTypeSuffix(cls Class) Pattern {
	pat := DataTypePattern{Class: &cls}
	switch {
	case p.isSym("?"):
		p.advance()
		pat.Nullable = LiteralPattern{Value: BoolValue(true)}
	case p.err == nil && p.tok.kind == tokBinding:
		pat.Nullable = BindingPattern{Name: p.tok.text}
		p.advance()
	}
	if p.isSym("<") {
		p.advance()
		p.angleDepth++
		for {
			pat.ParamPatterns = append(pat.ParamPatterns, p.parseParamEntry())
			if !p.isSym(",") {
				break
			}
			p.advance()
		}
		p.angleDepth--
		p.expectSym(">")
	}
	return pat
}

// parseParamEntry parses one slot of a <...> parameter list; '?' and
// "null" denote a skipped/null slot, represented as a nil pattern.
func (p *deriveParser) parseParamEntry() Pattern {
	if p.isSym("?") {
		p.advance()
		return nil
	}
	if p.isIdent("null") {
		p.advance()
		return nil
	}
	return p.parseExpr()
}

func (p *deriveParser) parseEnumSet() Pattern {
	p.expectSym("[")
	var variants []string
	for p.err == nil {
		if p.tok.kind != tokIdent {
			p.errorAt(p.tok, "expected an enum variant name, found %s", p.tok.describe())
			return WildcardPattern{}
		}
		variants = append(variants, p.tok.text)
		p.advance()
		if p.isSym("|") || p.isSym(",") {
			p.advance()
			continue
		}
		break
	}
	p.expectSym("]")
	return EnumSetPattern{Variants: variants}
}
