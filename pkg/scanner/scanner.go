// Package scanner performs a single-pass tokenization of C-like source text
// and builds the delimiter-group structure used by spacing rules.
package scanner

import "github.com/yaklabco/spacelint/pkg/source"

// scanner holds state for a single tokenization pass.
// It produces a contiguous, non-overlapping token stream covering [0, len(content)).
type scanner struct {
	content []byte
	tokens  []source.Token
	pos     int
}

// keywords are identifiers classified as TokKeyword. The set covers the
// control-flow and declaration words shared by the curly-brace languages
// spacelint targets; unknown identifiers stay TokIdent.
var keywords = map[string]struct{}{
	"break": {}, "case": {}, "const": {}, "continue": {}, "default": {},
	"defer": {}, "do": {}, "else": {}, "enum": {}, "false": {}, "for": {},
	"func": {}, "function": {}, "go": {}, "if": {}, "import": {}, "in": {},
	"interface": {}, "let": {}, "map": {}, "new": {}, "nil": {}, "null": {},
	"package": {}, "range": {}, "return": {}, "select": {}, "static": {},
	"struct": {}, "switch": {}, "true": {}, "type": {}, "var": {},
	"void": {}, "while": {},
}

// Tokenize performs a single-pass tokenization of the given content.
// Returns a slice of tokens that are contiguous, non-overlapping, and
// cover [0, len(content)).
func Tokenize(content []byte) []source.Token {
	if len(content) == 0 {
		return nil
	}

	const initialCapacityDivisor = 4 // reasonable initial capacity estimate
	s := &scanner{
		content: content,
		tokens:  make([]source.Token, 0, len(content)/initialCapacityDivisor),
		pos:     0,
	}

	for s.pos < len(s.content) {
		s.next()
	}

	return s.tokens
}

// next consumes one token starting at the current position.
func (s *scanner) next() {
	ch := s.content[s.pos]

	switch {
	case ch == '\n':
		s.emitSingle(source.TokNewline)
	case ch == '\r':
		s.scanCRLF()
	case ch == ' ' || ch == '\t':
		s.scanRun(source.TokWhitespace, isHorizontalSpace)
	case ch == '(':
		s.emitSingle(source.TokParenOpen)
	case ch == ')':
		s.emitSingle(source.TokParenClose)
	case ch == '[':
		s.emitSingle(source.TokBracketOpen)
	case ch == ']':
		s.emitSingle(source.TokBracketClose)
	case ch == '{':
		s.emitSingle(source.TokBraceOpen)
	case ch == '}':
		s.emitSingle(source.TokBraceClose)
	case ch == ',':
		s.emitSingle(source.TokComma)
	case ch == ';':
		s.emitSingle(source.TokSemicolon)
	case ch == '"' || ch == '\'' || ch == '`':
		s.scanString(ch)
	case ch == '/' && s.peek(1) == '/':
		s.scanLineComment()
	case ch == '/' && s.peek(1) == '*':
		s.scanBlockComment()
	case ch == '#':
		s.scanLineComment()
	case isDigit(ch):
		s.scanNumber()
	case isIdentStart(ch):
		s.scanIdent()
	case isOperatorChar(ch):
		s.scanRun(source.TokOperator, isOperatorChar)
	default:
		s.emitSingle(source.TokOther)
	}
}

// peek returns the byte at pos+ahead, or 0 past end of content.
func (s *scanner) peek(ahead int) byte {
	if s.pos+ahead >= len(s.content) {
		return 0
	}
	return s.content[s.pos+ahead]
}

func (s *scanner) emit(kind source.TokenKind, start, end int) {
	s.tokens = append(s.tokens, source.Token{
		Kind:        kind,
		StartOffset: start,
		EndOffset:   end,
	})
}

func (s *scanner) emitSingle(kind source.TokenKind) {
	s.emit(kind, s.pos, s.pos+1)
	s.pos++
}

// scanCRLF emits "\r\n" as one newline token, or a bare '\r' as TokOther.
func (s *scanner) scanCRLF() {
	start := s.pos
	if s.peek(1) == '\n' {
		s.pos += 2
		s.emit(source.TokNewline, start, s.pos)
		return
	}
	s.pos++
	s.emit(source.TokOther, start, s.pos)
}

// scanRun consumes a maximal run of bytes matching pred.
func (s *scanner) scanRun(kind source.TokenKind, pred func(byte) bool) {
	start := s.pos
	for s.pos < len(s.content) && pred(s.content[s.pos]) {
		s.pos++
	}
	s.emit(kind, start, s.pos)
}

// scanString consumes a quoted literal, honoring backslash escapes.
// An unterminated literal extends to end of line (or file for backticks).
func (s *scanner) scanString(quote byte) {
	start := s.pos
	s.pos++ // opening quote

	for s.pos < len(s.content) {
		ch := s.content[s.pos]
		if ch == '\\' && quote != '`' && s.pos+1 < len(s.content) {
			s.pos += 2
			continue
		}
		if ch == quote {
			s.pos++
			break
		}
		if ch == '\n' && quote != '`' {
			break
		}
		s.pos++
	}

	s.emit(source.TokString, start, s.pos)
}

// scanLineComment consumes up to (not including) the newline.
func (s *scanner) scanLineComment() {
	start := s.pos
	for s.pos < len(s.content) && s.content[s.pos] != '\n' {
		if s.content[s.pos] == '\r' && s.peek(1) == '\n' {
			break
		}
		s.pos++
	}
	s.emit(source.TokComment, start, s.pos)
}

// scanBlockComment consumes through the closing "*/" or to end of file.
// The comment is emitted as a single token even when it spans lines.
func (s *scanner) scanBlockComment() {
	start := s.pos
	s.pos += 2 // "/*"

	for s.pos < len(s.content) {
		if s.content[s.pos] == '*' && s.peek(1) == '/' {
			s.pos += 2
			break
		}
		s.pos++
	}

	s.emit(source.TokComment, start, s.pos)
}

// scanNumber consumes a numeric literal (digits, dots, exponents, hex).
func (s *scanner) scanNumber() {
	start := s.pos
	for s.pos < len(s.content) {
		ch := s.content[s.pos]
		if isDigit(ch) || isIdentStart(ch) || ch == '.' {
			s.pos++
			continue
		}
		break
	}
	s.emit(source.TokNumber, start, s.pos)
}

// scanIdent consumes an identifier and classifies keywords.
func (s *scanner) scanIdent() {
	start := s.pos
	for s.pos < len(s.content) && isIdentPart(s.content[s.pos]) {
		s.pos++
	}

	kind := source.TokIdent
	if _, ok := keywords[string(s.content[start:s.pos])]; ok {
		kind = source.TokKeyword
	}
	s.emit(kind, start, s.pos)
}

func isHorizontalSpace(ch byte) bool {
	return ch == ' ' || ch == '\t'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch >= 0x80
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isOperatorChar(ch byte) bool {
	switch ch {
	case '+', '-', '*', '/', '%', '=', '!', '<', '>', '&', '|', '^', '~', ':', '.', '?', '@':
		return true
	default:
		return false
	}
}
