package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/matsen/mixology/internal/recipe"
)

// ErrMalformedPairs is returned when an ingredient cell is not a list of
// [amount, name] pairs.
var ErrMalformedPairs = errors.New("malformed ingredient list")

// ParsePairs decodes an ingredient cell such as
//
//	[['2 oz', 'Gin'], ["3/4 oz", "Lemon's juice"]]
//
// Inner pairs may be lists or tuples and strings may use either quote style.
// Bare tokens (numbers, None) are accepted as their literal text, with None
// read as an empty amount. An empty cell or "None" yields no pairs.
func ParsePairs(s string) ([]recipe.Pair, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == recipe.NoneSentinel {
		return nil, nil
	}

	p := &pairParser{src: []rune(trimmed)}
	pairs, err := p.parseList()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPairs, err)
	}
	p.skipSpace()
	if !p.done() {
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrMalformedPairs, p.peek(), p.pos)
	}
	return pairs, nil
}

type pairParser struct {
	src []rune
	pos int
}

func (p *pairParser) done() bool { return p.pos >= len(p.src) }

func (p *pairParser) peek() rune {
	if p.done() {
		return 0
	}
	return p.src[p.pos]
}

func (p *pairParser) skipSpace() {
	for !p.done() && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *pairParser) expect(r rune) error {
	p.skipSpace()
	if p.peek() != r {
		if p.done() {
			return fmt.Errorf("expected %q, got end of input", r)
		}
		return fmt.Errorf("expected %q at offset %d, got %q", r, p.pos, p.peek())
	}
	p.pos++
	return nil
}

// parseList reads '[' pair (',' pair)* [','] ']'.
func (p *pairParser) parseList() ([]recipe.Pair, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}

	var pairs []recipe.Pair
	for {
		p.skipSpace()
		if p.peek() == ']' {
			p.pos++
			return pairs, nil
		}

		pair, err := p.parsePair()
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", len(pairs)+1, err)
		}
		pairs = append(pairs, pair)

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
		default:
			if p.done() {
				return nil, errors.New("unterminated list")
			}
			return nil, fmt.Errorf("expected ',' or ']' at offset %d, got %q", p.pos, p.peek())
		}
	}
}

// parsePair reads [amount, name] or (amount, name).
func (p *pairParser) parsePair() (recipe.Pair, error) {
	p.skipSpace()
	var closer rune
	switch p.peek() {
	case '[':
		closer = ']'
	case '(':
		closer = ')'
	default:
		return recipe.Pair{}, fmt.Errorf("expected '[' or '(' at offset %d", p.pos)
	}
	p.pos++

	amount, err := p.parseValue()
	if err != nil {
		return recipe.Pair{}, fmt.Errorf("amount: %w", err)
	}
	if err := p.expect(','); err != nil {
		return recipe.Pair{}, err
	}
	name, err := p.parseValue()
	if err != nil {
		return recipe.Pair{}, fmt.Errorf("name: %w", err)
	}

	p.skipSpace()
	if p.peek() == ',' {
		p.pos++
	}
	if err := p.expect(closer); err != nil {
		return recipe.Pair{}, err
	}

	if amount == recipe.NoneSentinel {
		amount = ""
	}
	return recipe.Pair{Amount: amount, Name: name}, nil
}

// parseValue reads a quoted string or a bare token.
func (p *pairParser) parseValue() (string, error) {
	p.skipSpace()
	switch q := p.peek(); q {
	case '\'', '"':
		return p.parseQuoted(q)
	}

	start := p.pos
	for !p.done() {
		r := p.src[p.pos]
		if r == ',' || r == ']' || r == ')' || unicode.IsSpace(r) {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return "", fmt.Errorf("expected value at offset %d", p.pos)
	}
	return string(p.src[start:p.pos]), nil
}

func (p *pairParser) parseQuoted(quote rune) (string, error) {
	p.pos++ // opening quote
	var sb strings.Builder
	for !p.done() {
		r := p.src[p.pos]
		p.pos++
		switch r {
		case quote:
			return sb.String(), nil
		case '\\':
			if err := p.parseEscape(&sb); err != nil {
				return "", err
			}
		default:
			sb.WriteRune(r)
		}
	}
	return "", errors.New("unterminated string")
}

// simpleEscapes maps single-letter escapes to the runes they stand for.
var simpleEscapes = map[rune]rune{
	'n': '\n', 't': '\t', 'r': '\r', 'a': '\a',
	'b': '\b', 'f': '\f', 'v': '\v',
	'\\': '\\', '\'': '\'', '"': '"',
}

// parseEscape decodes the escape after a backslash. Hex escapes name code
// points, not bytes, so \xe7 is "ç". Unknown escapes keep their backslash.
func (p *pairParser) parseEscape(sb *strings.Builder) error {
	if p.done() {
		return errors.New("dangling escape")
	}
	esc := p.src[p.pos]
	p.pos++

	if r, ok := simpleEscapes[esc]; ok {
		sb.WriteRune(r)
		return nil
	}

	switch esc {
	case '\n':
		// line continuation
	case 'x':
		return p.parseCodePoint(sb, 2, 16)
	case 'u':
		return p.parseCodePoint(sb, 4, 16)
	case 'U':
		return p.parseCodePoint(sb, 8, 16)
	case '0', '1', '2', '3', '4', '5', '6', '7':
		p.pos--
		return p.parseCodePoint(sb, 3, 8)
	default:
		sb.WriteRune('\\')
		sb.WriteRune(esc)
	}
	return nil
}

// parseCodePoint reads digits in base and writes the code point they name.
// Hex escapes need exactly n digits; octal escapes take one to n.
func (p *pairParser) parseCodePoint(sb *strings.Builder, n, base int) error {
	start := p.pos
	for p.pos-start < n && !p.done() && isDigit(p.src[p.pos], base) {
		p.pos++
	}
	digits := string(p.src[start:p.pos])
	if digits == "" || (base == 16 && len(digits) != n) {
		return fmt.Errorf("truncated escape at offset %d", start)
	}

	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil || v > unicode.MaxRune {
		return fmt.Errorf("invalid escape %q at offset %d", digits, start)
	}
	sb.WriteRune(rune(v))
	return nil
}

func isDigit(r rune, base int) bool {
	if base == 8 {
		return r >= '0' && r <= '7'
	}
	return unicode.Is(unicode.ASCII_Hex_Digit, r)
}
