package scanner_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/leonardinius/loxfront/internal/loxerrors"
	"github.com/leonardinius/loxfront/internal/scanner"
	"github.com/leonardinius/loxfront/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eof1 = `{Type: EOF, Lexeme: "", Literal: "", Line: 1}`

func TestScanTokens(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", []string{eof1}},
		{"whitespace only", " \t\r ", []string{eof1}},
		{
			"punctuation",
			"(){},.*+-;/",
			[]string{
				`{Type: LEFT_PAREN, Lexeme: "(", Literal: "", Line: 1}`,
				`{Type: RIGHT_PAREN, Lexeme: ")", Literal: "", Line: 1}`,
				`{Type: LEFT_BRACE, Lexeme: "{", Literal: "", Line: 1}`,
				`{Type: RIGHT_BRACE, Lexeme: "}", Literal: "", Line: 1}`,
				`{Type: COMMA, Lexeme: ",", Literal: "", Line: 1}`,
				`{Type: DOT, Lexeme: ".", Literal: "", Line: 1}`,
				`{Type: STAR, Lexeme: "*", Literal: "", Line: 1}`,
				`{Type: PLUS, Lexeme: "+", Literal: "", Line: 1}`,
				`{Type: MINUS, Lexeme: "-", Literal: "", Line: 1}`,
				`{Type: SEMICOLON, Lexeme: ";", Literal: "", Line: 1}`,
				`{Type: SLASH, Lexeme: "/", Literal: "", Line: 1}`,
				eof1,
			},
		},
		{
			"bang equal is one token",
			"!=",
			[]string{
				`{Type: BANG_EQUAL, Lexeme: "!=", Literal: "", Line: 1}`,
				eof1,
			},
		},
		{
			"bangbang",
			"!!",
			[]string{
				`{Type: BANG, Lexeme: "!", Literal: "", Line: 1}`,
				`{Type: BANG, Lexeme: "!", Literal: "", Line: 1}`,
				eof1,
			},
		},
		{
			"bangbangeqeqeqeq",
			"!====",
			[]string{
				`{Type: BANG_EQUAL, Lexeme: "!=", Literal: "", Line: 1}`,
				`{Type: EQUAL_EQUAL, Lexeme: "==", Literal: "", Line: 1}`,
				`{Type: EQUAL, Lexeme: "=", Literal: "", Line: 1}`,
				eof1,
			},
		},
		{
			"lteqeqeqeq",
			"<====",
			[]string{
				`{Type: LESS_EQUAL, Lexeme: "<=", Literal: "", Line: 1}`,
				`{Type: EQUAL_EQUAL, Lexeme: "==", Literal: "", Line: 1}`,
				`{Type: EQUAL, Lexeme: "=", Literal: "", Line: 1}`,
				eof1,
			},
		},
		{
			"gt gteq",
			"> >=",
			[]string{
				`{Type: GREATER, Lexeme: ">", Literal: "", Line: 1}`,
				`{Type: GREATER_EQUAL, Lexeme: ">=", Literal: "", Line: 1}`,
				eof1,
			},
		},
		{
			"comment",
			"//comment",
			[]string{eof1},
		},
		{
			"bangcomment",
			"!//comment\n!",
			[]string{
				`{Type: BANG, Lexeme: "!", Literal: "", Line: 1}`,
				`{Type: BANG, Lexeme: "!", Literal: "", Line: 2}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 2}`,
			},
		},
		{
			"spaces",
			"! \r\t=",
			[]string{
				`{Type: BANG, Lexeme: "!", Literal: "", Line: 1}`,
				`{Type: EQUAL, Lexeme: "=", Literal: "", Line: 1}`,
				eof1,
			},
		},
		{
			"string",
			`"string"`,
			[]string{
				`{Type: STRING, Lexeme: "\"string\"", Literal: "string", Line: 1}`,
				eof1,
			},
		},
		{
			"empty-string",
			`""`,
			[]string{
				`{Type: STRING, Lexeme: "\"\"", Literal: "", Line: 1}`,
				eof1,
			},
		},
		{
			"multiline-string",
			"\"a\nb\" 1",
			[]string{
				`{Type: STRING, Lexeme: "\"a\nb\"", Literal: "a\nb", Line: 2}`,
				`{Type: NUMBER, Lexeme: "1", Literal: "1", Line: 2}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 2}`,
			},
		},
		{
			"number-integer-leading-zeroes",
			`0010`,
			[]string{
				`{Type: NUMBER, Lexeme: "0010", Literal: "0010", Line: 1}`,
				eof1,
			},
		},
		{
			"number-decimal",
			`12.34`,
			[]string{
				`{Type: NUMBER, Lexeme: "12.34", Literal: "12.34", Line: 1}`,
				eof1,
			},
		},
		{
			"number-trailing-dot",
			`12.`,
			[]string{
				`{Type: NUMBER, Lexeme: "12", Literal: "12", Line: 1}`,
				`{Type: DOT, Lexeme: ".", Literal: "", Line: 1}`,
				eof1,
			},
		},
		{
			"number-leading-dot",
			`.5`,
			[]string{
				`{Type: DOT, Lexeme: ".", Literal: "", Line: 1}`,
				`{Type: NUMBER, Lexeme: "5", Literal: "5", Line: 1}`,
				eof1,
			},
		},
		{
			"identifier",
			`_ident1fier`,
			[]string{
				`{Type: IDENTIFIER, Lexeme: "_ident1fier", Literal: "", Line: 1}`,
				eof1,
			},
		},
		{
			"keyword prefix is identifier",
			`classy`,
			[]string{
				`{Type: IDENTIFIER, Lexeme: "classy", Literal: "", Line: 1}`,
				eof1,
			},
		},
		{
			"lines",
			"1\n2\n\n3",
			[]string{
				`{Type: NUMBER, Lexeme: "1", Literal: "1", Line: 1}`,
				`{Type: NUMBER, Lexeme: "2", Literal: "2", Line: 2}`,
				`{Type: NUMBER, Lexeme: "3", Literal: "3", Line: 4}`,
				`{Type: EOF, Lexeme: "", Literal: "", Line: 4}`,
			},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			s := scanner.NewScanner(tc.input)
			tokens, err := s.Scan()
			require.NoError(tt, err)
			assert.Equal(tt, tc.expected, goStrings(tokens))
		})
	}
}

func TestScanReserved(t *testing.T) {
	words := token.Keywords()
	tokens, err := scanner.NewScanner(strings.Join(words, " ")).Scan()
	require.NoError(t, err)
	require.Len(t, tokens, len(words)+1)

	for i, w := range words {
		expected, _ := token.Keyword(w)
		assert.Equal(t, expected, tokens[i].Type, w)
		assert.Equal(t, w, tokens[i].Lexeme)
	}
}

func TestScanErrors(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		input    string
		expected []token.TokenType
		errs     []string
	}{
		{
			name:     "unexpected character",
			input:    "⌘",
			expected: []token.TokenType{token.EOF},
			errs:     []string{"[line 1] Error: Unexpected character. '⌘'"},
		},
		{
			name:     "recovers after bad character",
			input:    "1 @ + 2",
			expected: []token.TokenType{token.NUMBER, token.PLUS, token.NUMBER, token.EOF},
			errs:     []string{"[line 1] Error: Unexpected character. '@'"},
		},
		{
			name:     "several errors in one pass",
			input:    "#1\n$ 2\n\"open",
			expected: []token.TokenType{token.NUMBER, token.NUMBER, token.EOF},
			errs: []string{
				"[line 1] Error: Unexpected character. '#'",
				"[line 2] Error: Unexpected character. '$'",
				"[line 3] Error: Unterminated string.",
			},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			out := new(strings.Builder)
			reporter := loxerrors.NewErrReporter(out)

			tokens, err := scanner.NewScanner(tc.input, scanner.WithReporter(reporter)).Scan()
			assert.Equal(tt, tc.expected, types(tokens))
			for _, msg := range tc.errs {
				assert.ErrorContains(tt, err, msg)
			}
			assert.True(tt, loxerrors.IsStatic(err))
			assert.True(tt, reporter.HadError())
			assert.Equal(tt, strings.Join(tc.errs, "\n")+"\n", out.String())
		})
	}
}

func TestScanNumberLiteralRoundTrip(t *testing.T) {
	for _, lexeme := range []string{"0", "7", "3.14", "0.5", "1234567.0001", "007.70"} {
		tokens, err := scanner.NewScanner(lexeme).Scan()
		require.NoError(t, err)
		require.Equal(t, token.NUMBER, tokens[0].Type)

		expected, err := strconv.ParseFloat(lexeme, 64)
		require.NoError(t, err)
		actual, err := strconv.ParseFloat(tokens[0].Literal, 64)
		require.NoError(t, err)
		assert.Equal(t, expected, actual, lexeme)
	}
}

func goStrings(tokens []token.Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.GoString()
	}
	return out
}

func types(tokens []token.Token) []token.TokenType {
	out := make([]token.TokenType, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Type
	}
	return out
}
