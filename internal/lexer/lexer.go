package lexer

import (
	"fmt"
	"io"
	"regexp"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/khevencolino/Adder/internal/debug"
	"github.com/khevencolino/Adder/internal/utils"
)

// numeroCompleto decide se um átomo já recortado é um literal inteiro
var numeroCompleto = regexp.MustCompile(`^[+-]?\d+$`)

// Lexer representa o analisador léxico de expressões S
type Lexer struct {
	entrada string                       // Código fonte de entrada
	posicao int                          // Posição atual no código
	linha   int                          // Linha atual
	coluna  int                          // Coluna atual
	padroes map[TokenType]*regexp.Regexp // Padrões regex para cada tipo de token
}

// NovoLexer cria um novo analisador léxico
func NovoLexer(entrada string) *Lexer {
	lexer := &Lexer{
		entrada: entrada,
		linha:   1,
		coluna:  1,
	}
	lexer.inicializarPadroes()
	return lexer
}

// inicializarPadroes inicializa os padrões regex para cada tipo de token
func (l *Lexer) inicializarPadroes() {
	l.padroes = map[TokenType]*regexp.Regexp{
		COMMENT:    regexp.MustCompile(`^;[^\n]*`),           // Comentários ; até o fim da linha
		LPAREN:     regexp.MustCompile(`^\(`),                // Parêntese esquerdo: (
		RPAREN:     regexp.MustCompile(`^\)`),                // Parêntese direito: )
		WHITESPACE: regexp.MustCompile(`^\s+`),               // Espaços em branco
		SYMBOL:     regexp.MustCompile(`^[^\s()";\[\]{}]+`), // Átomo; vira NUMBER se for só dígitos
	}
}

// Tokenizar converte a entrada em uma lista de tokens
func (l *Lexer) Tokenizar() ([]Token, error) {
	var tokens []Token

	for {
		token, err := l.proximoToken()
		if err != nil {
			return nil, err
		}

		// Pula espaços em branco e comentários
		if token.Type != WHITESPACE && token.Type != COMMENT {
			tokens = append(tokens, token)
		}

		if token.Type == EOF {
			break
		}
	}

	return tokens, nil
}

// proximoToken encontra o próximo token
func (l *Lexer) proximoToken() (Token, error) {
	if !l.temMais() {
		return NovoToken(EOF, "", l.obterPosicaoAtual()), nil
	}

	posicaoAtual := l.obterPosicaoAtual()
	restante := l.entrada[l.posicao:]

	// Ordem importa: o padrão de átomo aceita quase tudo
	tiposToken := []TokenType{COMMENT, LPAREN, RPAREN, WHITESPACE, SYMBOL}

	for _, tipoToken := range tiposToken {
		if match := l.padroes[tipoToken].FindString(restante); match != "" {
			if tipoToken == SYMBOL && numeroCompleto.MatchString(match) {
				tipoToken = NUMBER
			}
			token := NovoToken(tipoToken, match, posicaoAtual)
			l.avancar(len(match))
			return token, nil
		}
	}

	// Caractere inválido
	caractereInvalido := string(l.espiar())
	l.avancar(1)
	return NovoToken(INVALID, caractereInvalido, posicaoAtual),
		utils.NovoErroTipado(
			utils.ERRO_LEXICO,
			fmt.Sprintf("caractere inválido '%s'", caractereInvalido),
			posicaoAtual.Line,
			posicaoAtual.Column,
			"",
		)
}

// obterPosicaoAtual retorna a posição atual no código fonte
func (l *Lexer) obterPosicaoAtual() Position {
	return NovaPosicao(l.linha, l.coluna, l.posicao)
}

// avancar move a posição do lexer comprimento bytes para frente.
// A coluna conta runas, não bytes.
func (l *Lexer) avancar(comprimento int) {
	fim := l.posicao + comprimento
	for l.posicao < fim && l.posicao < len(l.entrada) {
		r, largura := utf8.DecodeRuneInString(l.entrada[l.posicao:])
		if r == '\n' {
			l.linha++
			l.coluna = 1
		} else {
			l.coluna++
		}
		l.posicao += largura
	}
}

// espiar retorna o caractere atual sem avançar
func (l *Lexer) espiar() byte {
	if l.posicao >= len(l.entrada) {
		return 0
	}
	return l.entrada[l.posicao]
}

// temMais verifica se há mais caracteres para processar
func (l *Lexer) temMais() bool {
	return l.posicao < len(l.entrada)
}

// ValidarExpressao valida se a sequência de tokens pode formar uma expressão
func (l *Lexer) ValidarExpressao(tokens []Token) error {
	if len(tokens) == 0 || (len(tokens) == 1 && tokens[0].Type == EOF) {
		return utils.NovoErroTipado(utils.ERRO_LEXICO, "expressão vazia", 0, 0, "")
	}

	return validarParenteses(tokens)
}

// validarParenteses verifica se os parênteses estão balanceados
func validarParenteses(tokens []Token) error {
	var abertos []Token
	for _, token := range tokens {
		if !token.EParenteses() {
			continue
		}
		if token.Type == LPAREN {
			abertos = append(abertos, token)
			continue
		}
		if len(abertos) == 0 {
			return utils.NovoErroTipado(
				utils.ERRO_LEXICO,
				"parênteses não balanceados: ')' extra",
				token.Position.Line,
				token.Position.Column,
				"",
			)
		}
		abertos = abertos[:len(abertos)-1]
	}

	if len(abertos) > 0 {
		primeiro := abertos[0]
		return utils.NovoErroTipado(
			utils.ERRO_LEXICO,
			fmt.Sprintf("parênteses não balanceados: %d '(' sem ')' correspondente", len(abertos)),
			primeiro.Position.Line,
			primeiro.Position.Column,
			"",
		)
	}

	return nil
}

// ImprimirTokens imprime todos os tokens em forma de tabela
func ImprimirTokens(w io.Writer, tokens []Token) {
	debug.ImprimirTabela(w, table.Row{"TIPO", "VALOR", "POSIÇÃO"}, linhasTokens(tokens))
}

// DepurarTokens imprime os tokens apenas quando o debug está ativo
func DepurarTokens(tokens []Token) {
	debug.Tabela(table.Row{"TIPO", "VALOR", "POSIÇÃO"}, linhasTokens(tokens))
}

func linhasTokens(tokens []Token) []table.Row {
	linhas := make([]table.Row, 0, len(tokens))
	for _, token := range tokens {
		if token.Type != EOF {
			linhas = append(linhas, table.Row{token.Type, token.Value, token.Position})
		}
	}
	return linhas
}
