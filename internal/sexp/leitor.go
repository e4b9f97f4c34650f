package sexp

import (
	"fmt"

	"github.com/khevencolino/Adder/internal/lexer"
	"github.com/khevencolino/Adder/internal/utils"
)

// Leitor transforma texto em um único Valor
type Leitor struct {
	tokens       []lexer.Token
	posicaoAtual int
}

// NovoLeitor cria um novo leitor de expressões S
func NovoLeitor() *Leitor {
	return &Leitor{}
}

// Ler tokeniza o conteúdo e lê exatamente uma expressão S
func (l *Leitor) Ler(conteudo string) (*Valor, error) {
	lex := lexer.NovoLexer(conteudo)
	tokens, err := lex.Tokenizar()
	if err != nil {
		return nil, err
	}
	if err := lex.ValidarExpressao(tokens); err != nil {
		return nil, err
	}

	lexer.DepurarTokens(tokens)

	l.tokens = tokens
	l.posicaoAtual = 0

	valor, err := l.lerValor()
	if err != nil {
		return nil, err
	}

	if sobra := l.tokenAtual(); sobra.Type != lexer.EOF {
		return nil, utils.NovoErroTipado(
			utils.ERRO_LEITURA,
			"conteúdo após o fim da expressão",
			sobra.Position.Line,
			sobra.Position.Column,
			fmt.Sprintf("encontrado '%s'", sobra.Value),
		)
	}

	return valor, nil
}

// lerValor lê um átomo ou uma lista a partir do token atual
func (l *Leitor) lerValor() (*Valor, error) {
	token := l.proximoToken()

	if token.EAtomo() {
		return lerAtomo(token), nil
	}

	switch token.Type {
	case lexer.LPAREN:
		lista := NovaLista()
		lista.Posicao = token.Position
		for l.tokenAtual().Type != lexer.RPAREN {
			if l.tokenAtual().Type == lexer.EOF {
				return nil, utils.NovoErroTipado(
					utils.ERRO_LEITURA,
					"lista não fechada",
					token.Position.Line,
					token.Position.Column,
					"",
				)
			}
			item, err := l.lerValor()
			if err != nil {
				return nil, err
			}
			lista.Itens = append(lista.Itens, item)
		}
		l.proximoToken() // consome ')'
		return lista, nil

	default:
		return nil, utils.NovoErroTipado(
			utils.ERRO_LEITURA,
			"token inesperado",
			token.Position.Line,
			token.Position.Column,
			fmt.Sprintf("esperado átomo ou '(', encontrado %s", token.Type),
		)
	}
}

// lerAtomo converte um token NUMBER ou SYMBOL no átomo correspondente
func lerAtomo(token lexer.Token) *Valor {
	valor := NovoSimbolo(token.Value)
	if token.ENumero() {
		valor = NovoInteiro(token.Value)
	}
	valor.Posicao = token.Position
	return valor
}

// proximoToken retorna o token atual e avança
func (l *Leitor) proximoToken() lexer.Token {
	token := l.tokenAtual()
	if l.posicaoAtual < len(l.tokens) {
		l.posicaoAtual++
	}
	return token
}

// tokenAtual retorna o token atual sem avançar
func (l *Leitor) tokenAtual() lexer.Token {
	if l.posicaoAtual >= len(l.tokens) {
		return lexer.NovoToken(lexer.EOF, "", lexer.NovaPosicao(0, 0, 0))
	}
	return l.tokens[l.posicaoAtual]
}
