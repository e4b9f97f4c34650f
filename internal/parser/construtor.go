package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/khevencolino/Adder/internal/debug"
	"github.com/khevencolino/Adder/internal/sexp"
	"github.com/khevencolino/Adder/internal/utils"
)

// Construtor converte expressões S genéricas na AST tipada
type Construtor struct{}

// NovoConstrutor cria um novo construtor de AST
func NovoConstrutor() *Construtor {
	return &Construtor{}
}

// Construir valida o valor contra a gramática e devolve a árvore.
// Qualquer rejeição aborta a construção inteira; não há árvore parcial.
func (c *Construtor) Construir(valor *sexp.Valor) (Expressao, error) {
	expressao, err := c.construirValor(valor)
	if err != nil {
		return nil, err
	}

	debug.Printf("AST construída: %s\n", expressao)
	return expressao, nil
}

func (c *Construtor) construirValor(valor *sexp.Valor) (Expressao, error) {
	if valor == nil {
		return nil, utils.NovoErroTipado(utils.EXPRESSAO_MALFORMADA, "expressão ausente", 0, 0, "")
	}

	switch valor.Tipo {
	case sexp.ATOMO_INTEIRO:
		return c.construirConstante(valor)

	case sexp.LISTA:
		return c.construirOperacao(valor)

	default:
		return nil, erroMalformada(valor, fmt.Sprintf("esperado inteiro ou lista, encontrado %s", valor.Tipo))
	}
}

// construirConstante é o único ponto onde o intervalo de 32 bits é verificado
func (c *Construtor) construirConstante(valor *sexp.Valor) (Expressao, error) {
	numero, err := strconv.ParseInt(valor.Texto, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, utils.NovoErroTipado(
				utils.FORA_DO_INTERVALO,
				"número fora do intervalo de 32 bits",
				valor.Posicao.Line,
				valor.Posicao.Column,
				"permitido de -2147483648 a 2147483647",
			).ComTrecho(valor)
		}
		return nil, erroMalformada(valor, "literal inteiro inválido")
	}

	return &Constante{Valor: int32(numero), Posicao: valor.Posicao}, nil
}

// construirOperacao reconhece (add1 e), (sub1 e) e (negate e)
func (c *Construtor) construirOperacao(valor *sexp.Valor) (Expressao, error) {
	if len(valor.Itens) != 2 {
		return nil, erroMalformada(valor, fmt.Sprintf("esperada forma (operador expressão), encontrados %d elementos", len(valor.Itens)))
	}

	cabeca := valor.Itens[0]
	if cabeca == nil {
		return nil, erroMalformada(valor, "operador ausente")
	}
	if !cabeca.ESimbolo() {
		return nil, erroMalformada(valor, fmt.Sprintf("operador deve ser um símbolo, encontrado %s", cabeca.Tipo))
	}

	operador, ok := operadoresUnarios[cabeca.Texto]
	if !ok {
		return nil, erroMalformada(valor, fmt.Sprintf("operador desconhecido '%s'", cabeca.Texto))
	}

	operando, err := c.construirValor(valor.Itens[1])
	if err != nil {
		return nil, err
	}

	switch operador {
	case INCREMENTO:
		return &Incremento{Operando: operando, Posicao: valor.Posicao}, nil
	case DECREMENTO:
		return &Decremento{Operando: operando, Posicao: valor.Posicao}, nil
	default:
		return &Negacao{Operando: operando, Posicao: valor.Posicao}, nil
	}
}

func erroMalformada(valor *sexp.Valor, detalhes string) error {
	return utils.NovoErroTipado(
		utils.EXPRESSAO_MALFORMADA,
		"expressão malformada",
		valor.Posicao.Line,
		valor.Posicao.Column,
		detalhes,
	).ComTrecho(valor)
}
