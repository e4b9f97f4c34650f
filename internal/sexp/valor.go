package sexp

import (
	"strings"

	"github.com/khevencolino/Adder/internal/lexer"
)

// TipoValor discrimina átomos e listas
type TipoValor int

const (
	ATOMO_INTEIRO TipoValor = iota // Literal inteiro, guardado como texto
	ATOMO_SIMBOLO                  // Identificador
	LISTA                          // Lista ordenada de valores
)

// String retorna o nome do tipo do valor
func (t TipoValor) String() string {
	switch t {
	case ATOMO_INTEIRO:
		return "inteiro"
	case ATOMO_SIMBOLO:
		return "símbolo"
	case LISTA:
		return "lista"
	default:
		return "?"
	}
}

// Valor é uma expressão S genérica: um átomo ou uma lista de valores.
// Literais inteiros mantêm o texto original; a conversão e a checagem de
// intervalo ficam com quem consome o valor.
type Valor struct {
	Tipo    TipoValor
	Texto   string   // Texto do átomo
	Itens   []*Valor // Filhos, quando Tipo == LISTA
	Posicao lexer.Position
}

// NovoInteiro cria um átomo inteiro a partir do seu texto decimal
func NovoInteiro(texto string) *Valor {
	return &Valor{Tipo: ATOMO_INTEIRO, Texto: texto}
}

// NovoSimbolo cria um átomo símbolo
func NovoSimbolo(nome string) *Valor {
	return &Valor{Tipo: ATOMO_SIMBOLO, Texto: nome}
}

// NovaLista cria uma lista com os itens dados
func NovaLista(itens ...*Valor) *Valor {
	return &Valor{Tipo: LISTA, Itens: itens}
}

func (v *Valor) EInteiro() bool { return v.Tipo == ATOMO_INTEIRO }
func (v *Valor) ESimbolo() bool { return v.Tipo == ATOMO_SIMBOLO }
func (v *Valor) ELista() bool   { return v.Tipo == LISTA }

// ESimboloNomeado verifica se o valor é o símbolo exato nome
func (v *Valor) ESimboloNomeado(nome string) bool {
	return v.Tipo == ATOMO_SIMBOLO && v.Texto == nome
}

// String devolve o valor escrito como expressão S
func (v *Valor) String() string {
	if v == nil {
		return "<nil>"
	}
	if v.Tipo != LISTA {
		return v.Texto
	}

	partes := make([]string, len(v.Itens))
	for i, item := range v.Itens {
		partes[i] = item.String()
	}
	return "(" + strings.Join(partes, " ") + ")"
}
