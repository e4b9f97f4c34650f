package parser

import (
	"fmt"

	"github.com/khevencolino/Adder/internal/lexer"
)

// Expressao representa a interface base para todos os nós da AST
type Expressao interface {
	Aceitar(visitante Visitante) interface{}
	String() string
}

// Constante representa um literal inteiro de 32 bits na árvore
type Constante struct {
	Valor   int32
	Posicao lexer.Position
}

// Aceitar implementa o padrão visitor para Constante
func (c *Constante) Aceitar(visitante Visitante) interface{} {
	return visitante.Constante(c)
}

// String retorna representação em string da constante
func (c *Constante) String() string {
	return fmt.Sprintf("%d", c.Valor)
}

// Incremento representa (add1 e)
type Incremento struct {
	Operando Expressao
	Posicao  lexer.Position
}

func (i *Incremento) Aceitar(visitante Visitante) interface{} {
	return visitante.Incremento(i)
}

func (i *Incremento) String() string {
	return formatarUnaria(INCREMENTO, i.Operando)
}

// Decremento representa (sub1 e)
type Decremento struct {
	Operando Expressao
	Posicao  lexer.Position
}

func (d *Decremento) Aceitar(visitante Visitante) interface{} {
	return visitante.Decremento(d)
}

func (d *Decremento) String() string {
	return formatarUnaria(DECREMENTO, d.Operando)
}

// Negacao representa (negate e)
type Negacao struct {
	Operando Expressao
	Posicao  lexer.Position
}

func (n *Negacao) Aceitar(visitante Visitante) interface{} {
	return visitante.Negacao(n)
}

func (n *Negacao) String() string {
	return formatarUnaria(NEGACAO, n.Operando)
}

func formatarUnaria(operador TipoOperador, operando Expressao) string {
	return fmt.Sprintf("(%s %s)", operador.String(), operando.String())
}

// TipoOperador representa os operadores unários da linguagem
type TipoOperador int

const (
	INCREMENTO TipoOperador = iota
	DECREMENTO
	NEGACAO
)

// String retorna o nome do operador como escrito no código fonte
func (t TipoOperador) String() string {
	switch t {
	case INCREMENTO:
		return "add1"
	case DECREMENTO:
		return "sub1"
	case NEGACAO:
		return "negate"
	default:
		return "?"
	}
}

// operadoresUnarios mapeia o identificador exato para o operador.
// Só operadores unários cabem aqui: a geração de código usa apenas o acumulador.
var operadoresUnarios = map[string]TipoOperador{
	"add1":   INCREMENTO,
	"sub1":   DECREMENTO,
	"negate": NEGACAO,
}

// Visitante define a interface para o padrão visitor
type Visitante interface {
	Constante(constante *Constante) interface{}
	Incremento(incremento *Incremento) interface{}
	Decremento(decremento *Decremento) interface{}
	Negacao(negacao *Negacao) interface{}
}
