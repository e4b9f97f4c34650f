package x86_64

import (
	"fmt"

	"github.com/khevencolino/Adder/internal/parser"
)

// Acumulador é o único registrador referenciado pelo código gerado
const Acumulador = "rax"

// Gerador emite instruções NASM que deixam o valor da expressão em rax.
// Como todos os operadores são unários, há no máximo um valor vivo por vez
// e nenhum outro registrador ou posição de memória é tocado.
type Gerador struct {
	instrucoes []string
}

// GerarInstrucoes traduz a expressão em instruções, em pós-ordem
func GerarInstrucoes(expressao parser.Expressao) []string {
	g := &Gerador{}
	expressao.Aceitar(g)
	return g.instrucoes
}

func (g *Gerador) emitir(formato string, args ...interface{}) {
	g.instrucoes = append(g.instrucoes, fmt.Sprintf(formato, args...))
}

// Implementação da interface visitor
func (g *Gerador) Constante(constante *parser.Constante) interface{} {
	g.emitir("mov %s, %d", Acumulador, constante.Valor)
	return nil
}

func (g *Gerador) Incremento(incremento *parser.Incremento) interface{} {
	incremento.Operando.Aceitar(g)
	g.emitir("add %s, 1", Acumulador)
	return nil
}

func (g *Gerador) Decremento(decremento *parser.Decremento) interface{} {
	decremento.Operando.Aceitar(g)
	g.emitir("sub %s, 1", Acumulador)
	return nil
}

func (g *Gerador) Negacao(negacao *parser.Negacao) interface{} {
	negacao.Operando.Aceitar(g)
	g.emitir("neg %s", Acumulador)
	return nil
}
