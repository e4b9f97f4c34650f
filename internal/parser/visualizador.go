package parser

import (
	"fmt"
	"io"

	"github.com/m1gwings/treedrawer/tree"
)

// VisualizadorArvore cria representações visuais da AST
type VisualizadorArvore struct{}

// NovoVisualizador cria um novo visualizador
func NovoVisualizador() *VisualizadorArvore {
	return &VisualizadorArvore{}
}

// CriarArvore converte a AST para o formato do treedrawer
func (v *VisualizadorArvore) CriarArvore(expressao Expressao) *tree.Tree {
	arvore := tree.NewTree(tree.NodeString(rotulo(expressao)))
	v.adicionarOperando(arvore, expressao)
	return arvore
}

// ImprimirArvore desenha a árvore em w
func (v *VisualizadorArvore) ImprimirArvore(w io.Writer, expressao Expressao) {
	fmt.Fprintln(w, "=== Árvore Sintática ===")
	fmt.Fprintln(w, v.CriarArvore(expressao))
	fmt.Fprintln(w)
}

// adicionarOperando desce pela cadeia de operadores unários; cada nó tem no máximo um filho
func (v *VisualizadorArvore) adicionarOperando(no *tree.Tree, expressao Expressao) {
	operando := operandoDe(expressao)
	if operando == nil {
		return
	}

	filho := no.AddChild(tree.NodeString(rotulo(operando)))
	v.adicionarOperando(filho, operando)
}

// rotulo devolve o texto do nó: o número ou o nome do operador
func rotulo(expressao Expressao) string {
	switch expr := expressao.(type) {
	case *Constante:
		return expr.String()
	case *Incremento:
		return INCREMENTO.String()
	case *Decremento:
		return DECREMENTO.String()
	case *Negacao:
		return NEGACAO.String()
	default:
		return "?"
	}
}

func operandoDe(expressao Expressao) Expressao {
	switch expr := expressao.(type) {
	case *Incremento:
		return expr.Operando
	case *Decremento:
		return expr.Operando
	case *Negacao:
		return expr.Operando
	default:
		return nil
	}
}
