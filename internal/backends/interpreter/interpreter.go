package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/khevencolino/Adder/internal/backends"
	"github.com/khevencolino/Adder/internal/parser"
)

// InterpreterBackend desenha a árvore e a avalia diretamente, sem gerar assembly
type InterpreterBackend struct {
	saida        io.Writer
	visualizador *parser.VisualizadorArvore
	avaliador    *parser.Avaliador
}

func NewInterpreterBackend(saida io.Writer) *InterpreterBackend {
	if saida == nil {
		saida = os.Stdout
	}
	return &InterpreterBackend{
		saida:        saida,
		visualizador: parser.NovoVisualizador(),
		avaliador:    parser.NovoAvaliador(),
	}
}

func (i *InterpreterBackend) GetName() string      { return "Interpretador AST" }
func (i *InterpreterBackend) GetExtension() string { return "" }

func (i *InterpreterBackend) Compile(expressao parser.Expressao) (*backends.CompilationResult, error) {
	fmt.Fprintf(i.saida, "🔍 Interpretando diretamente da AST...\n")

	i.visualizador.ImprimirArvore(i.saida, expressao)

	resultado := i.avaliador.Avaliar(expressao)
	return &backends.CompilationResult{
		Resultado: resultado,
		Executado: true,
		Message:   fmt.Sprintf("Resultado: %d", resultado),
	}, nil
}
