package vm

import (
	"fmt"

	"github.com/khevencolino/Adder/internal/backends"
	"github.com/khevencolino/Adder/internal/backends/assembly/x86_64"
	"github.com/khevencolino/Adder/internal/debug"
	"github.com/khevencolino/Adder/internal/parser"
)

// VMBackend gera o assembly e o executa no emulador de acumulador
type VMBackend struct{}

func NewVMBackend() *VMBackend {
	return &VMBackend{}
}

func (b *VMBackend) GetName() string      { return "Emulador de acumulador (x86-64)" }
func (b *VMBackend) GetExtension() string { return "" }

func (b *VMBackend) Compile(expressao parser.Expressao) (*backends.CompilationResult, error) {
	debug.Printf("🤖 Gerando instruções para o emulador...\n")

	instrucoes := x86_64.GerarInstrucoes(expressao)

	debug.Printf("🚀 Executando no emulador...\n")
	resultado, err := Executar(instrucoes)
	if err != nil {
		return nil, err
	}

	return &backends.CompilationResult{
		Instrucoes: instrucoes,
		Resultado:  resultado,
		Executado:  true,
		Message:    fmt.Sprintf("Resultado: %d", resultado),
	}, nil
}
