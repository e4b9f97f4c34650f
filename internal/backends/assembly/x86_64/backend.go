package x86_64

import (
	"fmt"
	"path/filepath"

	"github.com/khevencolino/Adder/internal/backends"
	"github.com/khevencolino/Adder/internal/debug"
	"github.com/khevencolino/Adder/internal/parser"
	"github.com/khevencolino/Adder/internal/utils"
)

// ArquivoSaidaPadrao é usado quando nenhum destino é configurado
var ArquivoSaidaPadrao = filepath.Join("result", "programa.s")

type X86_64Backend struct {
	arquivoSaida string
	programa     *Programa
}

func NewX86_64Backend(arquivoSaida, simbolo string) *X86_64Backend {
	if arquivoSaida == "" {
		arquivoSaida = ArquivoSaidaPadrao
	}
	return &X86_64Backend{
		arquivoSaida: arquivoSaida,
		programa:     NovoPrograma(simbolo),
	}
}

func (a *X86_64Backend) GetName() string      { return "Assembly x86-64 (NASM)" }
func (a *X86_64Backend) GetExtension() string { return ".s" }

func (a *X86_64Backend) Compile(expressao parser.Expressao) (*backends.CompilationResult, error) {
	debug.Printf("🔧 Compilando para Assembly x86-64...\n")

	instrucoes := GerarInstrucoes(expressao)
	for i, instrucao := range instrucoes {
		debug.Printf("  %03d: %s\n", i, instrucao)
	}

	if err := utils.EscreverArquivo(a.arquivoSaida, a.programa.Montar(instrucoes)); err != nil {
		return nil, err
	}

	return &backends.CompilationResult{
		OutputFile: a.arquivoSaida,
		Instrucoes: instrucoes,
		Message:    fmt.Sprintf("Arquivo assembly criado: %s", a.arquivoSaida),
	}, nil
}
