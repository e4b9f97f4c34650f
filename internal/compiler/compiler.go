package compiler

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/khevencolino/Adder/internal/backends"
	"github.com/khevencolino/Adder/internal/backends/assembly"
	"github.com/khevencolino/Adder/internal/backends/assembly/x86_64"
	"github.com/khevencolino/Adder/internal/backends/interpreter"
	"github.com/khevencolino/Adder/internal/backends/vm"
	"github.com/khevencolino/Adder/internal/debug"
	"github.com/khevencolino/Adder/internal/parser"
	"github.com/khevencolino/Adder/internal/sexp"
	"github.com/khevencolino/Adder/internal/utils"
)

// Leitor produz a expressão S genérica a partir do texto fonte
type Leitor interface {
	Ler(conteudo string) (*sexp.Valor, error)
}

// Opcoes reúne o que uma compilação precisa saber além do código fonte
type Opcoes struct {
	ArquivoEntrada string
	ArquivoSaida   string    // Destino do .s (backend assembly)
	Backend        string    // assembly, interpreter ou vm (e seus apelidos)
	Arch           string    // Arquitetura para o backend assembly
	Simbolo        string    // Rótulo exportado no .s
	Saida          io.Writer // Onde backends interativos escrevem
}

// Compiler representa o compilador principal
type Compiler struct {
	leitor     Leitor             // Leitor de expressões S
	construtor *parser.Construtor // Construtor da AST
}

// NovoCompilador cria um novo compilador com o leitor padrão
func NovoCompilador() *Compiler {
	return NovoCompiladorComLeitor(sexp.NovoLeitor())
}

// NovoCompiladorComLeitor cria um compilador que usa o leitor dado
func NovoCompiladorComLeitor(leitor Leitor) *Compiler {
	return &Compiler{
		leitor:     leitor,
		construtor: parser.NovoConstrutor(),
	}
}

// Analisar lê o texto e constrói a AST validada
func (c *Compiler) Analisar(conteudo string) (parser.Expressao, error) {
	valor, err := c.leitor.Ler(conteudo)
	if err != nil {
		return nil, err
	}

	debug.Printf("Expressão lida: %s\n", valor)

	return c.construtor.Construir(valor)
}

// CompilarTexto executa o pipeline central: texto → AST → instruções
func (c *Compiler) CompilarTexto(conteudo string) ([]string, error) {
	expressao, err := c.Analisar(conteudo)
	if err != nil {
		return nil, err
	}
	return x86_64.GerarInstrucoes(expressao), nil
}

// CompilarArquivo compila um arquivo fonte com o backend escolhido
func (c *Compiler) CompilarArquivo(opcoes Opcoes) (*backends.CompilationResult, error) {
	backend, err := SelecionarBackend(opcoes)
	if err != nil {
		return nil, err
	}

	conteudo, err := utils.LerArquivo(opcoes.ArquivoEntrada)
	if err != nil {
		return nil, err
	}

	expressao, err := c.Analisar(conteudo)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opcoes.ArquivoEntrada, err)
	}

	debug.Printf("Backend: %s\n", backend.GetName())
	return backend.Compile(expressao)
}

// SelecionarBackend resolve o nome do backend (com apelidos) para uma implementação
func SelecionarBackend(opcoes Opcoes) (backends.Backend, error) {
	saida := opcoes.Saida
	if saida == nil {
		saida = os.Stdout
	}

	switch strings.ToLower(opcoes.Backend) {
	case "assembly", "asm", "native", "":
		return assembly.NewAssemblyBackend(opcoes.Arch, opcoes.ArquivoSaida, opcoes.Simbolo)
	case "interpreter", "interp", "ast":
		return interpreter.NewInterpreterBackend(saida), nil
	case "vm", "emulador", "emu":
		return vm.NewVMBackend(), nil
	default:
		return nil, fmt.Errorf("backend desconhecido: %s", opcoes.Backend)
	}
}
