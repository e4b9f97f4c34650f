package backends

import "github.com/khevencolino/Adder/internal/parser"

// Backend consome uma expressão já validada
type Backend interface {
	Compile(expressao parser.Expressao) (*CompilationResult, error)
	GetName() string
	GetExtension() string
}

// CompilationResult resume o que o backend produziu
type CompilationResult struct {
	OutputFile string   // Arquivo gerado, se houver
	Instrucoes []string // Instruções emitidas, se houver
	Resultado  int32    // Valor calculado, para backends que executam
	Executado  bool     // Indica se Resultado é válido
	Message    string
}
