package assembly

import (
	"fmt"

	"github.com/khevencolino/Adder/internal/backends"
	"github.com/khevencolino/Adder/internal/backends/assembly/x86_64"
)

// NewAssemblyBackend escolhe o backend de assembly pela arquitetura.
// Só há um alvo: o modelo de acumulador único do x86-64.
func NewAssemblyBackend(arch, arquivoSaida, simbolo string) (backends.Backend, error) {
	switch arch {
	case "x86_64", "amd64", "":
		return x86_64.NewX86_64Backend(arquivoSaida, simbolo), nil
	default:
		return nil, fmt.Errorf("arquitetura de assembly não suportada: %s", arch)
	}
}
