package x86_64

import (
	"fmt"
	"strings"
)

// SimboloPadrao é o rótulo exportado que o runtime chama
const SimboloPadrao = "our_code_starts_here"

// Programa embrulha as instruções num arquivo NASM completo
type Programa struct {
	simbolo  string
	template string
}

// NovoPrograma cria o embrulho com o símbolo de entrada dado
func NovoPrograma(simbolo string) *Programa {
	if simbolo == "" {
		simbolo = SimboloPadrao
	}
	return &Programa{
		simbolo: simbolo,
		template: `section .text
global %[1]s
%[1]s:
%[2]s  ret
`,
	}
}

// Montar gera o texto do arquivo .s
func (p *Programa) Montar(instrucoes []string) string {
	var corpo strings.Builder
	for _, instrucao := range instrucoes {
		corpo.WriteString("  ")
		corpo.WriteString(instrucao)
		corpo.WriteString("\n")
	}
	return fmt.Sprintf(p.template, p.simbolo, corpo.String())
}
