package interpreter_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/khevencolino/Adder/internal/backends/interpreter"
	"github.com/khevencolino/Adder/internal/parser"
)

var _ = Describe("InterpreterBackend", func() {
	It("imprime a árvore e avalia a expressão", func() {
		var saida bytes.Buffer
		backend := interpreter.NewInterpreterBackend(&saida)

		resultado, err := backend.Compile(&parser.Negacao{Operando: &parser.Constante{Valor: 9}})
		Expect(err).NotTo(HaveOccurred())
		Expect(resultado.Executado).To(BeTrue())
		Expect(resultado.Resultado).To(Equal(int32(-9)))
		Expect(resultado.Instrucoes).To(BeEmpty())
		Expect(saida.String()).To(ContainSubstring("negate"))
		Expect(backend.GetExtension()).To(BeEmpty())
	})
})
