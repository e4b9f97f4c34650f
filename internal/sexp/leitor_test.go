package sexp_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/khevencolino/Adder/internal/sexp"
	"github.com/khevencolino/Adder/internal/utils"
)

var _ = Describe("Leitor", func() {
	var leitor *sexp.Leitor

	BeforeEach(func() {
		leitor = sexp.NovoLeitor()
	})

	It("lê um átomo inteiro preservando o texto", func() {
		valor, err := leitor.Ler("  2147483648 ")
		Expect(err).NotTo(HaveOccurred())
		Expect(valor.EInteiro()).To(BeTrue())
		Expect(valor.Texto).To(Equal("2147483648"))
		Expect(valor.Posicao.Column).To(Equal(3))
	})

	It("lê listas aninhadas", func() {
		valor, err := leitor.Ler("(negate (sub1 (add1 5)))")
		Expect(err).NotTo(HaveOccurred())
		Expect(valor.ELista()).To(BeTrue())
		Expect(valor.Itens).To(HaveLen(2))
		Expect(valor.Itens[0].ESimboloNomeado("negate")).To(BeTrue())
		Expect(valor.Itens[1].Itens[1].Itens[1].Texto).To(Equal("5"))
		Expect(valor.String()).To(Equal("(negate (sub1 (add1 5)))"))
	})

	It("lê a lista vazia", func() {
		valor, err := leitor.Ler("()")
		Expect(err).NotTo(HaveOccurred())
		Expect(valor.ELista()).To(BeTrue())
		Expect(valor.Itens).To(BeEmpty())
		Expect(valor.String()).To(Equal("()"))
	})

	It("pode ser reutilizado", func() {
		_, err := leitor.Ler("(add1 1)")
		Expect(err).NotTo(HaveOccurred())
		valor, err := leitor.Ler("7")
		Expect(err).NotTo(HaveOccurred())
		Expect(valor.String()).To(Equal("7"))
	})

	It("rejeita mais de uma expressão", func() {
		_, err := leitor.Ler("(add1 5) 6")
		Expect(err).To(MatchError(ContainSubstring("conteúdo após o fim da expressão")))
		Expect(utils.EhTipo(err, utils.ERRO_LEITURA)).To(BeTrue())
	})

	It("propaga erros léxicos", func() {
		_, err := leitor.Ler("(add1 5")
		Expect(utils.EhTipo(err, utils.ERRO_LEXICO)).To(BeTrue())

		_, err = leitor.Ler("")
		Expect(err).To(MatchError(ContainSubstring("expressão vazia")))
	})
})

var _ = Describe("Valor", func() {
	It("escreve valores montados à mão", func() {
		valor := sexp.NovaLista(sexp.NovoSimbolo("add1"), sexp.NovaLista(sexp.NovoSimbolo("sub1"), sexp.NovoInteiro("-3")))
		Expect(valor.String()).To(Equal("(add1 (sub1 -3))"))
		Expect(valor.Itens[0].ESimboloNomeado("add1")).To(BeTrue())
		Expect(valor.Itens[0].ESimboloNomeado("ADD1")).To(BeFalse())
		Expect(valor.Itens[1].Itens[1].ESimbolo()).To(BeFalse())
	})
})
