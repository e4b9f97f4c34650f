package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const assemblyAdd1 = "section .text\nglobal our_code_starts_here\nour_code_starts_here:\n  mov rax, 41\n  add rax, 1\n  ret\n"

var _ = Describe("executar", func() {
	var (
		diretorio string
		fonte     string
		buffer    bytes.Buffer
		saida     *bufio.Writer
		erros     bytes.Buffer
	)

	BeforeEach(func() {
		diretorio = GinkgoT().TempDir()
		fonte = filepath.Join(diretorio, "programa.snek")
		Expect(os.WriteFile(fonte, []byte("(add1 41)\n"), 0644)).To(Succeed())

		buffer.Reset()
		erros.Reset()
		saida = bufio.NewWriter(&buffer)
	})

	lerSaida := func(caminho string) string {
		conteudo, err := os.ReadFile(caminho)
		Expect(err).NotTo(HaveOccurred())
		return string(conteudo)
	}

	It("aceita o arquivo de saída como segundo argumento", func() {
		destino := filepath.Join(diretorio, "saida.s")

		Expect(executar([]string{fonte, destino}, saida, &erros)).To(Equal(0))
		Expect(lerSaida(destino)).To(Equal(assemblyAdd1))
		Expect(erros.String()).To(BeEmpty())
	})

	It("dá precedência ao argumento posicional sobre -o", func() {
		pelaFlag := filepath.Join(diretorio, "flag.s")
		posicional := filepath.Join(diretorio, "posicional.s")

		Expect(executar([]string{"-o", pelaFlag, fonte, posicional}, saida, &erros)).To(Equal(0))
		Expect(lerSaida(posicional)).To(Equal(assemblyAdd1))
		Expect(pelaFlag).NotTo(BeAnExistingFile())
	})

	It("usa -o quando só há o arquivo de entrada", func() {
		destino := filepath.Join(diretorio, "flag.s")

		Expect(executar([]string{"-o", destino, fonte}, saida, &erros)).To(Equal(0))
		Expect(lerSaida(destino)).To(Equal(assemblyAdd1))
	})

	It("só entrega a mensagem depois do flush", func() {
		destino := filepath.Join(diretorio, "saida.s")

		Expect(executar([]string{fonte, destino}, saida, &erros)).To(Equal(0))
		Expect(buffer.String()).To(BeEmpty())

		Expect(saida.Flush()).To(Succeed())
		Expect(buffer.String()).To(Equal("Arquivo assembly criado: " + destino + "\n"))
	})

	It("imprime o resultado do emulador", func() {
		Expect(executar([]string{"--backend=vm", fonte}, saida, &erros)).To(Equal(0))
		Expect(saida.Flush()).To(Succeed())
		Expect(buffer.String()).To(ContainSubstring("Resultado: 42"))
	})

	DescribeTable("rejeita quantidades erradas de argumentos",
		func(args []string) {
			Expect(executar(args, saida, &erros)).To(Equal(1))
			Expect(erros.String()).To(ContainSubstring("Erro de compilação"))
			Expect(erros.String()).To(ContainSubstring("accepts between 1 and 2 arg(s)"))
		},
		Entry("nenhum", []string{}),
		Entry("três", []string{"a.snek", "b.s", "c.s"}),
	)

	It("retorna 1 quando a compilação falha", func() {
		Expect(os.WriteFile(fonte, []byte("(add1 5 6)"), 0644)).To(Succeed())
		destino := filepath.Join(diretorio, "saida.s")

		Expect(executar([]string{fonte, destino}, saida, &erros)).To(Equal(1))
		Expect(erros.String()).To(ContainSubstring("expressão malformada"))
		Expect(destino).NotTo(BeAnExistingFile())
	})
})
