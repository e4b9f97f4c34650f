package lexer_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/khevencolino/Adder/internal/lexer"
	"github.com/khevencolino/Adder/internal/utils"
)

func tipos(tokens []lexer.Token) []lexer.TokenType {
	resultado := make([]lexer.TokenType, 0, len(tokens))
	for _, token := range tokens {
		resultado = append(resultado, token.Type)
	}
	return resultado
}

var _ = Describe("Lexer", func() {
	It("reconhece parênteses, símbolos e números", func() {
		tokens, err := lexer.NovoLexer("(negate (sub1 (add1 5)))").Tokenizar()
		Expect(err).NotTo(HaveOccurred())
		Expect(tipos(tokens)).To(Equal([]lexer.TokenType{
			lexer.LPAREN, lexer.SYMBOL,
			lexer.LPAREN, lexer.SYMBOL,
			lexer.LPAREN, lexer.SYMBOL, lexer.NUMBER,
			lexer.RPAREN, lexer.RPAREN, lexer.RPAREN,
			lexer.EOF,
		}))
		Expect(tokens[1].Value).To(Equal("negate"))
		Expect(tokens[6].Value).To(Equal("5"))
	})

	DescribeTable("classifica átomos",
		func(entrada string, esperado lexer.TokenType) {
			tokens, err := lexer.NovoLexer(entrada).Tokenizar()
			Expect(err).NotTo(HaveOccurred())
			Expect(tokens).To(HaveLen(2))
			Expect(tokens[0].Type).To(Equal(esperado))
			Expect(tokens[0].Value).To(Equal(entrada))
		},
		Entry("inteiro", "42", lexer.NUMBER),
		Entry("inteiro negativo", "-7", lexer.NUMBER),
		Entry("inteiro com sinal positivo", "+7", lexer.NUMBER),
		Entry("inteiro maior que 64 bits", "99999999999999999999999", lexer.NUMBER),
		Entry("símbolo", "add1", lexer.SYMBOL),
		Entry("sinal isolado", "-", lexer.SYMBOL),
		Entry("dígitos seguidos de letras", "5x", lexer.SYMBOL),
	)

	It("ignora comentários e espaços, acompanhando linha e coluna", func() {
		tokens, err := lexer.NovoLexer("; programa\n  (add1\n\t5)").Tokenizar()
		Expect(err).NotTo(HaveOccurred())
		Expect(tipos(tokens)).To(Equal([]lexer.TokenType{
			lexer.LPAREN, lexer.SYMBOL, lexer.NUMBER, lexer.RPAREN, lexer.EOF,
		}))
		Expect(tokens[0].Position).To(Equal(lexer.NovaPosicao(2, 3, 13)))
		Expect(tokens[2].Position.Line).To(Equal(3))
		Expect(tokens[2].Position.Column).To(Equal(2))
	})

	It("rejeita caracteres fora do alfabeto", func() {
		_, err := lexer.NovoLexer(`(add1 "5")`).Tokenizar()
		Expect(err).To(HaveOccurred())
		Expect(utils.EhTipo(err, utils.ERRO_LEXICO)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("linha 1, coluna 7"))
	})

	It("conta colunas em runas depois de átomos multibyte", func() {
		tokens, err := lexer.NovoLexer("(ação 5)").Tokenizar()
		Expect(err).NotTo(HaveOccurred())
		Expect(tokens[1].Value).To(Equal("ação"))
		Expect(tokens[2].Position.Column).To(Equal(7))
		Expect(tokens[2].Position.Offset).To(Equal(9))

		_, err = lexer.NovoLexer("(ação [").Tokenizar()
		Expect(err).To(MatchError(ContainSubstring("linha 1, coluna 7")))
	})

	It("distingue átomos e parênteses", func() {
		tokens, err := lexer.NovoLexer("(add1 5)").Tokenizar()
		Expect(err).NotTo(HaveOccurred())
		Expect(tokens[0].EParenteses()).To(BeTrue())
		Expect(tokens[1].EAtomo()).To(BeTrue())
		Expect(tokens[1].ENumero()).To(BeFalse())
		Expect(tokens[2].ENumero()).To(BeTrue())
		Expect(tokens[3].EAtomo()).To(BeFalse())
	})

	Describe("ValidarExpressao", func() {
		validar := func(entrada string) error {
			l := lexer.NovoLexer(entrada)
			tokens, err := l.Tokenizar()
			Expect(err).NotTo(HaveOccurred())
			return l.ValidarExpressao(tokens)
		}

		It("aceita parênteses balanceados", func() {
			Expect(validar("(add1 (sub1 5))")).To(Succeed())
		})

		It("rejeita entrada vazia", func() {
			err := validar("   ; só comentário")
			Expect(err).To(MatchError(ContainSubstring("expressão vazia")))
		})

		It("rejeita ')' extra", func() {
			err := validar("(add1 5))")
			Expect(err).To(MatchError(ContainSubstring("')' extra")))
		})

		It("rejeita '(' sem fechamento", func() {
			err := validar("(add1 (sub1 5)")
			Expect(err).To(MatchError(ContainSubstring("1 '(' sem ')'")))
			Expect(utils.EhTipo(err, utils.ERRO_LEXICO)).To(BeTrue())
		})
	})

	It("imprime os tokens em tabela", func() {
		tokens, err := lexer.NovoLexer("(add1 5)").Tokenizar()
		Expect(err).NotTo(HaveOccurred())

		var saida bytes.Buffer
		lexer.ImprimirTokens(&saida, tokens)
		Expect(saida.String()).To(ContainSubstring("LPAREN"))
		Expect(saida.String()).To(ContainSubstring("add1"))
		Expect(saida.String()).NotTo(ContainSubstring("EOF"))
	})
})
