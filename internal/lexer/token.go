package lexer

import "fmt"

// TokenType representa o tipo de token de uma expressão S
type TokenType int

const (
	NUMBER     TokenType = iota // Literal inteiro: 5, -12, +7
	SYMBOL                      // Identificador: add1, sub1, negate
	LPAREN                      // Parêntese esquerdo (()
	RPAREN                      // Parêntese direito ())
	COMMENT                     // Comentário: ; até o fim da linha
	WHITESPACE                  // Espaços em branco
	EOF                         // Fim do arquivo
	INVALID                     // Token inválido
)

// String retorna uma representação em string do tipo de token
func (t TokenType) String() string {
	switch t {
	case NUMBER:
		return "NUMBER"
	case SYMBOL:
		return "SYMBOL"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case WHITESPACE:
		return "WHITESPACE"
	case COMMENT:
		return "COMMENT"
	case EOF:
		return "EOF"
	case INVALID:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}

// Token representa um token encontrado no código fonte
type Token struct {
	Type     TokenType // Tipo do token
	Value    string    // Valor do token
	Position Position  // Posição no código fonte
}

// String retorna uma representação em string do token
func (t Token) String() string {
	return fmt.Sprintf("%s('%s') em %s", t.Type, t.Value, t.Position)
}

// NovoToken cria um novo token
func NovoToken(tipoToken TokenType, valor string, posicao Position) Token {
	return Token{
		Type:     tipoToken,
		Value:    valor,
		Position: posicao,
	}
}

// EAtomo verifica se o token é um átomo (número ou símbolo)
func (t Token) EAtomo() bool {
	return t.Type == NUMBER || t.Type == SYMBOL
}

// ENumero verifica se o token é um número
func (t Token) ENumero() bool {
	return t.Type == NUMBER
}

// EParenteses verifica se o token é um parêntese
func (t Token) EParenteses() bool {
	return t.Type == LPAREN || t.Type == RPAREN
}
