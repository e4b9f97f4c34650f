package utils

import (
	"errors"
	"fmt"
	"strings"
)

// TipoErro classifica os erros do compilador
type TipoErro int

const (
	ERRO_GENERICO        TipoErro = iota
	ERRO_LEXICO                   // Caractere inválido, parênteses desbalanceados
	ERRO_LEITURA                  // Texto não forma exatamente uma expressão S
	EXPRESSAO_MALFORMADA          // Valor não corresponde a nenhuma produção da gramática
	FORA_DO_INTERVALO             // Literal inteiro fora de 32 bits com sinal
	ERRO_ARQUIVO                  // Falha de leitura/escrita de arquivo
	ERRO_EXECUCAO                 // Falha ao executar instruções no emulador
)

// String retorna o nome do tipo de erro
func (t TipoErro) String() string {
	switch t {
	case ERRO_LEXICO:
		return "erro léxico"
	case ERRO_LEITURA:
		return "erro de leitura"
	case EXPRESSAO_MALFORMADA:
		return "expressão malformada"
	case FORA_DO_INTERVALO:
		return "fora do intervalo"
	case ERRO_ARQUIVO:
		return "erro de arquivo"
	case ERRO_EXECUCAO:
		return "erro de execução"
	default:
		return "erro"
	}
}

// CompilerError representa um erro do compilador com informações de posição
type CompilerError struct {
	Tipo     TipoErro     // Classificação do erro
	Mensagem string       // Mensagem de erro
	Linha    int          // Linha onde ocorreu o erro
	Coluna   int          // Coluna onde ocorreu o erro
	Detalhes string       // Detalhes adicionais do erro
	Trecho   fmt.Stringer // Subexpressão que provocou o erro, se houver
}

// Error implementa a interface error
func (e *CompilerError) Error() string {
	var builder strings.Builder
	builder.WriteString(e.Mensagem)
	if e.Linha > 0 && e.Coluna > 0 {
		builder.WriteString(fmt.Sprintf(" em linha %d, coluna %d", e.Linha, e.Coluna))
	}
	if e.Trecho != nil {
		builder.WriteString(": ")
		builder.WriteString(e.Trecho.String())
	}
	if e.Detalhes != "" {
		builder.WriteString(" (")
		builder.WriteString(e.Detalhes)
		builder.WriteString(")")
	}
	return builder.String()
}

// NovoErro cria um novo erro do compilador
func NovoErro(mensagem string, linha, coluna int, detalhes string) *CompilerError {
	return &CompilerError{
		Tipo:     ERRO_GENERICO,
		Mensagem: mensagem,
		Linha:    linha,
		Coluna:   coluna,
		Detalhes: detalhes,
	}
}

// NovoErroTipado cria um erro já classificado
func NovoErroTipado(tipo TipoErro, mensagem string, linha, coluna int, detalhes string) *CompilerError {
	erro := NovoErro(mensagem, linha, coluna, detalhes)
	erro.Tipo = tipo
	return erro
}

// ComTrecho anexa a subexpressão responsável pelo erro
func (e *CompilerError) ComTrecho(trecho fmt.Stringer) *CompilerError {
	e.Trecho = trecho
	return e
}

// EhTipo verifica se err (ou algum erro embrulhado nele) é um CompilerError do tipo dado
func EhTipo(err error, tipo TipoErro) bool {
	var erroCompilador *CompilerError
	if !errors.As(err, &erroCompilador) {
		return false
	}
	return erroCompilador.Tipo == tipo
}
