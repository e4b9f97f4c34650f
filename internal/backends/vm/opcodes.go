package vm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/khevencolino/Adder/internal/utils"
)

type OpCode byte

const (
	OP_MOV OpCode = iota // MOV rax, imediato
	OP_ADD               // ADD rax, imediato
	OP_SUB               // SUB rax, imediato
	OP_NEG               // NEG rax
)

type Instruction struct {
	OpCode  OpCode
	Operand int64
	Line    int    // para debug
	Texto   string // linha original
}

func (op OpCode) String() string {
	switch op {
	case OP_MOV:
		return "MOV"
	case OP_ADD:
		return "ADD"
	case OP_SUB:
		return "SUB"
	case OP_NEG:
		return "NEG"
	default:
		return "UNKNOWN"
	}
}

// operandos esperados por mnemônico, sem contar o registrador de destino
var mnemonicos = map[string]struct {
	op         OpCode
	imediatoOk bool
}{
	"mov": {OP_MOV, true},
	"add": {OP_ADD, true},
	"sub": {OP_SUB, true},
	"neg": {OP_NEG, false},
}

// Decodificar interpreta uma linha de assembly no formato emitido pelo gerador,
// por exemplo "mov rax, 5" ou "neg rax"
func Decodificar(linha string, numero int) (Instruction, error) {
	texto := strings.TrimSpace(linha)
	campos := strings.Fields(strings.ReplaceAll(texto, ",", " , "))
	if len(campos) == 0 {
		return Instruction{}, erroDecodificacao("instrução vazia", numero, linha)
	}

	mnemonico := strings.ToLower(campos[0])
	definicao, ok := mnemonicos[mnemonico]
	if !ok {
		return Instruction{}, erroDecodificacao(fmt.Sprintf("mnemônico não suportado '%s'", campos[0]), numero, linha)
	}

	if len(campos) < 2 || strings.ToLower(campos[1]) != "rax" {
		return Instruction{}, erroDecodificacao("somente o registrador rax é suportado", numero, linha)
	}

	instrucao := Instruction{OpCode: definicao.op, Line: numero, Texto: texto}

	if !definicao.imediatoOk {
		if len(campos) != 2 {
			return Instruction{}, erroDecodificacao(fmt.Sprintf("%s não recebe operando", mnemonico), numero, linha)
		}
		return instrucao, nil
	}

	if len(campos) != 4 || campos[2] != "," {
		return Instruction{}, erroDecodificacao(fmt.Sprintf("esperado '%s rax, <imediato>'", mnemonico), numero, linha)
	}

	imediato, err := strconv.ParseInt(campos[3], 10, 32)
	if err != nil {
		return Instruction{}, erroDecodificacao(fmt.Sprintf("imediato inválido '%s'", campos[3]), numero, linha)
	}
	instrucao.Operand = imediato
	return instrucao, nil
}

// DecodificarPrograma decodifica todas as linhas, ignorando linhas em branco
func DecodificarPrograma(linhas []string) ([]Instruction, error) {
	instrucoes := make([]Instruction, 0, len(linhas))
	for i, linha := range linhas {
		if strings.TrimSpace(linha) == "" {
			continue
		}
		instrucao, err := Decodificar(linha, i+1)
		if err != nil {
			return nil, err
		}
		instrucoes = append(instrucoes, instrucao)
	}
	return instrucoes, nil
}

func erroDecodificacao(mensagem string, numero int, linha string) error {
	return utils.NovoErroTipado(utils.ERRO_EXECUCAO, mensagem, numero, 1, strings.TrimSpace(linha))
}
