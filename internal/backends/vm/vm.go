package vm

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/khevencolino/Adder/internal/debug"
	"github.com/khevencolino/Adder/internal/utils"
)

// VM emula o subconjunto de x86-64 que o gerador emite: um acumulador
// de 64 bits (rax) e instruções sem desvio
type VM struct {
	rax int64
	pc  int // program counter
}

func NewVM() *VM {
	return &VM{}
}

func (vm *VM) Execute(instructions []Instruction) error {
	vm.rax = 0
	vm.pc = 0

	debug.Printf("📊 Programa decodificado (%d instruções):\n", len(instructions))
	var rastro []table.Row

	for vm.pc < len(instructions) {
		instr := instructions[vm.pc]

		switch instr.OpCode {
		case OP_MOV:
			vm.rax = instr.Operand

		case OP_ADD:
			vm.rax += instr.Operand

		case OP_SUB:
			vm.rax -= instr.Operand

		case OP_NEG:
			vm.rax = -vm.rax

		default:
			return utils.NovoErroTipado(utils.ERRO_EXECUCAO, "opcode desconhecido", instr.Line, 1, instr.OpCode.String())
		}

		if debug.Enabled {
			rastro = append(rastro, table.Row{vm.pc, instr.Texto, vm.rax})
		}
		vm.pc++
	}

	debug.Tabela(table.Row{"PC", "INSTRUÇÃO", "RAX"}, rastro)
	debug.Printf("✅ Execução concluída!\n")
	return nil
}

// Acumulador devolve o conteúdo completo de rax
func (vm *VM) Acumulador() int64 {
	return vm.rax
}

// Resultado devolve os 32 bits baixos de rax, o valor da expressão
func (vm *VM) Resultado() int32 {
	return int32(vm.rax)
}

// Executar decodifica e executa as linhas de assembly, devolvendo o resultado
func Executar(linhas []string) (int32, error) {
	instrucoes, err := DecodificarPrograma(linhas)
	if err != nil {
		return 0, err
	}

	maquina := NewVM()
	if err := maquina.Execute(instrucoes); err != nil {
		return 0, err
	}
	return maquina.Resultado(), nil
}
