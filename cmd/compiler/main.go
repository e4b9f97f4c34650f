package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/khevencolino/Adder/internal/compiler"
	"github.com/khevencolino/Adder/internal/config"
	"github.com/khevencolino/Adder/internal/debug"
)

func main() {
	saida := bufio.NewWriter(os.Stdout)
	atexit.Register(func() {
		saida.Flush()
	})

	atexit.Exit(executar(os.Args[1:], saida, os.Stderr))
}

// executar roda o comando e devolve o código de saída do processo
func executar(args []string, saida *bufio.Writer, erros io.Writer) int {
	cmd := novoComandoRaiz(saida)
	cmd.SetArgs(args)
	cmd.SetErr(erros)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(erros, "Erro de compilação: %v\n", err)
		return 1
	}
	return 0
}

func novoComandoRaiz(saida *bufio.Writer) *cobra.Command {
	var arquivoConfig string

	cmd := &cobra.Command{
		Use:   "adder [flags] <arquivo> [saida.s]",
		Short: "Compilador Adder: expressões S para assembly x86-64",
		Long: `Compila um programa Adder (um inteiro de 32 bits ou (add1 e), (sub1 e),
(negate e) aninhados) para assembly NASM x86-64 com o resultado em rax.

BACKENDS DISPONÍVEIS:

assembly, asm, native
    - Gera o arquivo .s com o símbolo our_code_starts_here

interpreter, interp, ast
    - Mostra a árvore sintática e avalia direto da AST

vm, emulador, emu
    - Gera as instruções e as executa num emulador do acumulador

As opções podem vir de adder.yaml (ou --config), de variáveis ADDER_*
ou das flags, nesta ordem crescente de prioridade.`,
		Example: `  adder programa.snek                         # Assembly em result/programa.s
  adder -o saida.s programa.snek              # Assembly em saida.s
  adder programa.snek saida.s                 # Idem, saída posicional
  adder --backend=interpreter programa.snek   # Interpretação direta
  adder --backend=vm --debug programa.snek    # Emulador com rastro`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Carregar(cmd.Flags(), arquivoConfig)
			if err != nil {
				return err
			}

			// O segundo argumento posicional tem precedência sobre --saida
			if len(args) == 2 {
				cfg.ArquivoSaida = args[1]
			}

			debug.Enabled = cfg.Debug
			debug.Saida = saida
			if cfg.ArquivoUsado != "" {
				debug.Printf("Configuração lida de %s\n", cfg.ArquivoUsado)
			}

			resultado, err := compiler.NovoCompilador().CompilarArquivo(compiler.Opcoes{
				ArquivoEntrada: args[0],
				ArquivoSaida:   cfg.ArquivoSaida,
				Backend:        cfg.Backend,
				Arch:           cfg.Arch,
				Simbolo:        cfg.Simbolo,
				Saida:          saida,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(saida, resultado.Message)
			return nil
		},
	}

	config.RegistrarFlags(cmd.Flags())
	cmd.Flags().StringVar(&arquivoConfig, "config", "", "Arquivo de configuração (padrão: ./adder.yaml)")

	return cmd
}
