package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
)

var Enabled bool = false

// Saida recebe as mensagens de debug
var Saida io.Writer = os.Stdout

func Printf(format string, args ...interface{}) {
	if Enabled {
		fmt.Fprintf(Saida, format, args...)
	}
}

func Println(args ...interface{}) {
	if Enabled {
		fmt.Fprintln(Saida, args...)
	}
}

// Tabela imprime linhas em formato tabular quando o debug está ativo
func Tabela(cabecalho table.Row, linhas []table.Row) {
	if !Enabled {
		return
	}
	ImprimirTabela(Saida, cabecalho, linhas)
}

// ImprimirTabela imprime uma tabela em w independente do modo debug
func ImprimirTabela(w io.Writer, cabecalho table.Row, linhas []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(cabecalho)
	t.AppendRows(linhas)
	t.Render()
}
