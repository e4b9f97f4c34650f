package utils

import (
	"os"
	"path/filepath"
)

// LerArquivo lê o programa fonte e retorna seu conteúdo
func LerArquivo(nomeArquivo string) (string, error) {
	bytesConteudo, err := os.ReadFile(nomeArquivo)
	if err != nil {
		return "", NovoErroTipado(ERRO_ARQUIVO, "erro ao ler arquivo", 0, 0, err.Error())
	}
	return string(bytesConteudo), nil
}

// EscreverArquivo escreve o conteúdo gerado, criando o diretório se preciso.
// O arquivo é escrito num temporário ao lado do destino e renomeado,
// então uma falha no meio não deixa um .s pela metade.
func EscreverArquivo(nomeArquivo string, conteudo string) error {
	diretorio := filepath.Dir(nomeArquivo)
	if err := os.MkdirAll(diretorio, 0755); err != nil {
		return NovoErroTipado(ERRO_ARQUIVO, "erro ao criar diretório", 0, 0, err.Error())
	}

	temporario, err := os.CreateTemp(diretorio, ".adder-*")
	if err != nil {
		return NovoErroTipado(ERRO_ARQUIVO, "erro ao escrever arquivo", 0, 0, err.Error())
	}
	defer os.Remove(temporario.Name())

	if _, err := temporario.WriteString(conteudo); err != nil {
		temporario.Close()
		return NovoErroTipado(ERRO_ARQUIVO, "erro ao escrever arquivo", 0, 0, err.Error())
	}
	if err := temporario.Chmod(0644); err != nil {
		temporario.Close()
		return NovoErroTipado(ERRO_ARQUIVO, "erro ao escrever arquivo", 0, 0, err.Error())
	}
	if err := temporario.Close(); err != nil {
		return NovoErroTipado(ERRO_ARQUIVO, "erro ao escrever arquivo", 0, 0, err.Error())
	}

	if err := os.Rename(temporario.Name(), nomeArquivo); err != nil {
		return NovoErroTipado(ERRO_ARQUIVO, "erro ao escrever arquivo", 0, 0, err.Error())
	}
	return nil
}
