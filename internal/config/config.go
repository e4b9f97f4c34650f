package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/khevencolino/Adder/internal/backends/assembly/x86_64"
)

// Chaves de configuração; também são os nomes das flags
const (
	ChaveBackend = "backend"
	ChaveArch    = "arch"
	ChaveSaida   = "saida"
	ChaveSimbolo = "simbolo"
	ChaveDebug   = "debug"
)

// Configuracao é o resultado da mesclagem de padrões, arquivo, ambiente e flags
type Configuracao struct {
	Backend      string
	Arch         string
	ArquivoSaida string
	Simbolo      string
	Debug        bool
	ArquivoUsado string // Arquivo de configuração lido, se houver
}

// RegistrarFlags declara as flags que podem sobrescrever a configuração
func RegistrarFlags(flags *pflag.FlagSet) {
	flags.String(ChaveBackend, "assembly", "Backend a ser usado (assembly, interpreter, vm)")
	flags.String(ChaveArch, "x86_64", "Arquitetura para assembly (x86_64)")
	flags.StringP(ChaveSaida, "o", x86_64.ArquivoSaidaPadrao, "Arquivo .s de saída")
	flags.String(ChaveSimbolo, x86_64.SimboloPadrao, "Rótulo exportado no assembly")
	flags.Bool(ChaveDebug, false, "Ativar mensagens de debug")
}

// Carregar monta a configuração. Prioridade: flags alteradas, ambiente (ADDER_*),
// arquivo (arquivoConfig, ou adder.yaml no diretório atual) e por fim os padrões.
func Carregar(flags *pflag.FlagSet, arquivoConfig string) (*Configuracao, error) {
	v := viper.New()

	v.SetDefault(ChaveBackend, "assembly")
	v.SetDefault(ChaveArch, "x86_64")
	v.SetDefault(ChaveSaida, x86_64.ArquivoSaidaPadrao)
	v.SetDefault(ChaveSimbolo, x86_64.SimboloPadrao)
	v.SetDefault(ChaveDebug, false)

	v.SetEnvPrefix("ADDER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("erro ao associar flags: %w", err)
		}
	}

	if arquivoConfig != "" {
		v.SetConfigFile(arquivoConfig)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("erro ao ler configuração %s: %w", arquivoConfig, err)
		}
	} else {
		v.SetConfigName("adder")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var naoEncontrado viper.ConfigFileNotFoundError
			if !errors.As(err, &naoEncontrado) {
				return nil, fmt.Errorf("erro ao ler configuração: %w", err)
			}
		}
	}

	return &Configuracao{
		Backend:      v.GetString(ChaveBackend),
		Arch:         v.GetString(ChaveArch),
		ArquivoSaida: v.GetString(ChaveSaida),
		Simbolo:      v.GetString(ChaveSimbolo),
		Debug:        v.GetBool(ChaveDebug),
		ArquivoUsado: v.ConfigFileUsed(),
	}, nil
}
