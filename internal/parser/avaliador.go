package parser

// Avaliador calcula o valor de uma expressão diretamente sobre a árvore,
// com a mesma aritmética de 32 bits (com wraparound) da máquina alvo
type Avaliador struct{}

// NovoAvaliador cria um novo avaliador
func NovoAvaliador() *Avaliador {
	return &Avaliador{}
}

// Avaliar executa uma expressão e retorna o resultado
func (a *Avaliador) Avaliar(expressao Expressao) int32 {
	return expressao.Aceitar(a).(int32)
}

// Constante implementa visitor para constantes
func (a *Avaliador) Constante(constante *Constante) interface{} {
	return constante.Valor
}

func (a *Avaliador) Incremento(incremento *Incremento) interface{} {
	return a.Avaliar(incremento.Operando) + 1
}

func (a *Avaliador) Decremento(decremento *Decremento) interface{} {
	return a.Avaliar(decremento.Operando) - 1
}

func (a *Avaliador) Negacao(negacao *Negacao) interface{} {
	return -a.Avaliar(negacao.Operando)
}
