package demo

const (
	rngModulus    = 2147483647
	rngMultiplier = 16807
)

// rng é o gerador Park-Miller, determinístico para que a loja de demonstração
// gere sempre os mesmos dados
type rng struct {
	state int64
}

func newRNG(seed int64) *rng {
	return &rng{state: seed}
}

// next retorna um valor em [0, 1)
func (r *rng) next() float64 {
	r.state = (r.state * rngMultiplier) % rngModulus
	return float64(r.state-1) / float64(rngModulus-1)
}
