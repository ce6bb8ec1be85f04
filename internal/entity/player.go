package entity

const (
	StrategyHuman     = "human"
	StrategyMinimax   = "minimax"
	StrategyAlphaBeta = "alphabeta"
)

type Player struct {
	Mark     string
	Strategy string
}
