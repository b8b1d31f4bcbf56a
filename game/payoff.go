package game

// Payoff returns the round rewards for both players given their moves.
//
//	            cooperate  defect
//	cooperate     (2,2)    (0,3)
//	defect        (3,0)    (1,1)
func Payoff(m0, m1 Move) (int, int) {
	switch {
	case m0 == Cooperate && m1 == Cooperate:
		return 2, 2
	case m0 == Cooperate && m1 == Defect:
		return 0, 3
	case m0 == Defect && m1 == Cooperate:
		return 3, 0
	default:
		return 1, 1
	}
}
