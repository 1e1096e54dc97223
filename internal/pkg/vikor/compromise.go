package vikor

// SelectCompromise applies the two VIKOR acceptance conditions to the
// rankings.
//
//	C1 acceptable advantage: Q(A2) - Q(A1) >= DQ, DQ = 1 / (m - 1)
//	C2 acceptable stability: A1 is also first by S or by R
//
// Both met: {A1}. Only C1: {A1, A2}. C1 not met: every alternative X in Q
// order with Q(X) - Q(A1) < DQ.
//
// With a single alternative DQ is infinite, so C1 is not met. DQ is reported
// as 0 and the sole alternative is the compromise.
func SelectCompromise(byS, byR, byQ []RankedAlternative) Compromise {
	m := len(byQ)
	if m == 0 {
		return Compromise{Set: []RankedAlternative{}}
	}

	a1 := byQ[0]
	if m == 1 {
		return Compromise{
			AcceptableAdvantage: false,
			AcceptableStability: true,
			Set:                 []RankedAlternative{a1},
		}
	}

	a2 := byQ[1]
	dq := 1 / float64(m-1)
	adv := a2.Q - a1.Q

	c := Compromise{
		Advantage:           adv,
		Threshold:           dq,
		AcceptableAdvantage: adv >= dq,
		AcceptableStability: byS[0].AltIndex == a1.AltIndex || byR[0].AltIndex == a1.AltIndex,
	}

	switch {
	case c.AcceptableAdvantage && c.AcceptableStability:
		c.Set = []RankedAlternative{a1}
	case c.AcceptableAdvantage:
		c.Set = []RankedAlternative{a1, a2}
	default:
		c.Set = filterWithinThreshold(byQ, a1.Q, dq)
	}

	return c
}

func filterWithinThreshold(byQ []RankedAlternative, best, dq float64) []RankedAlternative {
	set := make([]RankedAlternative, 0, len(byQ))
	for _, alt := range byQ {
		if alt.Q-best >= dq {
			continue
		}
		set = append(set, alt)
	}

	return set
}
