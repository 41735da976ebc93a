package game

// StandardRules returns the tournament rules with the standard eleven-piece hand.
func StandardRules() RuleSet {
	return RuleSet{
		QueenDeadline:       4,
		QueenBeforeMovement: true,
		IsolatedPlacement:   true,
		Reserve: map[string]int{
			Queen.String():       1,
			Ant.String():         3,
			Beetle.String():      2,
			Grasshopper.String(): 3,
			Spider.String():      2,
		},
	}
}

// FreeRules returns the standard hand without opening or placement restrictions.
func FreeRules() RuleSet {
	r := StandardRules()
	r.QueenDeadline = 0
	r.QueenBeforeMovement = false
	r.IsolatedPlacement = false
	return r
}
