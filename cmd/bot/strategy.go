package main

import "github.com/wricardo/corridor/game/engine"

// Strategy picks the next move for the player to act
type Strategy interface {
	Name() string
	// NextMove reports false when the player has nothing to play
	NextMove(rules *engine.Rules, h engine.History) (engine.Move, bool)
}

// RaceStrategy never places walls; it always steps along a shortest route
type RaceStrategy struct{}

func (RaceStrategy) Name() string { return "race" }

func (RaceStrategy) NextMove(rules *engine.Rules, h engine.History) (engine.Move, bool) {
	s, ok := rules.GreedyPawnMove(h)
	if !ok {
		return engine.Move{}, false
	}
	return engine.NewPawnMove(s), true
}

// BlockingStrategy races like RaceStrategy while it is ahead. Once the
// opponent is at least as close to its goal, it places the wall that
// lengthens the opponent's route the most relative to its own, as long as
// the wall gains something and leaves its own pawn a route.
type BlockingStrategy struct{}

func (BlockingStrategy) Name() string { return "blocking" }

func (BlockingStrategy) NextMove(rules *engine.Rules, h engine.History) (engine.Move, bool) {
	player := h.NextPlayer()
	opponent := 1 - player

	mine := distance(rules, h, player)
	theirs := distance(rules, h, opponent)

	if theirs <= mine {
		if w, ok := bestWall(rules, h, player, mine, theirs); ok {
			return engine.NewWallMove(w), true
		}
	}
	return RaceStrategy{}.NextMove(rules, h)
}

// bestWall returns the legal wall with the highest positive gain, the
// first one found winning ties
func bestWall(rules *engine.Rules, h engine.History, player, mine, theirs int) (engine.Wall, bool) {
	opponent := 1 - player
	best, bestGain, found := engine.Wall{}, 0, false

	for _, w := range rules.LegalWallMoves(h) {
		next := h.Append(engine.NewWallMove(w))

		myDist, ok := rules.DistanceToGoal(next, player)
		if !ok {
			continue
		}
		gain := (distance(rules, next, opponent) - theirs) - (myDist - mine)
		if gain > bestGain {
			best, bestGain, found = w, gain, true
		}
	}
	return best, found
}

func distance(rules *engine.Rules, h engine.History, player int) int {
	d, ok := rules.DistanceToGoal(h, player)
	if !ok {
		return engine.UnreachableDistance
	}
	return d
}

func strategyByName(name string) (Strategy, bool) {
	switch name {
	case "race":
		return RaceStrategy{}, true
	case "blocking":
		return BlockingStrategy{}, true
	}
	return nil, false
}
