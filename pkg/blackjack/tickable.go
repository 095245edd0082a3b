package blackjack

import "time"

// Interval is how long the run loop should wait between Tick calls
func (g *Game) Interval() time.Duration {
	return g.options.TickInterval
}

// Tick advances the time-based transitions and returns the drained sink.
// The caller supplies the current time so the transitions stay testable.
// Must only be called from the goroutine that owns the game.
func (g *Game) Tick(now time.Time) []*Message {
	if g.lastAmbient.IsZero() {
		g.lastAmbient = now
	}

	if g.IsDealerTurn() {
		g.logMessage("%s's turn", g.dealer)
		// the guard above satisfies DealerTurn's preconditions
		_ = g.DealerTurn()
	}

	if !g.HandInProgress() {
		if g.idleSince.IsZero() {
			g.idleSince = now
		} else if now.Sub(g.idleSince) >= g.options.TimeBetweenHands {
			g.idleSince = time.Time{}
			// ErrNoPlayers restarts the idle wait; with a full deck and a
			// bounded seat count the deal itself cannot fail
			_ = g.StartHand()
		}
	}

	if now.Sub(g.lastAmbient) >= g.options.AmbientPeriod {
		g.logMessage("The dealer clears his throat.")
		g.lastAmbient = now
	}

	return g.Drain()
}
