package blackjack

import (
	"strings"
	"time"

	"saloon-blackjack-server/internal/rng"
	"saloon-blackjack-server/pkg/deck"
)

// seatsLimit bounds the table so a single hand can never exhaust the deck
const seatsLimit = 7

// noTurn is the turnIndex value when no hand is in progress
const noTurn = -1

// Game is a single blackjack table.
// None of the methods are safe for concurrent use: exactly one goroutine may
// own a Game and call its methods (see pkg/room for the run loop that does).
type Game struct {
	options Options
	deck    *deck.Deck
	dealer  *Participant

	// participants seated in turn order for the current hand
	participants []*Participant

	// players who sat down mid-hand; merged into participants at the next deal
	waiting []*Participant

	// seated players who asked to leave mid-hand; removed at the next deal
	departing map[string]bool

	// noTurn when idle, 0..n-1 for player turns, n for the dealer's turn
	turnIndex int

	messages []*Message

	// when the table last became idle; zero while a hand is being played
	idleSince time.Time

	// when the last ambient message was emitted
	lastAmbient time.Time
}

// NewGame returns a new blackjack table with a freshly shuffled deck
func NewGame(options Options) (*Game, error) {
	if options.MaxSeats <= 0 || options.MaxSeats > seatsLimit {
		return nil, SeatCountError(options.MaxSeats)
	}

	if options.TickInterval <= 0 || options.TimeBetweenHands <= 0 || options.AmbientPeriod <= 0 {
		return nil, ErrBadCadence
	}

	if options.Rand == nil {
		options.Rand = rng.Crypto{}
	}

	d := deck.New()
	d.Shuffle(options.Rand)

	return &Game{
		options:   options,
		deck:      d,
		dealer:    newDealer(),
		departing: make(map[string]bool),
		turnIndex: noTurn,
	}, nil
}

// Seat adds the named player to the waiting list; they join play at the next
// hand so the current hand's turn order stays stable.
func (g *Game) Seat(name string) error {
	if strings.TrimSpace(name) == "" || name == dealerName {
		return ErrPlayerNotFound
	}

	if p := g.findSeated(name); p != nil {
		if g.departing[name] {
			delete(g.departing, name)
			g.logMessage("%s decides to stay at the table.", p)
			return nil
		}

		return ErrAlreadySeated
	}

	if g.findWaiting(name) != nil {
		return ErrAlreadySeated
	}

	if len(g.participants)+len(g.waiting) >= g.options.MaxSeats {
		return ErrTableFull
	}

	p := newParticipant(name)
	g.waiting = append(g.waiting, p)
	g.logMessage("%s sits down and will join the next hand.", p)

	return nil
}

// Leave removes the named player from the table. A player in the middle of a
// hand is removed at the next hand boundary, mirroring how joins work.
func (g *Game) Leave(name string) error {
	for i, p := range g.waiting {
		if p.Name == name {
			g.waiting = append(g.waiting[:i], g.waiting[i+1:]...)
			g.logMessage("%s leaves the table.", p)
			return nil
		}
	}

	p := g.findSeated(name)
	if p == nil {
		return ErrPlayerNotFound
	}

	if !g.HandInProgress() {
		// any cards still held from the last hand go back to the deck
		g.deck.ReturnAll(&p.hand)
		g.removeSeated(name)
		g.logMessage("%s leaves the table.", p)
		return nil
	}

	if !g.departing[name] {
		g.departing[name] = true
		g.logMessage("%s will leave after this hand.", p)
	}

	return nil
}

// StartHand deals a new hand: departures and the waiting list are applied,
// every hand is reclaimed into the deck, the deck is reshuffled, the dealer is
// dealt two cards (up-card announced), and each player is dealt two cards.
// A dealer two-card 21 settles the hand immediately without any player turns.
func (g *Game) StartHand() error {
	if g.HandInProgress() {
		return ErrHandInProgress
	}

	g.deck.ReturnAll(&g.dealer.hand)
	for _, p := range g.participants {
		g.deck.ReturnAll(&p.hand)
	}

	if len(g.departing) > 0 {
		remaining := make([]*Participant, 0, len(g.participants))
		for _, p := range g.participants {
			if g.departing[p.Name] {
				g.logMessage("%s leaves the table.", p)
				continue
			}

			remaining = append(remaining, p)
		}

		g.participants = remaining
		g.departing = make(map[string]bool)
	}

	g.participants = append(g.participants, g.waiting...)
	g.waiting = nil

	if len(g.participants) == 0 {
		return ErrNoPlayers
	}

	g.deck.Shuffle(g.options.Rand)

	g.logMessage("New hand started.")
	names := make([]string, len(g.participants))
	for i, p := range g.participants {
		names[i] = p.String()
	}
	g.logMessage("Players: %s", strings.Join(names, ", "))

	if err := g.deck.Deal(&g.dealer.hand, 2); err != nil {
		return err
	}
	g.logMessage("%s shows %s", g.dealer, g.dealer.hand.FirstCard().Name())

	if g.dealer.Score() == target {
		g.logMessage("%s reveals %s. Dealer wins.", g.dealer, g.dealer.hand.LastCard().Name())
		g.settle()
		return nil
	}

	for _, p := range g.participants {
		if err := g.deck.Deal(&p.hand, 2); err != nil {
			return err
		}
		g.logMessage("%s has %s", p, p.hand)
	}

	g.turnIndex = 0
	return nil
}

// Hit deals the named player one card. Going over 21 or reaching exactly 21
// ends the player's turn; otherwise they may act again.
func (g *Game) Hit(name string) error {
	p, err := g.turnParticipant(name)
	if err != nil {
		return err
	}

	if err := g.deck.Deal(&p.hand, 1); err != nil {
		return err
	}

	g.logMessage("%s is dealt %s", p, p.hand.LastCard().Name())
	g.logMessage("%s has %s", p, p.hand)

	switch score := p.Score(); {
	case score > target:
		g.logMessage("%s busts.", p)
		g.advanceTurn()
	case score == target:
		g.logMessage("%s has 21.", p)
		g.advanceTurn()
	}

	return nil
}

// Stand ends the named player's turn
func (g *Game) Stand(name string) error {
	p, err := g.turnParticipant(name)
	if err != nil {
		return err
	}

	g.logMessage("%s stands.", p)
	g.advanceTurn()

	return nil
}

// DealerTurn plays out the dealer's hand: draw to 17 or better, then settle
// every player against the dealer's score.
func (g *Game) DealerTurn() error {
	if !g.HandInProgress() {
		return ErrNoHandInProgress
	}

	if g.IsPlayerTurn() {
		return ErrPlayersStillToAct
	}

	g.logMessage("%s flips over the second card: %s", g.dealer, g.dealer.hand.LastCard().Name())

	for g.dealer.Score() < dealerStandScore {
		if err := g.deck.Deal(&g.dealer.hand, 1); err != nil {
			// deck ran dry; the dealer plays what they hold
			break
		}

		g.logMessage("%s is dealt %s", g.dealer, g.dealer.hand.LastCard().Name())
	}

	switch score := g.dealer.Score(); {
	case score == target:
		g.logMessage("%s has 21.", g.dealer)
	case score > target:
		g.logMessage("%s busts.", g.dealer)
	default:
		g.logMessage("%s stands.", g.dealer)
	}

	g.settle()
	return nil
}

// settle compares every player against the dealer, emits one outcome message
// per player, and returns the table to idle
func (g *Game) settle() {
	g.logMessage("End of hand.")

	dealerScore := g.dealer.Score()
	g.logMessage("%s has %d.", g.dealer, dealerScore)

	for _, p := range g.participants {
		score := p.Score()
		if score > target {
			g.logMessage("%s busted out.", p)
			continue
		}

		g.logMessage("%s has %d.", p, score)
		switch {
		case dealerScore > target || score > dealerScore:
			g.logMessage("%s wins.", p)
		case score == dealerScore:
			g.logMessage("%s ties with dealer.", p)
		default:
			g.logMessage("%s loses.", p)
		}
	}

	g.turnIndex = noTurn
}

// advanceTurn hands play to the next seat; past the last seat it's the dealer's turn
func (g *Game) advanceTurn() {
	g.turnIndex++
}

// turnParticipant validates that it's the named player's turn
func (g *Game) turnParticipant(name string) (*Participant, error) {
	if !g.HandInProgress() {
		return nil, ErrNoHandInProgress
	}

	if !g.IsPlayerTurn() {
		return nil, ErrNotPlayersTurn
	}

	p := g.participants[g.turnIndex]
	if p.Name != name {
		return nil, ErrNotPlayersTurn
	}

	return p, nil
}

// HandInProgress returns true if a hand is being played
func (g *Game) HandInProgress() bool {
	return g.turnIndex != noTurn
}

// IsPlayerTurn returns true if a seated player is up
func (g *Game) IsPlayerTurn() bool {
	return g.turnIndex != noTurn && g.turnIndex < len(g.participants)
}

// IsDealerTurn returns true if every player has acted and the dealer is up
func (g *Game) IsDealerTurn() bool {
	return g.turnIndex == len(g.participants) && g.turnIndex != noTurn
}

// WhoseTurn returns the name of the participant who is up, or the empty
// string when no hand is in progress
func (g *Game) WhoseTurn() string {
	switch {
	case g.IsPlayerTurn():
		return g.participants[g.turnIndex].Name
	case g.IsDealerTurn():
		return g.dealer.Name
	}

	return ""
}

// HandOf returns a copy of the named player's cards
func (g *Game) HandOf(name string) (deck.Hand, error) {
	if p := g.findSeated(name); p != nil {
		return p.Hand(), nil
	}

	if p := g.findWaiting(name); p != nil {
		return p.Hand(), nil
	}

	return nil, ErrPlayerNotFound
}

func (g *Game) findSeated(name string) *Participant {
	for _, p := range g.participants {
		if p.Name == name {
			return p
		}
	}

	return nil
}

func (g *Game) findWaiting(name string) *Participant {
	for _, p := range g.waiting {
		if p.Name == name {
			return p
		}
	}

	return nil
}

func (g *Game) removeSeated(name string) {
	for i, p := range g.participants {
		if p.Name == name {
			g.participants = append(g.participants[:i], g.participants[i+1:]...)
			return
		}
	}
}
