package blackjack

import (
	"errors"
	"fmt"
)

// ErrNotPlayersTurn is returned when a player acts out of turn
var ErrNotPlayersTurn = errors.New("not player's turn")

// ErrNoHandInProgress is returned when a play is attempted between hands
var ErrNoHandInProgress = errors.New("no hand in progress")

// ErrHandInProgress is returned when a hand is started while one is being played
var ErrHandInProgress = errors.New("a hand is already in progress")

// ErrAlreadySeated is returned when a player sits down twice
var ErrAlreadySeated = errors.New("player is already sitting down")

// ErrNoPlayers is returned when a hand is started with nobody at the table
var ErrNoPlayers = errors.New("no players are seated")

// ErrPlayerNotFound is returned when a player is not at the table
var ErrPlayerNotFound = errors.New("player not found")

// ErrPlayersStillToAct is returned when the dealer plays before every player acted
var ErrPlayersStillToAct = errors.New("players still have turns")

// ErrTableFull is returned when every seat is taken
var ErrTableFull = errors.New("the table is full")

// ErrBadCadence is returned when a game is created with a non-positive timing option
var ErrBadCadence = errors.New("timing options must be greater than 0")

// SeatCountError is an error on the number of seats at the table
type SeatCountError int

func (s SeatCountError) Error() string {
	return fmt.Sprintf("expected between 1 and %d seats, got %d", seatsLimit, int(s))
}
