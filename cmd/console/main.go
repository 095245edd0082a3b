package main

import (
	"bufio"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"saloon-blackjack-server/internal/config"
	"saloon-blackjack-server/internal/util"
	"saloon-blackjack-server/pkg/blackjack"
)

// console plays a single-seat game against the dealer in the terminal
func main() {
	flag.Parse()

	game, err := blackjack.NewGame(config.Instance().GameOptions())
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	name, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultText("What do they call you, stranger?").
		WithDefaultValue(util.GetRandomName()).
		Show()
	name = strings.TrimSpace(name)

	pterm.Println()
	pterm.Info.Printfln("Pull up a chair, %s. Type \"help\" for the house rules.", name)

	if err := game.Seat(name); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	printMessages(game.Drain())

	commands := make(chan string)
	go readCommands(commands)

	ticker := time.NewTicker(game.Interval())
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			printMessages(game.Tick(now))
		case line, ok := <-commands:
			if !ok || !handleCommand(game, name, line) {
				_ = game.Leave(name)
				printMessages(game.Drain())
				pterm.Println("The dealer tips his hat as you head for the door.")
				return
			}

			printMessages(game.Drain())
		}
	}
}

func readCommands(commands chan<- string) {
	defer close(commands)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		commands <- scanner.Text()
	}
}

// handleCommand runs one console command and reports whether to keep playing
func handleCommand(game *blackjack.Game, name, line string) bool {
	var err error
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
	case "hit", "h":
		err = game.Hit(name)
	case "stand", "s":
		err = game.Stand(name)
	case "hand":
		printHand(game, name)
	case "table":
		printTable(game)
	case "help", "?":
		printHelp()
	case "quit", "q", "leave":
		return false
	default:
		pterm.Warning.Printfln("The dealer squints at you. Type \"help\" if you're lost.")
	}

	if err != nil {
		pterm.Error.Println(err)
	}

	return true
}

func printMessages(messages []*blackjack.Message) {
	for _, m := range messages {
		pterm.Println(m.Message)
	}
}

func printHand(game *blackjack.Game, name string) {
	hand, err := game.HandOf(name)
	if err != nil {
		pterm.Error.Println(err)
		return
	}

	if len(hand) == 0 {
		pterm.Println("You have no cards yet.")
		return
	}

	pterm.Printfln("Your hand: %s (%d)", hand, blackjack.Score(hand))
}

func printTable(game *blackjack.Game) {
	state := game.State()

	if up := state.DealerUpCard; up != nil {
		pterm.Printfln("Dealer shows %s", up)
	}

	for _, p := range state.Participants {
		marker := " "
		if state.HandInProgress && p.Name == state.CurrentTurn {
			marker = "*"
		}

		cards := make([]string, len(p.Cards))
		for i, c := range p.Cards {
			cards[i] = c.String()
		}

		pterm.Printfln("%s %s: %s (%d)", marker, p.Name, strings.Join(cards, " "), p.Score)
	}

	for _, w := range state.Waiting {
		pterm.Printfln("  %s is waiting for the next hand", w)
	}

	pterm.Printfln("%d cards left in the deck", state.CardsLeft)
}

func printHelp() {
	pterm.Println("hit    take another card")
	pterm.Println("stand  end your turn")
	pterm.Println("hand   show your cards")
	pterm.Println("table  show the whole table")
	pterm.Println("quit   leave the table")
}
