package room

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"saloon-blackjack-server/pkg/blackjack"
)

// Table owns a blackjack game and serializes all access to it.
// Clients and the tick timer feed the run loop through channels, so only
// one goroutine ever touches the game.
type Table struct {
	game    *blackjack.Game
	clients map[*Client]bool
	lock    sync.RWMutex

	commands chan command
	close    chan bool
}

type command struct {
	client *Client
	msg    *PayloadIn
}

// NewTable creates a new table with its own shuffled deck
// This is called from a blocking state, so it needs to return quickly
func NewTable(options blackjack.Options) (*Table, error) {
	game, err := blackjack.NewGame(options)
	if err != nil {
		return nil, err
	}

	return &Table{
		game:     game,
		clients:  make(map[*Client]bool),
		commands: make(chan command, 256),
		close:    make(chan bool),
	}, nil
}

// Clients will return a slice of connected (at the time) clients
func (t *Table) Clients() []*Client {
	t.lock.RLock()
	defer t.lock.RUnlock()

	clients := make([]*Client, 0, len(t.clients))
	for client := range t.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (t *Table) StartShift() {
	go t.runLoop()
}

// EndShift is called when the table is no longer needed
func (t *Table) EndShift() {
	close(t.close)
}

func (t *Table) runLoop() {
	log := logrus.WithField("interval", t.game.Interval())
	log.Debug("starting table run loop")

	ticker := time.NewTicker(t.game.Interval())
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			if messages := t.game.Tick(now); len(messages) > 0 {
				t.deliver(messages)
				t.broadcastState()
			}
		case cmd := <-t.commands:
			if t.dispatch(cmd.client, cmd.msg) {
				t.deliver(t.game.Drain())
				t.broadcastState()
			}
		case <-t.close:
			log.Debug("terminating table run loop")
			return
		}
	}
}

// AddClient adds a client and queues up a state snapshot for them
// This method must return quickly
func (t *Table) AddClient(client *Client) {
	t.lock.Lock()
	client.table = t
	t.clients[client] = true
	t.lock.Unlock()

	t.commands <- command{client: client, msg: &PayloadIn{Action: "state"}}
}

// RemoveClient removes a client
// A dropped connection also gives up the client's seat
// This method must return quickly
func (t *Table) RemoveClient(client *Client) (lastClient bool) {
	t.lock.Lock()
	delete(t.clients, client)
	nClients := len(t.clients)
	t.lock.Unlock()

	t.commands <- command{client: client, msg: &PayloadIn{Action: "leave"}}

	return nClients == 0
}

// ReceivedMessage is called when a client sends a message to the server
// This method must return quickly
func (t *Table) ReceivedMessage(c *Client, msg *PayloadIn) {
	t.commands <- command{client: c, msg: msg}
}

// dispatch performs a client action against the game and reports whether the
// table state changed
// NOTE: must only be called from the run loop
func (t *Table) dispatch(c *Client, msg *PayloadIn) (updateState bool) {
	var err error
	switch msg.Action {
	case "sit":
		err = t.game.Seat(c.Name)
	case "leave":
		err = t.game.Leave(c.Name)
	case "hit":
		err = t.game.Hit(c.Name)
	case "stand":
		err = t.game.Stand(c.Name)
	case "state":
		c.Send(&Response{
			Key:     "state",
			Data:    t.game.State(),
			Context: msg.Context,
		})
		return false
	default:
		err = fmt.Errorf("unknown action: %s", msg.Action)
	}

	if err != nil {
		logrus.WithError(err).WithField("client", c.String()).Debug("could not perform action")
		c.Send(newErrorResponse(msg.Context, err))
		return false
	}

	c.Send(okResponse(msg.Context))
	return true
}

// NOTE: must only be called from the run loop
func (t *Table) deliver(messages []*blackjack.Message) {
	if len(messages) == 0 {
		return
	}

	for _, client := range t.Clients() {
		client.Send(&Response{
			Key:  "log",
			Data: messages,
		})
	}
}

// NOTE: must only be called from the run loop
func (t *Table) broadcastState() {
	state := t.game.State()
	for _, client := range t.Clients() {
		client.Send(&Response{
			Key:  "state",
			Data: state,
		})
	}
}
