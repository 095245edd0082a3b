package room

import (
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a player connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// Name is how the player is known at the table
	Name string

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	// send is a channel for sending messages to the client
	send chan *Response

	table *Table
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, name string) *Client {
	return &Client{
		Conn:  conn,
		Name:  name,
		Close: make(chan string),
		send:  make(chan *Response, 256),
	}
}

// Send sends a message to the web client
// If the client's buffer is full, the message is dropped and false is returned
func (c *Client) Send(msg *Response) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel of outgoing messages
func (c *Client) SendChan() <-chan *Response {
	return c.send
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	return c.Name
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	if c.table == nil {
		logrus.WithField("msg", msg).Warn("received message, but client has no table")
		return
	}

	c.table.ReceivedMessage(c, msg)
}
