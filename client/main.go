package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"log"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// send wraps a payload in an envelope and writes it out.
func send(c *websocket.Conn, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.WriteJSON(envelope{Event: event, Data: data})
}

func main() {
	addr := flag.String("addr", "localhost:4000", "server address")
	username := flag.String("username", "tester", "player name")
	join := flag.String("join", "", "room name to join instead of creating one")
	flag.Parse()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	u := url.URL{Scheme: "ws", Host: *addr, Path: "/ws"}
	log.Printf("Connecting to %s", u.String())

	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatalf("Dial failed: %v", err)
	}
	defer c.Close()

	done := make(chan struct{})

	// Read loop
	go func() {
		defer close(done)
		for {
			var env envelope
			if err := c.ReadJSON(&env); err != nil {
				log.Println("Read error:", err)
				return
			}
			log.Printf("<- RECV %s: %s", env.Event, string(env.Data))
		}
	}()

	if *join != "" {
		log.Printf("Joining room %s...", *join)
		err = send(c, "join-room", map[string]string{"username": *username, "roomname": *join})
	} else {
		log.Println("Creating a room...")
		err = send(c, "create-room", map[string]string{"username": *username})
	}
	if err != nil {
		log.Println("Write error:", err)
		return
	}

	log.Println("Commands: start | draw | rule <text> | leave")

	// Write loop
	reader := bufio.NewReader(os.Stdin)
	for {
		select {
		case <-done:
			return
		case <-interrupt:
			log.Println("Interrupt received, closing connection.")
			err := c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			if err != nil {
				log.Println("Write close error:", err)
			}
			select {
			case <-done:
			case <-time.After(time.Second):
			}
			return
		default:
			text, _ := reader.ReadString('\n')
			text = strings.TrimSpace(text)

			var err error
			switch {
			case text == "start":
				err = send(c, "start-game", struct{}{})
			case text == "draw":
				err = send(c, "draw", struct{}{})
			case strings.HasPrefix(text, "rule "):
				err = send(c, "create-rule", map[string]string{"text": strings.TrimPrefix(text, "rule ")})
			case text == "leave":
				err = send(c, "leave-room", struct{}{})
			case text == "":
				continue
			default:
				log.Printf("Unknown command %q", text)
				continue
			}
			if err != nil {
				log.Println("Write error:", err)
				return
			}
			log.Printf("-> SENT: %s", text)
		}
	}
}
