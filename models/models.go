// models/models.go
package models

import (
	"github.com/Boren/ringoffire/deck"
)

// PlayerInfo 玩家信息（用于房间快照）
type PlayerInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// RoomSnapshot is the read-only projection of room state sent to clients.
// It deliberately omits the undealt deck and the turn cursor internals.
type RoomSnapshot struct {
	GameState     string       `json:"gameState"`
	Name          string       `json:"name"`
	Rules         []string     `json:"rules"`
	Owner         string       `json:"owner"`
	Players       []PlayerInfo `json:"players"`
	CurrentCard   *deck.Card   `json:"currentCard,omitempty"`
	CurrentText   string       `json:"currentText"`
	CurrentPlayer string       `json:"currentPlayer"`
}

// --- inbound payloads ---

type CreateRoomPayload struct {
	Username string `json:"username"`
}

type JoinRoomPayload struct {
	Username string `json:"username"`
	RoomName string `json:"roomname"`
}

type CreateRulePayload struct {
	Text string `json:"text"`
}

// --- outbound payloads ---

// RoomPayload carries just the room snapshot. Used by room-created,
// room-join-success and sync-room.
type RoomPayload struct {
	Room RoomSnapshot `json:"room"`
}

type PlayerJoinedPayload struct {
	Username string       `json:"username"`
	ID       string       `json:"id"`
	Room     RoomSnapshot `json:"room"`
}

type PlayerLeftPayload struct {
	Username string       `json:"username"`
	ID       string       `json:"id"`
	Room     RoomSnapshot `json:"room"`
}

type GameStartedPayload struct {
	CurrentPlayer string       `json:"currentPlayer"`
	Room          RoomSnapshot `json:"room"`
}

type CardDrawnPayload struct {
	Card          deck.Card    `json:"card"`
	CurrentPlayer string       `json:"currentPlayer"`
	Text          string       `json:"text"`
	Room          RoomSnapshot `json:"room"`
}

type RuleCreatedPayload struct {
	Rule          string       `json:"rule"`
	CurrentPlayer string       `json:"currentPlayer"`
	Room          RoomSnapshot `json:"room"`
}

type RoomClosedPayload struct {
	Name string `json:"name"`
}

// ErrorPayload is only ever sent to the offending sender, never broadcast.
type ErrorPayload struct {
	Error string `json:"error"`
	Info  any    `json:"info"`
}
