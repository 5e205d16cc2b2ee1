package network

// Inbound events (client -> server).
const (
	EventCreateRoom = "create-room"
	EventJoinRoom   = "join-room"
	EventLeaveRoom  = "leave-room"
	EventStartGame  = "start-game"
	EventDraw       = "draw"
	EventCreateRule = "create-rule"
)

// Outbound events (server -> client).
const (
	EventRoomCreated     = "room-created"
	EventRoomJoinSuccess = "room-join-success"
	EventPlayerJoined    = "player-joined"
	EventPlayerLeft      = "player-left"
	EventGameStarted     = "game-started"
	EventCardDrawn       = "card-drawn"
	EventRuleCreated     = "rule-created"
	EventRoomClosed      = "room-closed"
	EventSyncRoom        = "sync-room"
	EventError           = "rof-error"
)
