// room/errors.go
package room

// Error kinds surfaced to the offending sender. The wire values match the
// client's error handling.
const (
	KindMissingUsername = "missing-username"
	KindMissingRoomName = "missing-roomname"
	KindAlreadyInRoom   = "already-in-room"
	KindRoomNotExist    = "room-not-exist"
	KindWrongGameState  = "wrong-game-state"
	KindOutOfTurn       = "out-of-turn"
	KindNotCreator      = "not-creator"
	KindEmptyDeck       = "empty-deck"
	KindInternal        = "internal-error"
)

// GameError is a recoverable, sender-visible rejection. Room state is
// unchanged whenever one is returned.
type GameError struct {
	Kind string
	Info any
}

func (e *GameError) Error() string {
	return e.Kind
}

var (
	ErrMissingUsername = &GameError{Kind: KindMissingUsername, Info: ""}
	ErrMissingRoomName = &GameError{Kind: KindMissingRoomName, Info: ""}
	ErrAlreadyInRoom   = &GameError{Kind: KindAlreadyInRoom, Info: ""}
	ErrRoomNotExist    = &GameError{Kind: KindRoomNotExist, Info: ""}
	ErrOutOfTurn       = &GameError{Kind: KindOutOfTurn, Info: ""}
	ErrNotCreator      = &GameError{Kind: KindNotCreator, Info: ""}
	ErrEmptyDeck       = &GameError{Kind: KindEmptyDeck, Info: ""}
)

// errWrongState reports the phase the room was actually in.
func errWrongState(p Phase) *GameError {
	return &GameError{
		Kind: KindWrongGameState,
		Info: map[string]string{"gameState": string(p)},
	}
}
