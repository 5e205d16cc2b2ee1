package room

// Broadcaster defines the interface for broadcasting events to a room.
// This is defined here to break the import cycle between room and broadcast.
type Broadcaster interface {
	BroadcastToRoom(roomName string, event string, payload any) error
}
