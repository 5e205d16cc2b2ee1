// broadcast/broadcast.go
package broadcast

import (
	"errors"

	"github.com/Boren/ringoffire/room"
	"github.com/Boren/ringoffire/session"
)

var (
	ErrRoomNotFound = errors.New("room not found")
)

// 广播接口
type Broadcaster interface {
	BroadcastToRoom(roomName string, event string, payload any) error
}

// RoomBroadcaster fans an event out to every member of a room. One member's
// dead connection never blocks delivery to the rest.
type RoomBroadcaster struct {
	registry       *room.Registry
	sessionManager *session.Manager
}

func NewRoomBroadcaster(registry *room.Registry, sessionManager *session.Manager) *RoomBroadcaster {
	return &RoomBroadcaster{
		registry:       registry,
		sessionManager: sessionManager,
	}
}

func (b *RoomBroadcaster) BroadcastToRoom(roomName string, event string, payload any) error {
	r, exists := b.registry.FindByName(roomName)
	if !exists {
		return ErrRoomNotFound
	}

	for _, memberID := range r.MemberIDs() {
		s, ok := b.sessionManager.Get(memberID)
		if !ok {
			continue
		}
		if err := s.Send(event, payload); err != nil {
			// 发送失败只影响该成员，断线清理由服务器负责
			continue
		}
	}

	return nil
}
