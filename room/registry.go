// room/registry.go
package room

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"github.com/Boren/ringoffire/models"
	"github.com/Boren/ringoffire/network"
	"github.com/Boren/ringoffire/timer"
)

// maxNameAttempts bounds room name generation retries. With a 16.7M name
// space this only trips when the registry is effectively full.
const maxNameAttempts = 100

// Registry 管理所有房间以及玩家到房间的反向索引
type Registry struct {
	rooms        map[string]*Room
	memberRooms  map[string]string // member id -> room name
	timers       *timer.Manager
	syncInterval time.Duration
	mutex        sync.RWMutex
}

// NewRegistry creates a registry. The timer manager drives each room's
// periodic sync rebroadcast at syncInterval.
func NewRegistry(timers *timer.Manager, syncInterval time.Duration) *Registry {
	return &Registry{
		rooms:        make(map[string]*Room),
		memberRooms:  make(map[string]string),
		timers:       timers,
		syncInterval: syncInterval,
	}
}

// CreateRoom allocates a fresh room with the creator as owner and sole
// member, and schedules its sync timer on the given broadcaster.
func (reg *Registry) CreateRoom(owner Member, b Broadcaster) (*Room, *GameError) {
	reg.mutex.Lock()
	defer reg.mutex.Unlock()

	if _, inRoom := reg.memberRooms[owner.ID]; inRoom {
		return nil, ErrAlreadyInRoom
	}

	name, ok := reg.newRoomName()
	if !ok {
		return nil, &GameError{Kind: KindInternal, Info: "room name space exhausted"}
	}

	room := NewRoom(name, owner)
	reg.rooms[name] = room
	reg.memberRooms[owner.ID] = name

	room.syncTimerID = reg.timers.AddTimer(reg.syncInterval, reg.syncInterval, func() {
		b.BroadcastToRoom(name, network.EventSyncRoom, models.RoomPayload{Room: room.Snapshot()})
	})

	return room, nil
}

// Join adds a member to the named room, enforcing that a player is in at
// most one room at a time.
func (reg *Registry) Join(name string, m Member) (*Room, *GameError) {
	reg.mutex.Lock()
	defer reg.mutex.Unlock()

	if _, inRoom := reg.memberRooms[m.ID]; inRoom {
		return nil, ErrAlreadyInRoom
	}

	room, exists := reg.rooms[name]
	if !exists {
		return nil, ErrRoomNotExist
	}

	if err := room.Join(m); err != nil {
		return nil, err
	}
	reg.memberRooms[m.ID] = name
	return room, nil
}

// FindByName 按房间名查找
func (reg *Registry) FindByName(name string) (*Room, bool) {
	reg.mutex.RLock()
	defer reg.mutex.RUnlock()
	room, exists := reg.rooms[name]
	return room, exists
}

// RoomOf resolves the room a member currently belongs to.
func (reg *Registry) RoomOf(memberID string) (*Room, bool) {
	reg.mutex.RLock()
	defer reg.mutex.RUnlock()

	name, inRoom := reg.memberRooms[memberID]
	if !inRoom {
		return nil, false
	}
	room, exists := reg.rooms[name]
	return room, exists
}

// RemoveParticipant evicts a member from their room and clears the reverse
// index. The room itself stays alive.
func (reg *Registry) RemoveParticipant(memberID string) (*Room, Member, bool) {
	reg.mutex.Lock()
	defer reg.mutex.Unlock()

	name, inRoom := reg.memberRooms[memberID]
	if !inRoom {
		return nil, Member{}, false
	}
	delete(reg.memberRooms, memberID)

	room, exists := reg.rooms[name]
	if !exists {
		return nil, Member{}, false
	}

	m, removed := room.RemoveMember(memberID)
	return room, m, removed
}

// RemoveRoom tears a room down: cancels its sync timer, evicts every member
// and frees both registry indexes.
func (reg *Registry) RemoveRoom(name string) {
	reg.mutex.Lock()
	defer reg.mutex.Unlock()

	room, exists := reg.rooms[name]
	if !exists {
		return
	}

	reg.timers.RemoveTimer(room.syncTimerID)
	for _, id := range room.MemberIDs() {
		delete(reg.memberRooms, id)
		room.RemoveMember(id)
	}
	delete(reg.rooms, name)
}

// Count returns the number of live rooms.
func (reg *Registry) Count() int {
	reg.mutex.RLock()
	defer reg.mutex.RUnlock()
	return len(reg.rooms)
}

// Names lists the live room names.
func (reg *Registry) Names() []string {
	reg.mutex.RLock()
	defer reg.mutex.RUnlock()

	names := make([]string, 0, len(reg.rooms))
	for name := range reg.rooms {
		names = append(names, name)
	}
	return names
}

// newRoomName draws short uppercase hex names until one is free. Caller
// holds the registry lock.
func (reg *Registry) newRoomName() (string, bool) {
	for i := 0; i < maxNameAttempts; i++ {
		buf := make([]byte, 3)
		if _, err := rand.Read(buf); err != nil {
			continue
		}
		name := strings.ToUpper(hex.EncodeToString(buf))
		if _, taken := reg.rooms[name]; !taken {
			return name, true
		}
	}
	return "", false
}
