// dispatcher/dispatcher.go
package dispatcher

import (
	"encoding/json"
	"strings"

	"github.com/Boren/ringoffire/logger"
	"github.com/Boren/ringoffire/models"
	"github.com/Boren/ringoffire/monitor"
	"github.com/Boren/ringoffire/network"
	"github.com/Boren/ringoffire/room"
	"github.com/Boren/ringoffire/session"
)

// Dispatcher 把入站动作翻译成房间操作并发出对应的广播。
// 一个发送者的失败只回给它自己，绝不影响房间里其他人看到的状态。
type Dispatcher struct {
	registry    *room.Registry
	sessions    *session.Manager
	broadcaster room.Broadcaster
	monitor     *monitor.Monitor // optional
}

func New(registry *room.Registry, sessions *session.Manager, broadcaster room.Broadcaster, mon *monitor.Monitor) *Dispatcher {
	return &Dispatcher{
		registry:    registry,
		sessions:    sessions,
		broadcaster: broadcaster,
		monitor:     mon,
	}
}

// Dispatch routes one envelope from a session to its handler.
func (d *Dispatcher) Dispatch(sess *session.Session, env *network.Envelope) {
	switch env.Event {
	case network.EventCreateRoom:
		d.handleCreateRoom(sess, env.Data)
	case network.EventJoinRoom:
		d.handleJoinRoom(sess, env.Data)
	case network.EventStartGame:
		d.handleStartGame(sess)
	case network.EventDraw:
		d.handleDraw(sess)
	case network.EventCreateRule:
		d.handleCreateRule(sess, env.Data)
	case network.EventLeaveRoom:
		d.removeFromRoom(sess)
	default:
		logger.Log.Warnf("Session %s sent unknown event %q", sess.ID, env.Event)
	}
}

// HandleDisconnect performs the same cleanup as an explicit leave-room.
func (d *Dispatcher) HandleDisconnect(sess *session.Session) {
	d.removeFromRoom(sess)
}

func (d *Dispatcher) handleCreateRoom(sess *session.Session, data json.RawMessage) {
	var payload models.CreateRoomPayload
	if len(data) > 0 {
		if err := json.Unmarshal(data, &payload); err != nil {
			logger.Log.Warnf("Session %s: bad create-room payload: %v", sess.ID, err)
			return
		}
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" {
		d.sendError(sess, room.ErrMissingUsername)
		return
	}

	r, gerr := d.registry.CreateRoom(room.Member{ID: sess.ID, Username: username}, d.broadcaster)
	if gerr != nil {
		d.sendError(sess, gerr)
		return
	}

	sess.Username = username
	sess.SetRoom(r.Name)
	sess.Send(network.EventRoomCreated, models.RoomPayload{Room: r.Snapshot()})

	logger.Log.Infof("Room %s: created by %s (%s)", r.Name, username, sess.ID)
	d.updateRoomGauge()
}

func (d *Dispatcher) handleJoinRoom(sess *session.Session, data json.RawMessage) {
	var payload models.JoinRoomPayload
	if len(data) > 0 {
		if err := json.Unmarshal(data, &payload); err != nil {
			logger.Log.Warnf("Session %s: bad join-room payload: %v", sess.ID, err)
			return
		}
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" {
		d.sendError(sess, room.ErrMissingUsername)
		return
	}
	roomName := strings.TrimSpace(payload.RoomName)
	if roomName == "" {
		d.sendError(sess, room.ErrMissingRoomName)
		return
	}

	r, gerr := d.registry.Join(roomName, room.Member{ID: sess.ID, Username: username})
	if gerr != nil {
		d.sendError(sess, gerr)
		return
	}

	sess.Username = username
	sess.SetRoom(r.Name)
	sess.Send(network.EventRoomJoinSuccess, models.RoomPayload{Room: r.Snapshot()})
	d.broadcaster.BroadcastToRoom(r.Name, network.EventPlayerJoined, models.PlayerJoinedPayload{
		Username: username,
		ID:       sess.ID,
		Room:     r.Snapshot(),
	})

	logger.Log.Infof("Room %s: %s (%s) joined", r.Name, username, sess.ID)
}

func (d *Dispatcher) handleStartGame(sess *session.Session) {
	r, ok := d.registry.RoomOf(sess.ID)
	if !ok {
		d.sendError(sess, room.ErrRoomNotExist)
		return
	}

	currentPlayer, gerr := r.Start(sess.ID)
	if gerr != nil {
		d.sendError(sess, gerr)
		return
	}

	d.broadcaster.BroadcastToRoom(r.Name, network.EventGameStarted, models.GameStartedPayload{
		CurrentPlayer: currentPlayer,
		Room:          r.Snapshot(),
	})

	logger.Log.Infof("Room %s: game started, first turn %s", r.Name, currentPlayer)
}

func (d *Dispatcher) handleDraw(sess *session.Session) {
	r, ok := d.registry.RoomOf(sess.ID)
	if !ok {
		d.sendError(sess, room.ErrRoomNotExist)
		return
	}

	res, gerr := r.Draw(sess.ID)
	if gerr != nil {
		d.sendError(sess, gerr)
		return
	}

	d.broadcaster.BroadcastToRoom(r.Name, network.EventCardDrawn, models.CardDrawnPayload{
		Card:          res.Card,
		CurrentPlayer: res.CurrentPlayer,
		Text:          res.Text,
		Room:          r.Snapshot(),
	})

	if d.monitor != nil {
		d.monitor.IncCardsDrawn()
	}
	logger.Log.Infof("Room %s: %s drew %d of %s", r.Name, sess.ID, res.Card.Rank, res.Card.Suit)
}

func (d *Dispatcher) handleCreateRule(sess *session.Session, data json.RawMessage) {
	var payload models.CreateRulePayload
	if len(data) > 0 {
		if err := json.Unmarshal(data, &payload); err != nil {
			logger.Log.Warnf("Session %s: bad create-rule payload: %v", sess.ID, err)
			return
		}
	}

	text := strings.TrimSpace(payload.Text)
	if text == "" {
		logger.Log.Warnf("Session %s sent create-rule without text", sess.ID)
		return
	}

	r, ok := d.registry.RoomOf(sess.ID)
	if !ok {
		d.sendError(sess, room.ErrRoomNotExist)
		return
	}

	currentPlayer, gerr := r.CreateRule(sess.ID, text)
	if gerr != nil {
		d.sendError(sess, gerr)
		return
	}

	d.broadcaster.BroadcastToRoom(r.Name, network.EventRuleCreated, models.RuleCreatedPayload{
		Rule:          text,
		CurrentPlayer: currentPlayer,
		Room:          r.Snapshot(),
	})

	logger.Log.Infof("Room %s: %s created rule %q", r.Name, sess.ID, text)
}

// removeFromRoom handles both leave-room and disconnects. The owner leaving
// tears the whole room down; anyone else just vacates their seat.
func (d *Dispatcher) removeFromRoom(sess *session.Session) {
	r, ok := d.registry.RoomOf(sess.ID)
	if !ok {
		return
	}

	if r.OwnerID == sess.ID {
		logger.Log.Infof("Room %s: owner left, closing room", r.Name)
		d.broadcaster.BroadcastToRoom(r.Name, network.EventRoomClosed, models.RoomClosedPayload{Name: r.Name})
		for _, memberID := range r.MemberIDs() {
			if s, exists := d.sessions.Get(memberID); exists {
				s.SetRoom("")
			}
		}
		d.registry.RemoveRoom(r.Name)
	} else {
		_, m, removed := d.registry.RemoveParticipant(sess.ID)
		sess.SetRoom("")
		if removed {
			logger.Log.Infof("Room %s: %s (%s) left", r.Name, m.Username, m.ID)
			d.broadcaster.BroadcastToRoom(r.Name, network.EventPlayerLeft, models.PlayerLeftPayload{
				Username: m.Username,
				ID:       m.ID,
				Room:     r.Snapshot(),
			})
		}
	}

	d.updateRoomGauge()
}

func (d *Dispatcher) sendError(sess *session.Session, gerr *room.GameError) {
	logger.Log.Infof("Session %s: rejected action: %s", sess.ID, gerr.Kind)
	sess.Send(network.EventError, models.ErrorPayload{Error: gerr.Kind, Info: gerr.Info})
}

func (d *Dispatcher) updateRoomGauge() {
	if d.monitor != nil {
		d.monitor.SetActiveRooms(d.registry.Count())
	}
}
