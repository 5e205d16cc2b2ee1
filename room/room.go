// room/room.go
package room

import (
	"sync"
	"time"

	"github.com/Boren/ringoffire/deck"
	"github.com/Boren/ringoffire/models"
)

// Member 房间内的一名玩家
type Member struct {
	ID       string
	Username string
}

// Room 是一局游戏的聚合根: 成员、牌堆、回合与规则都归它所有
type Room struct {
	Name      string
	OwnerID   string
	CreatedAt time.Time

	mu            sync.RWMutex
	phase         Phase
	members       map[string]Member
	order         []string // member ids in join order; defines turn order
	deck          deck.Deck
	rules         []string
	rotator       Rotator
	currentCard   *deck.Card
	currentText   string
	currentPlayer string
	syncTimerID   int64
}

// DrawResult is what a successful draw produced.
type DrawResult struct {
	Card          deck.Card
	Text          string
	CurrentPlayer string
}

// NewRoom creates a room in the waiting phase with the creator as its sole
// member and a freshly shuffled deck.
func NewRoom(name string, owner Member) *Room {
	return &Room{
		Name:      name,
		OwnerID:   owner.ID,
		CreatedAt: time.Now(),
		phase:     PhaseWaiting,
		members:   map[string]Member{owner.ID: owner},
		order:     []string{owner.ID},
		deck:      deck.Generate(),
		rules:     []string{},
	}
}

// Join adds a member. Only allowed while the room is waiting for players.
func (r *Room) Join(m Member) *GameError {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhaseWaiting {
		return errWrongState(r.phase)
	}
	if _, exists := r.members[m.ID]; exists {
		return ErrAlreadyInRoom
	}

	r.members[m.ID] = m
	r.order = append(r.order, m.ID)
	return nil
}

// Start moves the room into play and hands the first turn out. Only the
// creator may start, and only once.
func (r *Room) Start(senderID string) (string, *GameError) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if senderID != r.OwnerID {
		return "", ErrNotCreator
	}
	if !r.phase.CanTransition(PhaseInProgress) {
		return "", errWrongState(r.phase)
	}

	r.phase = PhaseInProgress
	r.currentPlayer = r.rotator.Next(r.order, "")
	return r.currentPlayer, nil
}

// Draw pops the top card for the player holding the turn. A jack sends the
// room into rule authoring and keeps the turn with the drawer; every other
// rank passes the turn on immediately.
func (r *Room) Draw(senderID string) (*DrawResult, *GameError) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhaseInProgress {
		return nil, errWrongState(r.phase)
	}
	if senderID != r.currentPlayer {
		return nil, ErrOutOfTurn
	}

	card, err := r.deck.Draw()
	if err != nil {
		return nil, ErrEmptyDeck
	}

	r.currentCard = &card
	r.currentText = deck.Prompt(card.Rank)

	if card.Rank == deck.RankJack {
		r.phase = PhaseCreatingRule
	} else {
		r.currentPlayer = r.rotator.Next(r.order, r.currentPlayer)
	}

	return &DrawResult{
		Card:          card,
		Text:          r.currentText,
		CurrentPlayer: r.currentPlayer,
	}, nil
}

// CreateRule appends the rule authored after a jack draw, returns the room
// to play and passes the turn on.
func (r *Room) CreateRule(senderID, text string) (string, *GameError) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhaseCreatingRule {
		return "", errWrongState(r.phase)
	}
	if senderID != r.currentPlayer {
		return "", ErrOutOfTurn
	}

	r.rules = append(r.rules, text)
	r.phase = PhaseInProgress
	r.currentPlayer = r.rotator.Next(r.order, r.currentPlayer)
	return r.currentPlayer, nil
}

// RemoveMember evicts a member, passing the turn first when the leaver
// holds it. Leaving mid rule authoring hands the room back to play.
func (r *Room) RemoveMember(id string) (Member, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, exists := r.members[id]
	if !exists {
		return Member{}, false
	}

	if r.currentPlayer == id {
		if len(r.order) > 1 {
			r.currentPlayer = r.rotator.Next(r.order, id)
		} else {
			r.currentPlayer = ""
		}
		if r.phase == PhaseCreatingRule {
			r.phase = PhaseInProgress
		}
	}

	delete(r.members, id)
	for i, memberID := range r.order {
		if memberID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return m, true
}

// GetMember 获取单个成员
func (r *Room) GetMember(id string) (Member, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, exists := r.members[id]
	return m, exists
}

// MemberIDs returns the member ids in turn order.
func (r *Room) MemberIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

func (r *Room) MemberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

func (r *Room) GetPhase() Phase {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.phase
}

func (r *Room) GetCurrentPlayer() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.currentPlayer
}

func (r *Room) DeckSize() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.deck)
}

// Snapshot 生成对外广播的只读房间投影
func (r *Room) Snapshot() models.RoomSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := make([]models.PlayerInfo, 0, len(r.order))
	for _, id := range r.order {
		m := r.members[id]
		players = append(players, models.PlayerInfo{ID: m.ID, Username: m.Username})
	}

	rules := make([]string, len(r.rules))
	copy(rules, r.rules)

	var card *deck.Card
	if r.currentCard != nil {
		c := *r.currentCard
		card = &c
	}

	return models.RoomSnapshot{
		GameState:     string(r.phase),
		Name:          r.Name,
		Rules:         rules,
		Owner:         r.OwnerID,
		Players:       players,
		CurrentCard:   card,
		CurrentText:   r.currentText,
		CurrentPlayer: r.currentPlayer,
	}
}
