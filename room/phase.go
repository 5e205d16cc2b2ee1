// room/phase.go
package room

// Phase 表示房间状态机的当前状态
type Phase string

const (
	PhaseWaiting      Phase = "waiting-for-players"
	PhaseInProgress   Phase = "in-progress"
	PhaseCreatingRule Phase = "creating-rule"
)

// transitions is the allowed phase graph. A room never returns to
// PhaseWaiting once it has left it.
var transitions = map[Phase]map[Phase]bool{
	PhaseWaiting:      {PhaseInProgress: true},
	PhaseInProgress:   {PhaseCreatingRule: true},
	PhaseCreatingRule: {PhaseInProgress: true},
}

// CanTransition reports whether moving from p to next is allowed.
func (p Phase) CanTransition(next Phase) bool {
	return transitions[p][next]
}
