package sim

// EventKind identifies a transient simulation event.
type EventKind int

const (
	EventChargeStarted EventKind = iota
	EventChargeReady
	EventRushStarted
	EventRushEnded
	EventEnemyKilled
	EventShotsFired
	EventPlayerHit
	EventFlash
	EventWon
	EventLost
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventChargeStarted:
		return "charge_started"
	case EventChargeReady:
		return "charge_ready"
	case EventRushStarted:
		return "rush_started"
	case EventRushEnded:
		return "rush_ended"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventShotsFired:
		return "shots_fired"
	case EventPlayerHit:
		return "player_hit"
	case EventFlash:
		return "flash"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Event is emitted during Update and lives until the next Update.
type Event struct {
	Kind  EventKind
	Tick  int
	Pos   Vec2    // Where it happened
	Angle float64 // Hit angle for EventPlayerHit
	Hit   HitType // For EventPlayerHit
	Enemy int     // Index into State.Enemies, EventEnemyKilled only
	Power int     // Rush power for EventRushStarted
}

func (s *State) emit(e Event) {
	e.Tick = s.Tick
	s.Events = append(s.Events, e)
}
