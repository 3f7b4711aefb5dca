package sim

import "math"

// Snapshot is a flat copy of the world using primitive types only.
// Used for determinism checks and replay verification.
type Snapshot struct {
	Tick    uint64
	Outcome int

	PlayerState int
	PlayerPower int
	PlayerTicks int
	PlayerHP    int
	// Player body as 4 floats: X, Y, VX, VY
	PlayerBody [4]float64
	PlayerFace float64

	// Each enemy is 4 ints: Kind, State, Ticks, RunRemaining
	EnemyData []int
	// Each enemy is 5 floats: X, Y, VX, VY, FaceAngle
	EnemyBodies []float64

	// Each projectile is 4 floats: X, Y, VX, VY
	ProjectileData []float64
}

// Snapshot returns the current state as a Snapshot.
func (s *State) Snapshot() Snapshot {
	p := s.Player
	snap := Snapshot{
		Tick:        uint64(s.Tick), //#nosec G115 -- tick count is always positive
		Outcome:     int(s.Outcome),
		PlayerState: int(p.State.Kind),
		PlayerPower: p.State.Power,
		PlayerTicks: p.State.Ticks,
		PlayerHP:    p.HP,
		PlayerBody:  [4]float64{p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y},
		PlayerFace:  p.FaceAngle,
	}

	snap.EnemyData = make([]int, 0, len(s.Enemies)*4)
	snap.EnemyBodies = make([]float64, 0, len(s.Enemies)*5)
	for _, e := range s.Enemies {
		snap.EnemyData = append(snap.EnemyData, int(e.Kind), int(e.State.Kind), e.State.Ticks, e.State.RunRemaining)
		snap.EnemyBodies = append(snap.EnemyBodies, e.Pos.X, e.Pos.Y, e.Vel.X, e.Vel.Y, e.FaceAngle)
	}

	snap.ProjectileData = make([]float64, 0, len(s.Projectiles)*4)
	for _, pr := range s.Projectiles {
		snap.ProjectileData = append(snap.ProjectileData, pr.Pos.X, pr.Pos.Y, pr.Vel.X, pr.Vel.Y)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Outcome)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerState) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerPower) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerTicks) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerHP)    //#nosec G115 -- hash computation
	for _, f := range snap.PlayerBody {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + math.Float64bits(snap.PlayerFace)

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, f := range snap.EnemyBodies {
		h = h*31 + math.Float64bits(f)
	}
	for _, f := range snap.ProjectileData {
		h = h*31 + math.Float64bits(f)
	}
	return h
}
