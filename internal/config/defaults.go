package config

import (
	_ "embed"
)

//go:embed defaults/rush.yaml
var defaultRushYAML []byte

// DefaultRushConfig returns the default Rush configuration.
func DefaultRushConfig() RushConfig {
	return RushConfig{
		World: RushWorld{
			Width:  3200,
			Height: 1800,
			Scale:  10,
		},
		Player: RushPlayer{
			Speed:           15,
			Radius:          50,
			HP:              60,
			ChargeCap:       120,
			ChargeReady:     40,
			RushDecay:       10,
			RushSpeedFactor: 10,
			FlashCooldown:   60,
			DamageCooldown:  20,
			FlashTicks:      30, // 0.5s at 60fps
		},
		Crescent: RushCrescent{
			Speed:          12,
			Radius:         50,
			GoalForce:      10,
			GoalReach:      500,
			RepulsionForce: 9,
			RepulsionReach: 500,
			ArrivalRadius:  50,
			TelegraphTicks: 30,
			AttackTicks:    120,
			FanDegrees:     []float64{-20, 0, 20},
			ShotSpeed:      20,
			MuzzleOffset:   50,
			RingDistance:   800,
			RingCount:      8,
			PickAmong:      3,
		},
		Arrow: RushArrow{
			Speed:       30,
			Radius:      50,
			StandTicks:  60,
			RunMin:      20,
			RunSpread:   20,
			TrailLength: 10,
		},
		Projectile: RushProjectile{
			Radius:     20,
			SpinPeriod: 4,
		},
		Damage: RushDamage{
			Shuriken: 10,
			RedArrow: 20,
		},
		Arenas: []RushArena{
			{
				ID:     "rush",
				Title:  "Rush",
				Player: RushSpawn{X: 1600, Y: 900},
				Enemies: []RushSpawn{
					{Kind: KindCrescent, X: 2000, Y: 1000},
					{Kind: KindArrow, X: 600, Y: 1400},
				},
			},
			{
				ID:     "rush_gauntlet",
				Title:  "Rush: Gauntlet",
				Player: RushSpawn{X: 1600, Y: 900},
				Enemies: []RushSpawn{
					{Kind: KindCrescent, X: 2600, Y: 1400},
					{Kind: KindCrescent, X: 600, Y: 400},
					{Kind: KindArrow, X: 400, Y: 1500},
					{Kind: KindArrow, X: 2800, Y: 300},
				},
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 7200, // 2 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}
