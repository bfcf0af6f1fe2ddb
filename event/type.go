package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value and never dispatched
	EventNone EventType = iota

	// === Hostile Event ===

	// EventHostileSpawned signals a new regular hostile entered the directory
	// Trigger: HostileSystem spawn timer
	// Consumer: Presentation, Audio | Payload: *HostilePayload
	EventHostileSpawned

	// EventBossSpawned signals the boss entered the directory
	// Trigger: HitResolver kill threshold
	// Consumer: Audio, LogHandler | Payload: *HostilePayload
	EventBossSpawned

	// EventHostileHit signals a hostile took damage
	// Trigger: HitResolver
	// Consumer: Audio | Payload: *HostilePayload
	EventHostileHit

	// EventHostileKilled signals a hostile transitioned to Dying and rewards were granted
	// Trigger: HitResolver
	// Consumer: Audio, LogHandler | Payload: *KillPayload
	EventHostileKilled

	// EventHostileRemoved signals a dying hostile finished decaying and left the directory
	// Trigger: HostileSystem sweep
	// Consumer: Presentation | Payload: *HostilePayload
	EventHostileRemoved

	// === Player Event ===

	// EventPlayerDamaged carries the attacker position for damage-direction feedback
	// Trigger: HostileSystem contact, CountdownSystem aura
	// Consumer: Snapshot, Audio | Payload: *DamagePayload
	EventPlayerDamaged

	// EventShotFired signals an appendage launched a projectile
	// Trigger: Appendage.Shoot
	// Consumer: Audio | Payload: *ShotPayload
	EventShotFired

	// EventGrappleAttached signals an appendage latched onto static geometry
	// Trigger: Appendage.Shoot
	// Consumer: Audio | Payload: *GrapplePayload
	EventGrappleAttached

	// EventGrappleReleased signals an appendage let go and imparted its release impulse
	// Trigger: Appendage.Release
	// Consumer: Audio | Payload: *GrapplePayload
	EventGrappleReleased

	// === Progression Event ===

	// EventLevelUp signals the player gained a level
	// Trigger: EconomySystem.AddXP
	// Consumer: PuzzleSystem (tile puzzle), Audio, LogHandler | Payload: *LevelUpPayload
	EventLevelUp

	// EventTilePuzzleStarted signals a sliding tile puzzle opened
	// Trigger: PuzzleSystem on level-up or puzzle wall interaction
	// Consumer: Snapshot | Payload: *TilePayload
	EventTilePuzzleStarted

	// EventTilePuzzleSolved signals the tile puzzle reached the solved arrangement
	// Trigger: PuzzleSystem.MoveTile
	// Consumer: Audio | Payload: *TilePayload
	EventTilePuzzleSolved

	// EventShopOpened signals the shop became available after a tile puzzle
	// Trigger: PuzzleSystem deferred close
	// Consumer: Front end | Payload: nil
	EventShopOpened

	// EventItemPurchased signals a successful purchase
	// Trigger: Store.Purchase
	// Consumer: Audio, LogHandler | Payload: *ItemPayload
	EventItemPurchased

	// EventItemEquipped signals an equipment change
	// Trigger: Store.Equip
	// Consumer: LogHandler | Payload: *ItemPayload
	EventItemEquipped

	// EventItemUsed signals a consumable was used
	// Trigger: Store.Use
	// Consumer: Audio | Payload: *ItemPayload
	EventItemUsed

	// === Puzzle Event ===

	// EventPuzzleSolved signals a gate puzzle transitioned to Solved
	// Trigger: PuzzleSystem
	// Consumer: Audio, LogHandler | Payload: *PuzzlePayload
	EventPuzzleSolved

	// EventPuzzleBlocked signals an out-of-order activation was rejected
	// Trigger: PuzzleSystem
	// Consumer: Audio | Payload: *PuzzlePayload
	EventPuzzleBlocked

	// EventSwitchActivated signals a correct switch press
	// Trigger: PuzzleSystem
	// Consumer: Audio | Payload: *SwitchPayload
	EventSwitchActivated

	// EventSwitchReset signals a wrong switch press reset the sequence
	// Trigger: PuzzleSystem
	// Consumer: Audio | Payload: *SwitchPayload
	EventSwitchReset

	// === Session Event ===

	// EventCountdownExpired signals the timer reached zero and the pursuer activated
	// Trigger: CountdownSystem
	// Consumer: Audio, LogHandler | Payload: nil
	EventCountdownExpired

	// EventMessage carries a transient instruction for the player
	// Trigger: MessageBoard.Show
	// Consumer: Front end | Payload: *MessagePayload
	EventMessage

	// EventGameOver signals the terminal Win/Lose transition
	// Trigger: Session.End
	// Consumer: Audio, LogHandler, Front end | Payload: *GameOverPayload
	EventGameOver

	// EventPauseToggled signals the simulation was paused or resumed
	// Trigger: Simulation.Apply(Pause)
	// Consumer: Audio | Payload: *PausePayload
	EventPauseToggled

	// EventSystemToggle enables or disables one system by name
	// Trigger: Simulation.SetSystemEnabled
	// Consumer: HostileSystem, MovementSystem, AppendageSystem, PuzzleSystem, CountdownSystem, EconomySystem | Payload: *SystemTogglePayload
	EventSystemToggle
)

// GameEvent is a single routed event
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
}
