package event

var typeToName = map[EventType]string{
	EventNone:              "None",
	EventHostileSpawned:    "HostileSpawned",
	EventBossSpawned:       "BossSpawned",
	EventHostileHit:        "HostileHit",
	EventHostileKilled:     "HostileKilled",
	EventHostileRemoved:    "HostileRemoved",
	EventPlayerDamaged:     "PlayerDamaged",
	EventShotFired:         "ShotFired",
	EventGrappleAttached:   "GrappleAttached",
	EventGrappleReleased:   "GrappleReleased",
	EventLevelUp:           "LevelUp",
	EventTilePuzzleStarted: "TilePuzzleStarted",
	EventTilePuzzleSolved:  "TilePuzzleSolved",
	EventShopOpened:        "ShopOpened",
	EventItemPurchased:     "ItemPurchased",
	EventItemEquipped:      "ItemEquipped",
	EventItemUsed:          "ItemUsed",
	EventPuzzleSolved:      "PuzzleSolved",
	EventPuzzleBlocked:     "PuzzleBlocked",
	EventSwitchActivated:   "SwitchActivated",
	EventSwitchReset:       "SwitchReset",
	EventCountdownExpired:  "CountdownExpired",
	EventMessage:           "Message",
	EventGameOver:          "GameOver",
	EventPauseToggled:      "PauseToggled",
	EventSystemToggle:      "SystemToggle",
}

// String returns the registered name of the event type
func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "Unknown"
}

// GetEventType returns the EventType registered under name
func GetEventType(name string) (EventType, bool) {
	for t, n := range typeToName {
		if n == name {
			return t, true
		}
	}
	return EventNone, false
}
