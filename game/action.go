package game

// ActionKind enumerates semantic player input
type ActionKind int

const (
	ActionMove     ActionKind = iota // Forward, Right
	ActionLook                       // Yaw, Pitch
	ActionJump                       //
	ActionRun                        // On
	ActionShoot                      // Hand
	ActionRelease                    // Hand
	ActionInteract                   //
	ActionTileMove                   // Index
	ActionTileClose                  //
	ActionBuy                        // ItemID
	ActionEquip                      // ItemID
	ActionUse                        // ItemID
	ActionShop                       // On
	ActionPause                      //
	ActionSystem                     // System, On
)

var actionNames = map[ActionKind]string{
	ActionMove:      "move",
	ActionLook:      "look",
	ActionJump:      "jump",
	ActionRun:       "run",
	ActionShoot:     "shoot",
	ActionRelease:   "release",
	ActionInteract:  "interact",
	ActionTileMove:  "tile_move",
	ActionTileClose: "tile_close",
	ActionBuy:       "buy",
	ActionEquip:     "equip",
	ActionUse:       "use",
	ActionShop:      "shop",
	ActionPause:     "pause",
	ActionSystem:    "system",
}

func (k ActionKind) String() string {
	if s, ok := actionNames[k]; ok {
		return s
	}
	return "unknown"
}

// Action is one semantic input; only the fields relevant to Kind are read
type Action struct {
	Kind    ActionKind
	Forward float64
	Right   float64
	Yaw     float64
	Pitch   float64
	Hand    int
	Index   int
	ItemID  string
	System  string
	On      bool
}

// deferred reports whether the action acts on the world and must wait for the interaction stage
func (k ActionKind) deferred() bool {
	switch k {
	case ActionShoot, ActionRelease, ActionInteract, ActionTileMove, ActionTileClose:
		return true
	}
	return false
}
