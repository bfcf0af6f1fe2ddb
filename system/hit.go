package system

import (
	"github.com/mittubose/Grabby-Hand-rat-killer/component"
	"github.com/mittubose/Grabby-Hand-rat-killer/event"
	"github.com/mittubose/Grabby-Hand-rat-killer/parameter"
	"github.com/mittubose/Grabby-Hand-rat-killer/scene"
	"github.com/mittubose/Grabby-Hand-rat-killer/status"
	"github.com/mittubose/Grabby-Hand-rat-killer/vmath"
)

// Hit is the result of a hit query; Hostile and Static are mutually exclusive
type Hit struct {
	Hostile  *component.Hostile
	Static   scene.Handle
	Point    vmath.Vec3
	Distance float64
}

// Empty reports whether the query found nothing
func (h Hit) Empty() bool {
	return h.Hostile == nil && h.Static == scene.NoHandle
}

// HitResolver maps rays and points onto hostiles and static geometry and applies the consequences
type HitResolver struct {
	env       Env
	dir       *component.Directory
	geom      scene.Geometry
	hostiles  *HostileSystem
	economy   *EconomySystem
	threshold int

	statHits  *status.Counter
	statKills *status.Counter
}

// NewHitResolver wires the resolver; threshold is the kill count between boss spawns
func NewHitResolver(env Env, dir *component.Directory, geom scene.Geometry, hostiles *HostileSystem,
	economy *EconomySystem, threshold int) *HitResolver {
	if threshold <= 0 {
		threshold = parameter.BossKillThreshold
	}
	return &HitResolver{
		env:       env,
		dir:       dir,
		geom:      geom,
		hostiles:  hostiles,
		economy:   economy,
		threshold: threshold,

		statHits:  env.Status.Counters.Get("hit.hostile"),
		statKills: env.Status.Counters.Get("hit.kills"),
	}
}

// ResolvePoint returns the hostile whose body contains p
// The boss is tested first at its radius, then regulars in directory order
func (r *HitResolver) ResolvePoint(p vmath.Vec3) *component.Hostile {
	if b := r.dir.Boss(); b != nil && vmath.Distance(b.Position, p) < parameter.BossHitRadius {
		return b
	}
	for _, h := range r.dir.Regulars() {
		if vmath.Distance(h.Position, p) < parameter.RegularHitRadius {
			return h
		}
	}
	return nil
}

// ResolveRay finds the nearest intersection along ray within maxDist and resolves it to a hostile or a static handle
func (r *HitResolver) ResolveRay(ray vmath.Ray, maxDist float64) Hit {
	if !ray.Valid() || maxDist <= 0 {
		return Hit{}
	}
	best := Hit{Distance: maxDist}
	found := false

	if statics := r.geom.RayIntersect(ray, maxDist); len(statics) > 0 {
		best = Hit{Static: statics[0].Handle, Point: statics[0].Point, Distance: statics[0].Distance}
		found = true
	}

	for _, h := range r.dir.All() {
		radius := parameter.RegularHitRadius
		if h.Kind == component.HostileBoss {
			radius = parameter.BossHitRadius
		}
		t := ray.Dir.Dot(h.Position.Sub(ray.Origin))
		if t < 0 || t > maxDist || (found && t >= best.Distance) {
			continue
		}
		p := ray.At(t)
		if vmath.Distance(p, h.Position) >= radius {
			continue
		}
		best = Hit{Point: p, Distance: t}
		found = true
	}
	if !found {
		return Hit{}
	}
	if h := r.ResolvePoint(best.Point); h != nil {
		best.Hostile = h
		best.Static = scene.NoHandle
	}
	return best
}

// Apply damages the hostile in hit and settles kill rewards and the boss trigger
// Returns true when the hit killed its target
func (r *HitResolver) Apply(hit Hit) bool {
	h := hit.Hostile
	if h == nil || !h.IsAlive() {
		return false
	}
	r.statHits.Inc()
	if !r.hostiles.Damage(h, hit.Point, parameter.HitDamage) {
		return false
	}
	r.statKills.Inc()
	reward, kills := r.economy.RewardKill(h.Kind)
	r.env.Queue.Emit(event.EventHostileKilled, &event.KillPayload{
		ID:    uint32(h.ID),
		Boss:  h.Kind == component.HostileBoss,
		Score: reward.Score,
		Coins: reward.Coins,
		XP:    reward.XP,
		Kills: kills,
	})
	if kills%r.threshold == 0 {
		r.hostiles.SpawnBoss()
	}
	return true
}
