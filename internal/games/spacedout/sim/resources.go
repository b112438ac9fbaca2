package sim

import "github.com/vovakirdan/spacedout/internal/core"

// Resources is the session-wide economy.
type Resources struct {
	Score        int     `msgpack:"score"`
	Money        int     `msgpack:"money"`
	Charge       int     `msgpack:"charge"`
	SpaceoutTime float64 `msgpack:"spaceout_time"` // > 0 while the freeze is active
}

func newResources(t RewardTuning) Resources {
	return Resources{Money: t.StartingMoney}
}

// SpaceoutActive reports whether enemies are frozen.
func (r Resources) SpaceoutActive() bool {
	return r.SpaceoutTime > 0
}

// award credits a frame's kills. worth is the summed Worth of the removed enemies.
func (r *Resources) award(killed, worth int, rw RewardTuning, maxCharge int) {
	if killed <= 0 {
		return
	}
	r.Score += killed * rw.ScorePerKill
	r.Money += worth
	r.Charge = core.Clamp(r.Charge+killed*rw.ChargePerKill, 0, maxCharge)
}

// activate spends a full charge. It only succeeds at exactly maxCharge.
func (r *Resources) activate(st SpaceoutTuning) bool {
	if r.Charge != st.MaxCharge {
		return false
	}
	r.SpaceoutTime = st.Duration
	r.Charge = 0
	return true
}

// decay counts the freeze down by dt.
func (r *Resources) decay(dt float64) {
	if r.SpaceoutTime > 0 {
		r.SpaceoutTime -= dt
	}
}
