// Package idletimer tracks one cancellable delayed disconnect per guild.
//
// Arming replaces any earlier timer for the guild, cancelling is idempotent,
// and each armed timer carries a generation number so that a cancel racing a
// firing timer resolves to exactly one winner: whichever side removes the
// registry entry under the lock first.
package idletimer

import (
	"log"
	"sync"
	"time"
)

type entry struct {
	gen   uint64
	timer *time.Timer
}

// Controller owns all armed idle timers, keyed by guild ID.
// It is safe for concurrent use.
type Controller struct {
	mu    sync.Mutex
	gen   uint64
	armed map[string]*entry
}

// New creates an empty Controller.
func New() *Controller {
	return &Controller{armed: make(map[string]*entry)}
}

// Arm schedules onFire to run after delay. If a timer is already armed for
// the guild it is cancelled first, so at most one timer per guild ever holds
// the right to fire.
func (c *Controller) Arm(guildID string, delay time.Duration, onFire func()) {
	c.mu.Lock()
	if old, ok := c.armed[guildID]; ok {
		old.timer.Stop()
		log.Printf("[IdleTimer] Replacing armed timer | guild=%s", guildID)
	}
	c.gen++
	gen := c.gen
	e := &entry{gen: gen}
	e.timer = time.AfterFunc(delay, func() {
		c.fire(guildID, gen, onFire)
	})
	c.armed[guildID] = e
	c.mu.Unlock()
}

// Cancel disarms the guild's timer if one is armed. Calling it with no timer
// armed, or after the timer has already fired, is a no-op. It reports whether
// a timer was actually disarmed.
func (c *Controller) Cancel(guildID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.armed[guildID]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(c.armed, guildID)
	return true
}

// Armed reports whether the guild currently has a live timer.
func (c *Controller) Armed(guildID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.armed[guildID]
	return ok
}

// fire runs when the delayed task elapses. The generation check and the
// registry removal happen under the same lock as Cancel, so a timer that was
// cancelled or replaced after its task was scheduled never reaches onFire.
func (c *Controller) fire(guildID string, gen uint64, onFire func()) {
	c.mu.Lock()
	e, ok := c.armed[guildID]
	if !ok || e.gen != gen {
		c.mu.Unlock()
		return
	}
	delete(c.armed, guildID)
	c.mu.Unlock()

	log.Printf("[IdleTimer] Idle timeout elapsed | guild=%s", guildID)
	onFire()
}
