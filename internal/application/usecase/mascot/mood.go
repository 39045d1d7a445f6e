// Package mascot resolves the storefront mascot's mood from sales activity.
package mascot

import "time"

// Mood is the mascot's animation state.
type Mood string

const (
	// MoodActive is the default awake state.
	MoodActive Mood = "active"
	// MoodHappy is shown briefly after a sale is registered.
	MoodHappy Mood = "happy"
	// MoodSleeping is shown after the configured idle timeout with no sales.
	MoodSleeping Mood = "sleeping"
)

// HappyWindow is how long a fresh sale keeps the mascot celebrating.
const HappyWindow = 5 * time.Second

// ResolveMood maps the time since the last sale onto a mood. The transitions
// form a single chain: happy right after a sale, active while recent, sleeping
// once idle for at least sleepSeconds. A merchant with no sales yet is active,
// never sleeping, so the first screen is welcoming.
func ResolveMood(lastSaleAt *time.Time, sleepSeconds int, now time.Time) Mood {
	if lastSaleAt == nil {
		return MoodActive
	}

	idle := now.Sub(*lastSaleAt)
	switch {
	case idle < 0:
		// Clock skew or a backdated future sale; treat as just sold.
		return MoodHappy
	case idle < HappyWindow:
		return MoodHappy
	case idle >= time.Duration(sleepSeconds)*time.Second:
		return MoodSleeping
	default:
		return MoodActive
	}
}
