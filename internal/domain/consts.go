package domain

import "time"

// Team factions a trainer can belong to. Each maps to a role (Discord) or a
// user group (Slack) with the same name.
const (
	FactionMystic   = "Mystic"
	FactionValor    = "Valor"
	FactionInstinct = "Instinct"
)

// Factions lists every faction in the order attendee markers are checked.
var Factions = []string{FactionMystic, FactionValor, FactionInstinct}

// Platform names used to scope channels and faction lookups.
const (
	PlatformSlack   = "slack"
	PlatformDiscord = "discord"
)

const (
	// DefaultRaidDuration is how long a raid without a usable start or end
	// time stays listed.
	DefaultRaidDuration = 2 * time.Hour

	// DefaultSweepInterval is how often expired raids are evicted.
	DefaultSweepInterval = 6 * time.Second

	// ExpireOnStartTime evicts a raid once its start time has passed, not
	// only once its end time has. Kept as the default so existing channels
	// see the same lifecycle; set RAID_EXPIRE_ON_START=false to keep raids
	// listed while they are running.
	ExpireOnStartTime = true
)

// UnknownValue is shown for raid fields nobody has filled in yet.
const UnknownValue = "????"
