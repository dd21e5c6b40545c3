package render

import "time"

// debugStats holds per-frame draw metrics. Only collected when the scene
// runs in debug mode.
type debugStats struct {
	frame     uint64
	commands  int
	culled    int
	respawns  uint64
	buildTime time.Duration
}

// debugLog writes the stats at debug level.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	s.logger.Debug("frame",
		"n", stats.frame,
		"commands", stats.commands,
		"culled", stats.culled,
		"respawns", stats.respawns,
		"build", stats.buildTime,
	)
}

