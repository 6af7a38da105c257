package areatracker

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

// debugLog reports the rebuild timings of one Present.
func (s *Session) debugLog(stats PresentStats) {
	s.log().WithFields(logrus.Fields{
		"passes":    stats.Passes,
		"hittest":   stats.Elapsed[LayerHitTest],
		"map":       stats.Elapsed[LayerMap],
		"highlight": stats.Elapsed[LayerHighlight],
		"rebuilds":  stats.Rebuilds(),
	}).Debug("present")
	if stats.Passes > 1 {
		s.log().WithField("passes", stats.Passes).Debug("layer invalidated during rebuild")
	}
}

// debugDumpState logs the interaction state and every link after op.
func (s *Session) debugDumpState(op string) {
	type linkDump struct {
		ID     int
		Name   string
		Target int
		Label  string
	}
	var links []linkDump
	for _, r := range s.regions.All() {
		if l, ok := r.Link(); ok {
			links = append(links, linkDump{ID: r.ID, Name: r.Name, Target: l.Target, Label: l.Label})
		}
	}
	s.log().Debugf("%s: state %s links %s", op, spew.Sdump(s.engine.State()), spew.Sdump(links))
}
