package ringlog

import "sync/atomic"

// Stats is a read-only snapshot of sequencer progress, exposed as a
// plain struct rather than a wire endpoint.
type Stats struct {
	NextSequence uint64
	ScanPos      uint64
	SpinsOnClaim uint64
	SpinsOnFree  uint64
}

type sequencerStats struct {
	nextSequence atomic.Uint64
	scanPos      atomic.Uint64
	spinsClaimed atomic.Uint64
	spinsFree    atomic.Uint64
}

func (s *sequencerStats) snapshot() Stats {
	return Stats{
		NextSequence: s.nextSequence.Load(),
		ScanPos:      s.scanPos.Load(),
		SpinsOnClaim: s.spinsClaimed.Load(),
		SpinsOnFree:  s.spinsFree.Load(),
	}
}
