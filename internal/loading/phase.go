package loading

// Phase is a labeled stage of the loading sequence, derived from progress.
type Phase int

// Phases in the order they are reached.
const (
	PhaseInitializing Phase = iota
	PhaseDecrypting
	PhaseLoadingData
	PhaseUplink
	PhaseGranted
)

// PhaseCount is the number of phases.
const PhaseCount = 5

// phaseWidth is the span of progress covered by each phase before the last.
const phaseWidth = 25

var phaseLabels = [PhaseCount]string{
	"INITIALIZING SYSTEMS",
	"DECRYPTING ARCHIVES",
	"LOADING AIRCRAFT DATA",
	"ESTABLISHING UPLINK",
	"ACCESS GRANTED",
}

// String returns the status label shown for the phase.
func (p Phase) String() string {
	if p < 0 || int(p) >= PhaseCount {
		return "UNKNOWN"
	}
	return phaseLabels[p]
}

// Labels returns the status labels in phase order.
func Labels() []string {
	out := make([]string, PhaseCount)
	copy(out, phaseLabels[:])
	return out
}

// PhaseFor maps progress to its phase: min(floor(progress/25), 4).
// Progress below zero maps to the first phase.
func PhaseFor(progress float64) Phase {
	if progress <= 0 {
		return PhaseInitializing
	}
	idx := int(progress / phaseWidth)
	if idx >= PhaseCount {
		idx = PhaseCount - 1
	}
	return Phase(idx)
}
