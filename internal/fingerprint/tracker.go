// Package fingerprint tracks per-local-message-type definition signatures so
// the decoder can tell a genuine redefinition (schema actually changed) apart
// from a harmless re-send of an identical definition record.
package fingerprint

// Tracker remembers the last xxHash64 signature observed for each of the 16
// local message type slots. It never rejects a redefinition — the FIT format
// allows any slot to be redefined at any time — it only classifies whether
// the new bytes differ from the previous ones occupying that slot.
type Tracker struct {
	signatures [16]uint64
	seen       [16]bool
	redefCount int
}

// NewTracker creates an empty fingerprint tracker for a fresh decode.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Observe records the signature for localType and reports whether this is a
// true redefinition: the slot was already populated and the new signature
// differs from the one it held. A same-signature re-send and a first-time
// definition both report false.
func (t *Tracker) Observe(localType uint8, signature uint64) (redefined bool) {
	if localType >= 16 {
		return false
	}

	if t.seen[localType] && t.signatures[localType] != signature {
		redefined = true
		t.redefCount++
	}

	t.signatures[localType] = signature
	t.seen[localType] = true

	return redefined
}

// RedefinitionCount returns the number of true schema redefinitions observed
// so far, i.e. cases where Observe returned true.
func (t *Tracker) RedefinitionCount() int {
	return t.redefCount
}

// Reset clears all tracked signatures, allowing the tracker to be reused for
// a new decode.
func (t *Tracker) Reset() {
	t.signatures = [16]uint64{}
	t.seen = [16]bool{}
	t.redefCount = 0
}
