package racecontrol

// SeenSet is the store of already-picked-up message identities.
type SeenSet interface {
	Add(key string)
	Has(key string) bool
}

type Dedup struct {
	seen SeenSet
}

func NewDedup(seen SeenSet) *Dedup {
	return &Dedup{seen: seen}
}

// Filter returns the messages of batch whose identity has not been seen and
// marks them seen immediately. Marking happens before publishing: a failed
// publish drops the message, it is never redelivered.
func (d *Dedup) Filter(batch []Message) []Message {
	var fresh []Message
	for _, msg := range batch {
		key := msg.Key()
		if d.seen.Has(key) {
			continue
		}

		d.seen.Add(key)
		fresh = append(fresh, msg)
	}
	return fresh
}
