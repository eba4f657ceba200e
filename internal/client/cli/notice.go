package cli

import (
	"sync"
	"time"
)

// Notice is a transient message that clears itself after a delay.
type Notice struct {
	mu    sync.Mutex
	delay time.Duration
	text  string
	timer *time.Timer
	seq   uint64
}

func NewNotice(delay time.Duration) *Notice {
	return &Notice{delay: delay}
}

// Show replaces the current message and restarts the clear timer.
// A non-positive delay keeps the message until the next Show or Clear.
func (n *Notice) Show(text string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.seq++
	n.text = text
	if n.delay <= 0 {
		return
	}

	seq := n.seq
	n.timer = time.AfterFunc(n.delay, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		// A later Show owns the message now.
		if n.seq == seq {
			n.text = ""
			n.timer = nil
		}
	})
}

func (n *Notice) Text() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.text
}

func (n *Notice) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.seq++
	n.text = ""
}
