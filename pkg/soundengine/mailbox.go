package soundengine

import "sync"

// Mailbox carries callback payloads from the audio thread to the game
// thread. Callbacks push into it and the game loop drains it once per frame.
type Mailbox struct {
	infos []CallbackInfo
	mu    sync.Mutex
}

func NewMailbox() *Mailbox {
	return &Mailbox{infos: make([]CallbackInfo, 0, 64)}
}

// Push queues info. It never blocks on the consumer.
func (m *Mailbox) Push(info CallbackInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.infos = append(m.infos, info)
}

// Callback returns a CallbackFunc that pushes every payload into m.
func (m *Mailbox) Callback() CallbackFunc {
	return m.Push
}

// Drain returns the queued payloads in arrival order and empties the
// mailbox.
func (m *Mailbox) Drain() []CallbackInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.infos) == 0 {
		return nil
	}
	out := make([]CallbackInfo, len(m.infos))
	copy(out, m.infos)
	m.infos = m.infos[:0]
	return out
}

func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.infos)
}
