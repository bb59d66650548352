package kernel

import "sync"

const (
	maxTasks     = 32
	maxEndpoints = 32
	mailboxSlots = 8
)

type TaskID uint8

// Rights define which operations are allowed for a capability.
type Rights uint8

const (
	RightSend Rights = 1 << iota
	RightRecv
)

// Endpoint identifies an IPC destination.
type Endpoint uint8

// Capability grants access to an IPC endpoint.
//
// It is opaque by construction (no exported fields) and may be transferred via IPC.
type Capability struct {
	ep     Endpoint
	rights Rights
}

func (c Capability) valid() bool {
	return c.rights != 0
}

func (c Capability) Valid() bool { return c.valid() }

func (c Capability) canSend() bool { return c.rights&RightSend != 0 }
func (c Capability) canRecv() bool { return c.rights&RightRecv != 0 }

// Restrict returns a capability with a reduced set of rights.
func (c Capability) Restrict(rights Rights) Capability {
	if !c.valid() {
		return Capability{}
	}
	r := c.rights & rights
	if r == 0 {
		return Capability{}
	}
	return Capability{ep: c.ep, rights: r}
}

// MaxMessageBytes is the maximum payload size for IPC messages.
const MaxMessageBytes = 128

// Message is a fixed-size IPC envelope.
type Message struct {
	From Endpoint
	To   Endpoint
	Kind uint16
	Len  uint16
	Data [MaxMessageBytes]byte
	Cap  Capability
}

// Payload returns the used part of Data. Len is clamped to MaxMessageBytes.
func (m *Message) Payload() []byte {
	n := int(m.Len)
	if n > MaxMessageBytes {
		n = MaxMessageBytes
	}
	return m.Data[:n]
}

// SendResult describes the outcome of a send attempt.
type SendResult uint8

const (
	SendOK SendResult = iota
	SendErrInvalidToCap
	SendErrToNoSendRight
	SendErrNoEndpoint
	SendErrPayloadTooLarge
	SendErrQueueFull
)

func (r SendResult) String() string {
	switch r {
	case SendOK:
		return "ok"
	case SendErrInvalidToCap:
		return "invalid to capability"
	case SendErrToNoSendRight:
		return "to capability has no send right"
	case SendErrNoEndpoint:
		return "no such endpoint"
	case SendErrPayloadTooLarge:
		return "payload too large"
	case SendErrQueueFull:
		return "queue full"
	default:
		return "unknown"
	}
}

// Task is a unit of execution. Run owns its goroutine until it returns.
type Task interface {
	Run(*Context)
}

type endpointState struct {
	ch chan Message
}

// Kernel routes IPC between tasks and distributes the tick clock.
//
// Each task runs on its own goroutine; a task that panics is stopped and
// reported through the panic handler.
type Kernel struct {
	mu            sync.Mutex
	endpoints     [maxEndpoints]endpointState
	endpointCount Endpoint
	taskCount     TaskID

	tickMu   sync.Mutex
	tickCond *sync.Cond
	tick     uint64

	wg sync.WaitGroup
}

// New creates a kernel instance.
func New() *Kernel {
	k := &Kernel{}
	k.tickCond = sync.NewCond(&k.tickMu)
	return k
}

// NewEndpoint allocates a new endpoint and returns a capability for it.
func (k *Kernel) NewEndpoint(rights Rights) Capability {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.endpointCount >= maxEndpoints {
		return Capability{}
	}
	ep := k.endpointCount
	k.endpointCount++
	k.endpoints[ep].ch = make(chan Message, mailboxSlots)
	return Capability{ep: ep, rights: rights}
}

// AddTask starts t on its own goroutine and returns its ID.
//
// It returns false when the task table is full.
func (k *Kernel) AddTask(t Task) (TaskID, bool) {
	k.mu.Lock()
	if k.taskCount >= maxTasks || t == nil {
		k.mu.Unlock()
		return 0, false
	}
	id := k.taskCount
	k.taskCount++
	k.mu.Unlock()

	k.wg.Add(1)
	go k.runTask(id, t)
	return id, true
}

func (k *Kernel) runTask(id TaskID, t Task) {
	defer k.wg.Done()
	defer func() {
		if v := recover(); v != nil {
			triggerPanic(PanicInfo{TaskID: id, Value: v})
		}
	}()
	t.Run(&Context{k: k, taskID: id})
}

// wait blocks until every task added so far has returned.
func (k *Kernel) wait() {
	k.wg.Wait()
}

// TickTo advances the tick clock to seq and wakes tick waiters.
// Older values are ignored.
func (k *Kernel) TickTo(seq uint64) {
	k.tickMu.Lock()
	if seq > k.tick {
		k.tick = seq
		k.tickCond.Broadcast()
	}
	k.tickMu.Unlock()
}

func (k *Kernel) nowTick() uint64 {
	k.tickMu.Lock()
	defer k.tickMu.Unlock()
	return k.tick
}

func (k *Kernel) waitTick(after uint64) uint64 {
	k.tickMu.Lock()
	defer k.tickMu.Unlock()
	for k.tick <= after {
		k.tickCond.Wait()
	}
	return k.tick
}

func (k *Kernel) endpointChan(ep Endpoint) chan Message {
	k.mu.Lock()
	defer k.mu.Unlock()
	if ep >= k.endpointCount {
		return nil
	}
	return k.endpoints[ep].ch
}

func (k *Kernel) send(from Endpoint, to Endpoint, kind uint16, payload []byte, xfer Capability) SendResult {
	ch := k.endpointChan(to)
	if ch == nil {
		return SendErrNoEndpoint
	}
	if len(payload) > MaxMessageBytes {
		return SendErrPayloadTooLarge
	}

	var msg Message
	msg.From = from
	msg.To = to
	msg.Kind = kind
	msg.Len = uint16(len(payload))
	copy(msg.Data[:], payload)
	msg.Cap = xfer

	select {
	case ch <- msg:
		return SendOK
	default:
		return SendErrQueueFull
	}
}
