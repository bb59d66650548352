package kernel

// Context provides task-local access to kernel operations.
type Context struct {
	k      *Kernel
	taskID TaskID
}

// RecvChan returns the inbound message channel for an endpoint capability.
func (c *Context) RecvChan(epCap Capability) (<-chan Message, bool) {
	if c == nil || c.k == nil || !epCap.valid() || !epCap.canRecv() {
		return nil, false
	}
	ch := c.k.endpointChan(epCap.ep)
	if ch == nil {
		return nil, false
	}
	return ch, true
}

// SendToCapResult sends a message and transfers an optional capability.
//
// The message From field is set to 0 (unknown).
func (c *Context) SendToCapResult(toCap Capability, kind uint16, payload []byte, xfer Capability) SendResult {
	if c == nil || c.k == nil || !toCap.valid() {
		return SendErrInvalidToCap
	}
	if !toCap.canSend() {
		return SendErrToNoSendRight
	}
	return c.k.send(0, toCap.ep, kind, payload, xfer)
}

// SendToCapRetry is SendToCapResult that waits out a full queue for up to
// limit ticks. A zero limit never waits.
func (c *Context) SendToCapRetry(toCap Capability, kind uint16, payload []byte, xfer Capability, limit uint64) SendResult {
	res := c.SendToCapResult(toCap, kind, payload, xfer)
	if res != SendErrQueueFull || limit == 0 {
		return res
	}
	last := c.NowTick()
	deadline := last + limit
	for res == SendErrQueueFull && last < deadline {
		last = c.WaitTick(last)
		res = c.SendToCapResult(toCap, kind, payload, xfer)
	}
	return res
}

// NowTick returns the last observed tick value.
func (c *Context) NowTick() uint64 {
	if c == nil || c.k == nil {
		return 0
	}
	return c.k.nowTick()
}

// WaitTick blocks until tick advances past the provided value and returns the new tick.
func (c *Context) WaitTick(after uint64) uint64 {
	if c == nil || c.k == nil {
		return 0
	}
	return c.k.waitTick(after)
}
