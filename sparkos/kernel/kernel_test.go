package kernel

import (
	"testing"
	"time"
)

func TestMessagePayloadClampsLen(t *testing.T) {
	var msg Message
	msg.Len = MaxMessageBytes + 10
	if got := len(msg.Payload()); got != MaxMessageBytes {
		t.Fatalf("expected payload length %d, got %d", MaxMessageBytes, got)
	}
}

func TestCapabilityRestrict(t *testing.T) {
	k := New()
	c := k.NewEndpoint(RightSend | RightRecv)
	if !c.Restrict(RightRecv).canRecv() || c.Restrict(RightRecv).canSend() {
		t.Fatal("Restrict(RightRecv) kept the wrong rights")
	}
	if c.Restrict(0).Valid() {
		t.Fatal("Restrict(0) should be invalid")
	}
	if (Capability{}).Restrict(RightSend).Valid() {
		t.Fatal("restricting an invalid capability should stay invalid")
	}
}

func TestSendRejectsBadCapabilities(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	ctx := &Context{k: k, taskID: 1}

	if res := ctx.SendToCapResult(Capability{}, 1, nil, Capability{}); res != SendErrInvalidToCap {
		t.Fatalf("expected SendErrInvalidToCap, got %s", res)
	}
	if res := ctx.SendToCapResult(ep.Restrict(RightRecv), 1, nil, Capability{}); res != SendErrToNoSendRight {
		t.Fatalf("expected SendErrToNoSendRight, got %s", res)
	}
	big := make([]byte, MaxMessageBytes+1)
	if res := ctx.SendToCapResult(ep, 1, big, Capability{}); res != SendErrPayloadTooLarge {
		t.Fatalf("expected SendErrPayloadTooLarge, got %s", res)
	}
	if _, ok := ctx.RecvChan(ep.Restrict(RightSend)); ok {
		t.Fatal("RecvChan without recv right should fail")
	}
}

func TestSendRecvRoundTrip(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	ctx := &Context{k: k, taskID: 1}

	ch, ok := ctx.RecvChan(ep.Restrict(RightRecv))
	if !ok {
		t.Fatal("expected recv channel")
	}
	select {
	case msg := <-ch:
		t.Fatalf("unexpected message %+v on empty endpoint", msg)
	default:
	}
	if res := ctx.SendToCapResult(ep.Restrict(RightSend), 7, []byte("hi"), Capability{}); res != SendOK {
		t.Fatalf("SendToCapResult=%v, want %v", res, SendOK)
	}
	msg := <-ch
	if msg.Kind != 7 || string(msg.Payload()) != "hi" {
		t.Fatalf("msg=%+v, want kind 7 payload hi", msg)
	}
}

func TestSendToCapRetryZeroLimitDoesNotBlock(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	if !ep.Valid() {
		t.Fatal("expected valid capability")
	}

	ctx := &Context{k: k, taskID: 1}
	to := ep.Restrict(RightSend)

	for i := 0; i < mailboxSlots; i++ {
		if res := ctx.SendToCapResult(to, 1, []byte("x"), Capability{}); res != SendOK {
			t.Fatalf("expected SendOK filling queue, got %s", res)
		}
	}

	res := ctx.SendToCapRetry(to, 1, []byte("y"), Capability{}, 0)
	if res != SendErrQueueFull {
		t.Fatalf("expected SendErrQueueFull, got %s", res)
	}
}

func TestSendToCapRetrySucceedsAfterDrain(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	ctx := &Context{k: k, taskID: 1}
	to := ep.Restrict(RightSend)
	ch, ok := ctx.RecvChan(ep.Restrict(RightRecv))
	if !ok || ch == nil {
		t.Fatal("expected recv channel")
	}

	for i := 0; i < mailboxSlots; i++ {
		if res := ctx.SendToCapResult(to, 1, []byte("x"), Capability{}); res != SendOK {
			t.Fatalf("expected SendOK filling queue, got %s", res)
		}
	}

	resultCh := make(chan SendResult, 1)
	go func() {
		resultCh <- ctx.SendToCapRetry(to, 1, []byte("y"), Capability{}, 5)
	}()

	<-ch
	go func() {
		for i := uint64(1); i <= 10; i++ {
			k.TickTo(i)
			time.Sleep(1 * time.Millisecond)
		}
	}()

	select {
	case res := <-resultCh:
		if res != SendOK {
			t.Fatalf("expected SendOK after drain, got %s", res)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timed out waiting for send retry")
	}
}

func TestSendToCapRetryRespectsLimit(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	ctx := &Context{k: k, taskID: 1}
	to := ep.Restrict(RightSend)

	for i := 0; i < mailboxSlots; i++ {
		if res := ctx.SendToCapResult(to, 1, []byte("x"), Capability{}); res != SendOK {
			t.Fatalf("expected SendOK filling queue, got %s", res)
		}
	}

	resultCh := make(chan SendResult, 1)
	go func() {
		resultCh <- ctx.SendToCapRetry(to, 1, []byte("y"), Capability{}, 1)
	}()

	go func() {
		for i := uint64(1); i <= 10; i++ {
			k.TickTo(i)
			time.Sleep(1 * time.Millisecond)
		}
	}()

	select {
	case res := <-resultCh:
		if res != SendErrQueueFull {
			t.Fatalf("expected SendErrQueueFull, got %s", res)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timed out waiting for send retry")
	}
}

type funcTask func(*Context)

func (f funcTask) Run(ctx *Context) { f(ctx) }

func TestAddTaskRecoversPanic(t *testing.T) {
	got := make(chan PanicInfo, 1)
	SetPanicHandler(func(info PanicInfo) { got <- info })

	k := New()
	id, ok := k.AddTask(funcTask(func(*Context) { panic("boom") }))
	if !ok {
		t.Fatal("AddTask failed")
	}
	k.wait()

	select {
	case info := <-got:
		if info.TaskID != id || info.Value != "boom" || len(info.Stack) == 0 {
			t.Fatalf("PanicInfo=%+v, want task %d value boom with stack", info, id)
		}
	case <-time.After(time.Second):
		t.Fatal("panic handler not called")
	}
	if !inPanicMode() {
		t.Fatal("inPanicMode() = false after task panic")
	}
}

func TestWaitTick(t *testing.T) {
	k := New()
	ctx := &Context{k: k}
	done := make(chan uint64, 1)
	go func() { done <- ctx.WaitTick(0) }()
	k.TickTo(3)
	k.TickTo(2)
	select {
	case got := <-done:
		if got != 3 {
			t.Fatalf("WaitTick=%d, want 3", got)
		}
	case <-time.After(time.Second):
		t.Fatal("WaitTick did not return")
	}
	if ctx.NowTick() != 3 {
		t.Fatalf("NowTick=%d, want 3", ctx.NowTick())
	}
}
