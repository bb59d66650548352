package logger

import (
	"fmt"

	"sparkcalc/hal"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"
)

// Service drains its endpoint into the HAL logger.
type Service struct {
	log hal.Logger
	ep  kernel.Capability
}

func New(log hal.Logger, ep kernel.Capability) *Service {
	return &Service{log: log, ep: ep}
}

func (s *Service) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(s.ep)
	if !ok {
		return
	}
	for msg := range ch {
		s.handle(msg)
	}
}

func (s *Service) handle(msg kernel.Message) {
	if s.log == nil {
		return
	}
	switch proto.Kind(msg.Kind) {
	case proto.MsgLogLine:
		s.log.WriteLineBytes(msg.Payload())
	case proto.MsgCalcResult:
		status, expr, result, ok := proto.DecodeCalcResultPayload(msg.Payload())
		if !ok {
			s.log.WriteLineString("logger: bad calc_result payload")
			return
		}
		if status == proto.CalcOK {
			s.log.WriteLineString(fmt.Sprintf("calc result: %s = %s", expr, result))
			return
		}
		s.log.WriteLineString(fmt.Sprintf("calc result: %s: %s", expr, status))
	}
}
