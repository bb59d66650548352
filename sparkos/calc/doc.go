// Package calc implements the calculator's expression buffer: an edit-by-key
// text buffer that stays parseable after every key press, plus a two-level
// (×÷ over +-) evaluator and the result formatter used to redisplay answers.
//
// An Engine is not safe for concurrent use. The calc task owns exactly one
// and feeds it key events in order.
package calc
