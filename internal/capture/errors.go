package capture

import (
	"errors"
	"fmt"
)

// Stage names the step of a capture that failed.
type Stage string

const (
	StageConnect   Stage = "connect"
	StageConstruct Stage = "construct message"
	StageCall      Stage = "send call"
	StageReply     Stage = "parse reply"
	StageEncode    Stage = "encode"
	StageDecode    Stage = "decode"
	StageWrite     Stage = "write"
)

const busHint = "is Way Cooler running?"

// ErrMalformedReply is wrapped by every ReplyShapeError.
var ErrMalformedReply = errors.New("malformed reply")

// ConnectionError reports that the session bus could not be reached.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s: could not connect to D-Bus: %v", StageConnect, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// CallError reports a failure to build or complete a remote method call.
type CallError struct {
	Method string
	Stage  Stage
	Err    error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s %s: %v -- %s", e.Stage, e.Method, e.Err, busHint)
}

func (e *CallError) Unwrap() error { return e.Err }

// ReplyShapeError reports a reply that arrived but did not have the expected type.
type ReplyShapeError struct {
	Method string
	Want   string
	Got    interface{}
}

func (e *ReplyShapeError) Error() string {
	if e.Got == nil {
		return fmt.Sprintf("%s %s: %v: want %s, got empty reply", StageReply, e.Method, ErrMalformedReply, e.Want)
	}
	if v, ok := e.Got.(fmt.Stringer); ok {
		return fmt.Sprintf("%s %s: %v: want %s, got %s", StageReply, e.Method, ErrMalformedReply, e.Want, v)
	}
	return fmt.Sprintf("%s %s: %v: want %s, got %T", StageReply, e.Method, ErrMalformedReply, e.Want, e.Got)
}

func (e *ReplyShapeError) Unwrap() error { return ErrMalformedReply }

// EncodeError reports a failure turning pixels into the final PNG.
type EncodeError struct {
	Stage Stage
	Err   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%s image: %v", e.Stage, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// IOError reports a failure persisting the image.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s %q: %v", StageWrite, e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func shapeError(method, want string, reply []interface{}) error {
	var got interface{}
	if len(reply) > 0 {
		got = reply[0]
	}
	return &ReplyShapeError{Method: method, Want: want, Got: got}
}
