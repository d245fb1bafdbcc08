package capture

import (
	"context"
	"fmt"
)

// Methods used to discover the output to capture.
const (
	MethodActiveScreen = "ActiveScreen"
	MethodList         = "List"
	MethodResolution   = "Resolution"
)

// Resolution is the size of an output in pixels.
type Resolution struct {
	Width  uint32
	Height uint32
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Valid reports whether both dimensions are positive.
func (r Resolution) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// ActiveOutput asks the compositor which output to capture. method is either
// MethodActiveScreen or MethodList; both reply shapes are accepted from either.
func ActiveOutput(ctx context.Context, c Caller, method string) (string, error) {
	if method == "" {
		method = MethodActiveScreen
	}
	reply, err := c.Call(ctx, Screen(method))
	if err != nil {
		return "", err
	}
	if len(reply) == 0 {
		return "", shapeError(method, "output id", reply)
	}
	switch v := reply[0].(type) {
	case string:
		return v, nil
	case []string:
		if len(v) == 0 {
			return "", &ReplyShapeError{Method: method, Want: "non-empty output list", Got: v}
		}
		return v[0], nil
	default:
		return "", shapeError(method, "string output id", reply)
	}
}

// OutputResolution asks the compositor for the size of output.
func OutputResolution(ctx context.Context, c Caller, output string) (Resolution, error) {
	reply, err := c.Call(ctx, Screen(MethodResolution), output)
	if err != nil {
		return Resolution{}, err
	}
	if len(reply) == 0 {
		return Resolution{}, shapeError(MethodResolution, "(uu) struct", reply)
	}
	fields, ok := reply[0].([]interface{})
	if !ok || len(fields) != 2 {
		return Resolution{}, shapeError(MethodResolution, "(uu) struct", reply)
	}
	w, ok := fields[0].(uint32)
	if !ok {
		return Resolution{}, &ReplyShapeError{Method: MethodResolution, Want: "uint32 width", Got: fields[0]}
	}
	h, ok := fields[1].(uint32)
	if !ok {
		return Resolution{}, &ReplyShapeError{Method: MethodResolution, Want: "uint32 height", Got: fields[1]}
	}
	res := Resolution{Width: w, Height: h}
	if !res.Valid() {
		return Resolution{}, &ReplyShapeError{Method: MethodResolution, Want: "positive resolution", Got: res}
	}
	return res, nil
}

// Resolve runs both discovery calls and returns the output id with its size.
func Resolve(ctx context.Context, c Caller, method string) (string, Resolution, error) {
	output, err := ActiveOutput(ctx, c, method)
	if err != nil {
		return "", Resolution{}, err
	}
	res, err := OutputResolution(ctx, c, output)
	if err != nil {
		return "", Resolution{}, err
	}
	return output, res, nil
}
