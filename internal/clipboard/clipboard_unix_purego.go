//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"errors"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var (
	initOnce sync.Once
	initErr  error
	owner    *selectionOwner
)

var errNotOwner = errors.New("another client kept the CLIPBOARD selection")

func ensureInit() error {
	initOnce.Do(func() {
		if !hasDisplay() {
			initErr = errNoDisplay
			return
		}
		owner, initErr = newSelectionOwner()
	})
	return initErr
}

// WriteImage takes the CLIPBOARD selection on the X server and serves data as
// image/png until another client claims it. The returned channel is closed
// at that point.
func WriteImage(data []byte) (<-chan struct{}, error) {
	if err := checkPNG(data); err != nil {
		return nil, err
	}
	if err := ensureInit(); err != nil {
		return nil, err
	}
	return owner.offer(data)
}

type atoms struct {
	clipboard xproto.Atom
	targets   xproto.Atom
	incr      xproto.Atom
	png       xproto.Atom
}

// incrTransfer is a PNG being sent to one requestor in chunks, one per
// deletion of the target property.
type incrTransfer struct {
	requestor xproto.Window
	property  xproto.Atom
	data      []byte
	sent      int
}

// selectionOwner serves the CLIPBOARD selection from a 1x1 unmapped window.
// Transfers are only touched from the event loop goroutine.
type selectionOwner struct {
	conn      *xgb.Conn
	window    xproto.Window
	atoms     atoms
	chunkSize int

	mu       sync.Mutex
	data     []byte
	released chan struct{}

	transfers map[xproto.Window]*incrTransfer
}

func newSelectionOwner() (*selectionOwner, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, err
	}
	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	err = xproto.CreateWindowChecked(conn, screen.RootDepth, window, screen.Root,
		0, 0, 1, 1, 0, xproto.WindowClassInputOutput, screen.RootVisual,
		xproto.CwEventMask, []uint32{xproto.EventMaskPropertyChange}).Check()
	if err != nil {
		conn.Close()
		return nil, err
	}
	a, err := internAtoms(conn)
	if err != nil {
		xproto.DestroyWindow(conn, window)
		conn.Close()
		return nil, err
	}
	o := &selectionOwner{
		conn:      conn,
		window:    window,
		atoms:     a,
		chunkSize: chunkSize(setup.MaximumRequestLength),
		transfers: make(map[xproto.Window]*incrTransfer),
	}
	go o.loop()
	return o, nil
}

func internAtoms(conn *xgb.Conn) (atoms, error) {
	names := []string{"CLIPBOARD", "TARGETS", "INCR", "image/png"}
	got := make([]xproto.Atom, len(names))
	for i, name := range names {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			return atoms{}, err
		}
		got[i] = reply.Atom
	}
	return atoms{clipboard: got[0], targets: got[1], incr: got[2], png: got[3]}, nil
}

// chunkSize returns how many payload bytes fit in one ChangeProperty request.
// The server limit is given in 4-byte units and the request header takes 24
// bytes.
func chunkSize(maxRequestUnits uint16) int {
	n := int(maxRequestUnits)*4 - 24
	if n < 4096 {
		return 4096
	}
	return n &^ 3
}

func (o *selectionOwner) offer(data []byte) (<-chan struct{}, error) {
	released := make(chan struct{})
	o.mu.Lock()
	prev := o.released
	o.data = append([]byte(nil), data...)
	o.released = released
	o.mu.Unlock()
	if prev != nil {
		close(prev)
	}

	err := xproto.SetSelectionOwnerChecked(o.conn, o.window, o.atoms.clipboard, xproto.TimeCurrentTime).Check()
	if err == nil {
		var reply *xproto.GetSelectionOwnerReply
		if reply, err = xproto.GetSelectionOwner(o.conn, o.atoms.clipboard).Reply(); err == nil && reply.Owner != o.window {
			err = errNotOwner
		}
	}
	if err != nil {
		o.release()
		return nil, err
	}
	return released, nil
}

func (o *selectionOwner) release() {
	o.mu.Lock()
	ch := o.released
	o.data = nil
	o.released = nil
	o.mu.Unlock()
	if ch != nil {
		close(ch)
	}
}

func (o *selectionOwner) payload() []byte {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.data
}

func (o *selectionOwner) loop() {
	for {
		ev, err := o.conn.WaitForEvent()
		if ev == nil && err == nil {
			o.release()
			return
		}
		switch e := ev.(type) {
		case xproto.SelectionRequestEvent:
			o.answer(e)
		case xproto.SelectionClearEvent:
			o.release()
		case xproto.PropertyNotifyEvent:
			if e.State == xproto.PropertyDelete {
				o.continueTransfer(e.Window, e.Atom)
			}
		}
	}
}

// answer replies to one SelectionRequest. Payloads larger than a single
// request are announced with INCR and streamed by continueTransfer.
func (o *selectionOwner) answer(e xproto.SelectionRequestEvent) {
	property := e.Property
	if property == xproto.AtomNone {
		property = e.Target
	}
	data := o.payload()

	switch {
	case e.Target == o.atoms.targets:
		targets := []xproto.Atom{o.atoms.targets}
		if len(data) > 0 {
			targets = append(targets, o.atoms.png)
		}
		xproto.ChangeProperty(o.conn, xproto.PropModeReplace, e.Requestor, property,
			xproto.AtomAtom, 32, uint32(len(targets)), atomBytes(targets))
	case e.Target == o.atoms.png && len(data) > o.chunkSize:
		xproto.ChangeWindowAttributes(o.conn, e.Requestor, xproto.CwEventMask,
			[]uint32{xproto.EventMaskPropertyChange})
		size := make([]byte, 4)
		xgb.Put32(size, uint32(len(data)))
		xproto.ChangeProperty(o.conn, xproto.PropModeReplace, e.Requestor, property,
			o.atoms.incr, 32, 1, size)
		o.transfers[e.Requestor] = &incrTransfer{requestor: e.Requestor, property: property, data: data}
	case e.Target == o.atoms.png && len(data) > 0:
		xproto.ChangeProperty(o.conn, xproto.PropModeReplace, e.Requestor, property,
			o.atoms.png, 8, uint32(len(data)), data)
	default:
		property = xproto.AtomNone
	}

	notify := xproto.SelectionNotifyEvent{
		Time:      e.Time,
		Requestor: e.Requestor,
		Selection: e.Selection,
		Target:    e.Target,
		Property:  property,
	}
	xproto.SendEvent(o.conn, false, e.Requestor, 0, string(notify.Bytes()))
}

// continueTransfer sends the next chunk once the requestor has deleted the
// previous one. The zero-length chunk ends the transfer.
func (o *selectionOwner) continueTransfer(window xproto.Window, property xproto.Atom) {
	t, ok := o.transfers[window]
	if !ok || t.property != property {
		return
	}
	chunk := nextChunk(t.data, t.sent, o.chunkSize)
	xproto.ChangeProperty(o.conn, xproto.PropModeReplace, t.requestor, t.property,
		o.atoms.png, 8, uint32(len(chunk)), chunk)
	t.sent += len(chunk)
	if len(chunk) == 0 {
		delete(o.transfers, window)
		xproto.ChangeWindowAttributes(o.conn, window, xproto.CwEventMask, []uint32{xproto.EventMaskNoEvent})
	}
}

func nextChunk(data []byte, sent, size int) []byte {
	if sent >= len(data) {
		return nil
	}
	end := sent + size
	if end > len(data) {
		end = len(data)
	}
	return data[sent:end]
}

func atomBytes(list []xproto.Atom) []byte {
	buf := make([]byte, len(list)*4)
	for i, a := range list {
		xgb.Put32(buf[i*4:], uint32(a))
	}
	return buf
}
