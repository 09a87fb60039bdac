package client

import (
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/gorilla/websocket"
)

// ProtocolError is a rejection reported by the server (or raised locally when
// a request would be rejected without a round trip). It never indicates a
// broken connection.
type ProtocolError struct {
	Op      string
	Message string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s rejected: %s", e.Op, e.Message)
}

// AsProtocolError unwraps err into a ProtocolError if it is one.
func AsProtocolError(err error) (*ProtocolError, bool) {
	var perr *ProtocolError
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}

// IsClosed reports whether err means the connection is gone. A closed
// connection ends the agent's session; it is not retried here.
func IsClosed(err error) bool {
	if err == nil {
		return false
	}
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		return true
	}
	if websocket.IsUnexpectedCloseError(err) {
		return true
	}
	if errors.Is(err, net.ErrClosed) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
