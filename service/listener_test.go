package service

import "net"

// newLocalListener listens on an ephemeral loopback port.
func newLocalListener() (net.Listener, error) {
	return net.Listen("tcp", "127.0.0.1:0")
}
