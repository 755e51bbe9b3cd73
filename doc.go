/*
Package anybar controls an AnyBar status indicator over UDP.

AnyBar listens on a local UDP port (1738 by default) and interprets short
ASCII commands: a color name changes the displayed dot, "quit" terminates the
application. Commands are fire-and-forget; AnyBar never answers, so a nil
error only means the datagram was handed to the local network stack.

	bar := anybar.Default()
	if err := bar.SetColor(anybar.Red); err != nil {
		log.Fatal(err)
	}

Each send opens a short-lived UDP socket on 127.0.0.1 with an ephemeral source
port and closes it before returning. No socket is held between calls.
*/
package anybar
