package dns

import (
	"fmt"

	"github.com/miekg/dns"
	"github.com/phayes/freeport"
)

// StartServer starts a miekg DNS server with the supplied handler and blocks until
// it is accepting queries.
func StartServer(net, serverAddr string, h dns.Handler) *dns.Server {
	srv := &dns.Server{Net: net, Addr: serverAddr, Handler: h}
	hasStarted := make(chan struct{})
	srv.NotifyStartedFunc = func() {
		hasStarted <- struct{}{}
	}

	go func() {
		err := srv.ListenAndServe()
		defer close(hasStarted)
		if err != nil { // Shutdown or real error?
			panic("Setup of Server failed:" + err.Error())
		}
	}()

	<-hasStarted // Wait for server, one way or the other

	return srv
}

// FreeAddr returns a loopback listen address on a port which was free at the time
// of the call, so parallel test packages don't collide on fixed ports.
func FreeAddr() string {
	port, err := freeport.GetFreePort()
	if err != nil {
		panic("freeport failed:" + err.Error())
	}

	return fmt.Sprintf("127.0.0.1:%d", port)
}
