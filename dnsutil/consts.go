package dnsutil

const (
	TCPNetwork = "tcp" // miekg network names are lower-case, so consts
	UDPNetwork = "udp" // here avoid pernickety case errors

	MaxUDPSize uint16 = 1232 // Universally safe edns0 size on today's internet
)
