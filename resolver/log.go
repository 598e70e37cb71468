package resolver

import (
	"github.com/miekg/dns"

	"github.com/nsweep/nsweep/dnsutil"
	"github.com/nsweep/nsweep/log"
)

// LogQueryQ logs the question given to miekg Exchange. Exported for the mock
// resolver. Caller should test for log.IfDebug() prior to calling.
func LogQueryQ(net, server string, q dns.Question) {
	log.Debugf("miekg Q:%s/%s q=%s", net, server, dnsutil.PrettyQuestion(q))
}

// LogQueryA logs the answer returned by miekg Exchange. See above.
func LogQueryA(server string, question dns.Question, r *dns.Msg, err error) {
	if err == nil {
		log.Debug("miekg A:", dnsutil.PrettyMsg(r))
	} else {
		log.Debugf("miekg E:%s/%s/%s %s",
			server, dnsutil.ChompCanonicalName(question.Name),
			dns.TypeToString[question.Qtype],
			dnsutil.ShortenLookupError(err).Error())
	}
}
