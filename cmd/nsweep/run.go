package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/nsweep/nsweep/log"
	"github.com/nsweep/nsweep/osutil"
	"github.com/nsweep/nsweep/resolver"
	"github.com/nsweep/nsweep/scan"
	"github.com/nsweep/nsweep/wordlist"
)

const progressInterval = 100 * time.Millisecond

func (t *nsweep) wordlistName() string {
	if len(t.cfg.wordlistPath) > 0 {
		return t.cfg.wordlistPath
	}

	return "(embedded)"
}

// run executes one complete scan: wordlist load, resume merge, the scan itself
// and all reporting. The scan, the outcome consumer, the signal watcher and the
// progress display each get a go-routine; the scan go-routine closing the done
// channel is what winds the others up.
//
// The returned error means the run failed in a way worth a non-zero exit. An
// interrupted scan is not that: it reports partial results and returns nil.
func (t *nsweep) run() error {
	t.startTime = time.Now()

	if t.res == nil {
		t.res = resolver.New(resolver.Config{
			Servers:   t.cfg.servers,
			Timeout:   t.cfg.timeout,
			Tries:     t.cfg.retries,
			ForceTCP:  t.cfg.tcpFlag,
			NoCookies: t.cfg.noCookiesFlag,
		})
	}

	var words *wordlist.List
	var err error
	if len(t.cfg.wordlistPath) > 0 {
		words, err = wordlist.Load(t.cfg.wordlistPath)
		if err != nil {
			return err
		}
	} else {
		words = wordlist.Default()
	}
	allWords := words.Words()

	// Resume bookkeeping. Tracking is active whenever either state option is
	// present; a resumed run scans only the words the previous run never
	// finished and carries its found records forward into the final report.
	tracking := len(t.cfg.statePath) > 0 || len(t.cfg.resumePath) > 0
	scanWords := allWords
	var state *scanState
	var tracker *stateTracker
	var prior []stateRecord

	if len(t.cfg.resumePath) > 0 {
		state, err = loadState(t.cfg.resumePath)
		if err != nil {
			return err
		}
		if state.Target != t.cfg.domain {
			return fmt.Errorf("state file %s is for '%s', not '%s'",
				t.cfg.resumePath, state.Target, t.cfg.domain)
		}
		scanWords = state.remaining(allWords)
		prior = state.FoundRecords
		log.Infof("Resuming scan: %d completed, %d remaining",
			len(state.CompletedWords), len(scanWords))
	}
	if tracking {
		if state == nil {
			state = newScanState(t.cfg.domain, t.wordlistName(),
				t.cfg.types, len(allWords))
		}
		tracker = newStateTracker(state, t.cfg.domain, len(t.cfg.types))
	}

	log.Infof("Target: %s", t.cfg.domain)
	log.Infof("Wordlist: %s (%d entries)", t.wordlistName(), len(allWords))
	log.Infof("Threads: %d", t.cfg.threads)
	log.Infof("Record types: %s", typesString(t.cfg.types))
	if s, ok := t.res.(interface{ Servers() []string }); ok {
		log.Infof("Servers: %s", strings.Join(s.Servers(), ", "))
	}
	if t.cfg.rate > 0 {
		log.Infof("Rate limit: %v queries/sec", t.cfg.rate)
	}

	t.scanner, err = scan.New(scan.Config{
		Domain:           t.cfg.domain,
		Words:            wordlist.New(scanWords),
		Types:            t.cfg.types,
		Threads:          t.cfg.threads,
		QueriesPerSecond: t.cfg.rate,
		DetectWildcard:   t.cfg.wildcardFlag,
	}, t.res)
	if err != nil {
		return err
	}

	t.print.headline("\n--- Starting DNS Enumeration ---\n")

	showProgress := !t.cfg.noProgressFlag && !t.cfg.verboseFlag
	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(scanWords)*len(t.cfg.types),
			progressbar.OptionSetDescription("Scanning"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionFullWidth(),
		)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	osutil.SignalNotify(t.sig) // Register interest in signals

	events := make(chan scan.Outcome, t.cfg.threads)
	done := make(chan struct{})

	var result *scan.Result
	var g errgroup.Group

	g.Go(func() error {
		var rerr error
		result, rerr = t.scanner.Run(ctx, events)
		close(events)
		close(done)
		return rerr
	})

	// Outcome consumer. Feeds the resume tracker and, in verbose mode, prints
	// found records as they arrive rather than sorted at the end.
	g.Go(func() error {
		for o := range events {
			if tracker != nil {
				tracker.observe(o)
			}
			switch {
			case o.Kind == scan.KindResolved && t.cfg.verboseFlag:
				for _, v := range o.Values {
					t.print.found(formatResult(o.Type.String(), o.Candidate, v))
				}
			case o.Kind != scan.KindResolved && log.IfDebug():
				log.Debugf("%s %s %s %s",
					o.Kind.String(), o.Type.String(), o.Candidate, o.Detail)
			}
		}
		return nil
	})

	// Signal watcher. Stop signals cancel the scan, which flows back as a
	// Cancelled result; USR1 produces an immediate stats report.
	g.Go(func() error {
		for {
			select {
			case s := <-t.sig:
				switch {
				case osutil.IsSignalTERM(s), osutil.IsSignalINT(s):
					log.Warningf("Signal '%s' stops the scan", s)
					cancel()

				case osutil.IsSignalUSR1(s):
					t.statsReport()
				}

			case <-done:
				return nil
			}
		}
	})

	if bar != nil {
		g.Go(func() error {
			tick := time.NewTicker(progressInterval)
			defer tick.Stop()
			for {
				select {
				case <-tick.C:
					c := t.scanner.Stats()
					_ = bar.Set(c.Attempted + c.Skipped)

				case <-done:
					c := t.scanner.Stats()
					_ = bar.Set(c.Attempted + c.Skipped)
					if t.scanner.State() == scan.Done {
						_ = bar.Finish()
					} else {
						_ = bar.Exit()
					}
					fmt.Fprintln(os.Stderr)
					return nil
				}
			}
		})
	}

	runErr := g.Wait() // Only a wordlist source failure; partials still report
	if result == nil {
		return runErr
	}

	if result.Wildcard != nil && result.Wildcard.Detected {
		t.print.warn(fmt.Sprintf(
			"[!] Wildcard DNS detected: random names under %s resolve to %s",
			t.cfg.domain, strings.Join(result.Wildcard.Values, ", ")))
	}

	t.print.headline("\n--- Scan Finished ---")

	lines := flattenFound(result.Found, prior)
	if !t.cfg.verboseFlag {
		for _, l := range lines {
			t.print.found(l.Raw)
		}
	}

	log.Successf("Unique subdomains found: %d", uniqueSubdomains(lines))
	log.Successf("Total records found: %d", len(lines))
	log.Infof("Scan %s in %s: %s", strings.ToLower(result.State.String()),
		result.Elapsed.Round(time.Millisecond), result.Counters.String())

	if len(t.cfg.outputPath) > 0 {
		err = t.saveResults(lines)
		if err != nil {
			return err
		}
		log.Successf("Results saved to '%s'", t.cfg.outputPath)
	}

	// State bookkeeping. An interrupted or broken run leaves a resumable state
	// file behind; a clean completion saves only when asked and consumes the
	// resume file it was given.
	if tracker != nil {
		if result.State == scan.Cancelled || runErr != nil {
			savePath := t.cfg.statePath
			if len(savePath) == 0 {
				savePath = t.cfg.resumePath
			}
			err = state.save(savePath)
			if err != nil {
				warning(err)
			} else {
				log.Warningf("Scan interrupted. State saved to %s", savePath)
			}
		} else {
			if len(t.cfg.statePath) > 0 {
				err = state.save(t.cfg.statePath)
				if err != nil {
					warning(err)
				} else {
					log.Infof("State saved to %s", t.cfg.statePath)
				}
			}
			if len(t.cfg.resumePath) > 0 && t.cfg.resumePath != t.cfg.statePath {
				err = os.Remove(t.cfg.resumePath)
				if err == nil {
					log.Debugf("consumed state file %s removed", t.cfg.resumePath)
				}
			}
		}
	}

	return runErr
}

// Writes summary stats to the log. Normally triggered by SIGUSR1 mid-scan.
func (t *nsweep) statsReport() {
	c := t.scanner.Stats()
	log.Info("Stats: Uptime ", time.Since(t.startTime).Round(time.Second), " ", c.String())
}
