package updater

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/swiftinit-labs/swiftinit/internal/branding"
)

var noticeColor = color.New(color.FgYellow, color.Bold)

// Banner prints an upgrade notice when the recorded check state says a newer
// release exists, then refreshes stale state in the background so the next
// invocation reports current data. It never blocks on the network.
func (ch *Checker) Banner(w io.Writer, dir string) {
	st, err := ReadState(dir)
	if err != nil {
		// The banner is advisory; a broken state file is not worth noise.
		return
	}

	if st != nil && st.Newer {
		PrintNotice(w, st.Current, st.Latest)
	}

	if !st.Fresh(time.Now()) {
		go ch.recheck(dir)
	}
}

// PrintNotice writes the upgrade notice for current -> latest.
func PrintNotice(w io.Writer, current, latest string) {
	fmt.Fprintln(w)
	_, _ = noticeColor.Fprintf(w, "Update available: %s -> %s\n", current, latest)
	fmt.Fprintf(w, "    Run `%s update` to see how to upgrade\n\n", branding.CLIName())
}

// recheck fetches the latest release and rewrites the state file. Failures
// are dropped for the same reason Banner drops read errors.
func (ch *Checker) recheck(dir string) {
	rel, err := ch.Latest()
	if err != nil {
		return
	}
	newer, err := IsNewer(rel.TagName, ch.current)
	if err != nil {
		return
	}

	st := &CheckState{
		Current:   ch.current,
		Latest:    rel.TagName,
		Newer:     newer,
		CheckedAt: time.Now(),
	}
	_ = st.Write(dir)
}
