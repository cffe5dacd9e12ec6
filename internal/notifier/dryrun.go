package notifier

import (
	"fmt"
	"io"

	"github.com/Winkmoon/Re-meta-hybrid-mount/internal/telegram"
)

// DryRunNotifier prints what would be sent without actually uploading
type DryRunNotifier struct {
	out io.Writer
}

// NewDryRunNotifier creates a new dry-run notifier writing to out
func NewDryRunNotifier(out io.Writer) *DryRunNotifier {
	return &DryRunNotifier{out: out}
}

// Deliver prints the caption and payload details that would be sent
func (n *DryRunNotifier) Deliver(d *Delivery) error {
	fmt.Fprintln(n.out, "DRY RUN MODE - would upload:")
	fmt.Fprintf(n.out, "  document: %s\n", d.ArtifactPath)
	if telegram.UseThreadID(d.ThreadID) {
		fmt.Fprintf(n.out, "  message_thread_id: %s\n", d.ThreadID)
	}
	fmt.Fprintln(n.out, "--- Caption ---")
	fmt.Fprintln(n.out, d.Caption)
	fmt.Fprintf(n.out, "\n(Length: %d characters)\n", len(d.Caption))
	return nil
}
