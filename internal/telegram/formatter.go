package telegram

import (
	"fmt"
	"strings"
)

// DefaultEventLabel is used when the caller does not name the event.
const DefaultEventLabel = "New Yield / 新产物"

// Yield holds the caption fields for one delivered artifact. All values
// are embedded literally; Telegram renders the caption as HTML.
type Yield struct {
	EventLabel string
	Version    string
	FileName   string
	SizeLabel  string
	RunURL     string
}

// FormatYield formats the caption for a delivered artifact.
func FormatYield(y Yield) string {
	label := y.EventLabel
	if label == "" {
		label = DefaultEventLabel
	}

	var msg strings.Builder

	msg.WriteString(fmt.Sprintf("🌾 <b>Meta-Hybrid: %s</b>\n\n", label))
	msg.WriteString(fmt.Sprintf("🧬 <b>Cultivar (品种):</b> <code>%s</code>\n", y.Version))
	msg.WriteString(fmt.Sprintf("🥡 <b>Yield (产物):</b> %s\n", y.FileName))
	msg.WriteString(fmt.Sprintf("⚖️ <b>Weight (重量):</b> %s\n\n", y.SizeLabel))
	msg.WriteString(fmt.Sprintf("🚜 <a href='%s'>View Field Log (查看日志)</a>", y.RunURL))

	return msg.String()
}
