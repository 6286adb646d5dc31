package ui

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"

	"github.com/lagreeflow/lagree/internal/theme"
)

// Tip holds a tip format string and the keys to highlight
type Tip struct {
	Format string
	Keys   []string
}

// tips is the private collection of all tips, populated by newTip().
// Key maps are built once per SSH session, so registration is guarded and deduplicated.
var (
	tips   []Tip
	tipsMu sync.Mutex
)

// newTip registers a tip with format string and keys to highlight.
// Format uses %s placeholders for keys, e.g. newTip("press %s to filter", "/")
func newTip(format string, keys ...string) string {
	tip := Tip{Format: format, Keys: keys}
	tipsMu.Lock()
	if !slices.ContainsFunc(tips, func(t Tip) bool {
		return t.Format == tip.Format && slices.Equal(t.Keys, tip.Keys)
	}) {
		tips = append(tips, tip)
	}
	tipsMu.Unlock()

	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	return fmt.Sprintf(format, args...)
}

// GetTips returns all registered tips
func GetTips() []Tip {
	tipsMu.Lock()
	defer tipsMu.Unlock()
	return slices.Clone(tips)
}

// RenderTip formats a tip with highlighted keys and gray text
func RenderTip(tip Tip) string {
	var sb strings.Builder
	sb.WriteString(theme.TipTextStyle.Render("ℹ  tip: "))
	parts := strings.Split(tip.Format, "%s")
	for i, part := range parts {
		sb.WriteString(theme.TipTextStyle.Render(part))
		if i < len(tip.Keys) {
			sb.WriteString(theme.TipKeyStyle.Render(tip.Keys[i]))
		}
	}
	return sb.String()
}

// KeyWithTip wraps a key.Binding with an optional tip for rotating tips display.
type KeyWithTip struct {
	Binding key.Binding
	Tip     string
}

// TipsConfig holds configuration for the tips feature
type TipsConfig struct {
	DisplayDurationSeconds int
	Enabled                bool
	ShowIntervalSeconds    int
}

// DefaultTipsConfig shows a tip for 8 seconds every 30 seconds
var DefaultTipsConfig = TipsConfig{
	DisplayDurationSeconds: 8,
	Enabled:                true,
	ShowIntervalSeconds:    30,
}
