package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by text output.
type Styles struct {
	Header1  lipgloss.Style
	Header2  lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	FilePath lipgloss.Style
	RuleID   lipgloss.Style
}

// Palette.
var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}
	colorError   = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	colorInfo    = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"}
)

// NewStyles builds styles bound to a lipgloss renderer, so colour output
// follows that renderer's profile.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header1:  r.NewStyle().Bold(true).Foreground(colorPrimary).Underline(true),
		Header2:  r.NewStyle().Bold(true).Foreground(colorPrimary),
		Bold:     r.NewStyle().Bold(true),
		Muted:    r.NewStyle().Foreground(colorMuted),
		Success:  r.NewStyle().Foreground(colorSuccess),
		Error:    r.NewStyle().Bold(true).Foreground(colorError),
		Warning:  r.NewStyle().Foreground(colorWarning),
		Info:     r.NewStyle().Foreground(colorInfo),
		FilePath: r.NewStyle().Bold(true).Underline(true),
		RuleID:   r.NewStyle().Bold(true).Foreground(colorPrimary),
	}
}
