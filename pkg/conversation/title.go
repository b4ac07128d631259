package conversation

import "strings"

const (
	TitleMaxRunes = 50
	DefaultTitle  = "New Chat"
	titleEllipsis = "..."
)

// DeriveTitle returns the first TitleMaxRunes runes of the message, with an
// ellipsis appended when anything was cut.
func DeriveTitle(message string) string {
	runes := []rune(message)
	if len(runes) <= TitleMaxRunes {
		return message
	}
	return string(runes[:TitleMaxRunes]) + titleEllipsis
}

// ListingTitle picks what to show for a session in the sidebar.
func ListingTitle(stored, firstUserMessage string) string {
	if strings.TrimSpace(stored) != "" {
		return stored
	}
	if strings.TrimSpace(firstUserMessage) != "" {
		return DeriveTitle(firstUserMessage)
	}
	return DefaultTitle
}
