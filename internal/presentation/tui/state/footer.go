package state

import "fmt"

// FooterText returns the footer content for the current session.
func FooterText(session Session, loaded int, hasMore bool, helpText string) string {
	if session != GalleryView && session != ViewerView {
		return helpText
	}
	status := fmt.Sprintf("%d posts", loaded)
	if !hasMore {
		status += " (end)"
	}
	if helpText == "" {
		return status
	}
	return status + "\n" + helpText
}
