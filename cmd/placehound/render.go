package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"placehound/internal/view"
	"placehound/shared/go/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
	starStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	likedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// renderStars draws the 5-unit star vector for a rating.
func renderStars(rating float64) string {
	var b strings.Builder
	for _, unit := range view.Stars(rating) {
		switch unit {
		case 1:
			b.WriteString("★")
		case 0.5:
			b.WriteString("⯨")
		default:
			b.WriteString("☆")
		}
	}
	return starStyle.Render(b.String())
}

func renderPlace(p models.Place, showDetails bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s %s\n",
		titleStyle.Render(p.SiteName),
		renderStars(p.Rating),
		dimStyle.Render(fmt.Sprintf("#%d", p.PlaceID)),
	)
	if p.Summary != "" {
		fmt.Fprintf(&b, "  %s\n", p.Summary)
	}
	if len(p.Categories) > 0 {
		fmt.Fprintf(&b, "  %s\n", dimStyle.Render(strings.Join(p.Categories, ", ")))
	}
	if showDetails {
		for _, detail := range view.PlaceDetails(p) {
			if detail.Value == "" {
				continue
			}
			fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render(detail.Label+":"), detail.Value)
		}
	}
	return b.String()
}

func renderReview(r models.Review) string {
	var b strings.Builder

	author := r.UserID
	if r.User != nil && r.User.FullName != "" {
		author = r.User.FullName
	}
	header := fmt.Sprintf("%s  %s", titleStyle.Render(author), renderStars(float64(r.Rating)))
	if r.PlaceName != "" {
		header += dimStyle.Render("  on " + r.PlaceName)
	}
	if r.Edited {
		header += dimStyle.Render("  (edited)")
	}
	b.WriteString(header + "\n")

	fmt.Fprintf(&b, "  %s\n", r.Text)

	likes := fmt.Sprintf("%d likes", r.Likes)
	if r.Liked {
		likes = likedStyle.Render("♥ ") + likes
	}
	fmt.Fprintf(&b, "  %s %s %s\n",
		likes,
		dimStyle.Render(r.Timestamp.Format("2006-01-02")),
		dimStyle.Render(r.ReviewID),
	)
	return b.String()
}
