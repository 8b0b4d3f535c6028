package focusmode

import (
	"fmt"
	"math/rand/v2"
)

// Quote is shown while the session transitions into the active phase.
type Quote struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// Celebration summarises a finished session.
type Celebration struct {
	Title    string `json:"title"`
	Emoji    string `json:"emoji"`
	Subtitle string `json:"subtitle"`
	Confetti bool   `json:"confetti"`
}

var quotes = []Quote{
	{Text: "The secret of getting ahead is getting started.", Icon: "🚀"},
	{Text: "Focus on being productive instead of busy.", Icon: "🎯"},
	{Text: "Do the hard jobs first. The easy jobs will take care of themselves.", Icon: "⛰️"},
	{Text: "Small steps every day add up to big results.", Icon: "👣"},
	{Text: "Deep work is the superpower of the 21st century.", Icon: "🧠"},
	{Text: "One thing at a time. Most important thing first.", Icon: "☝️"},
	{Text: "You don't have to see the whole staircase, just take the first step.", Icon: "🪜"},
	{Text: "Concentrate all your thoughts upon the work at hand.", Icon: "🔍"},
}

// Quotes returns a copy of the quote table.
func Quotes() []Quote {
	return append([]Quote(nil), quotes...)
}

// RandomQuote picks a quote uniformly at random.
func RandomQuote() Quote {
	return quotes[rand.IntN(len(quotes))]
}

// CelebrationFor returns the celebration for a session that lasted
// totalSeconds.
func CelebrationFor(totalSeconds int) Celebration {
	minutes := max(totalSeconds, 0) / 60

	switch {
	case minutes >= 60:
		return Celebration{
			Title:    "Incredible focus!",
			Emoji:    "🏆",
			Subtitle: fmt.Sprintf("%d minutes of deep work. Take a real break.", minutes),
			Confetti: true,
		}
	case minutes >= 25:
		return Celebration{
			Title:    "Great session!",
			Emoji:    "🎉",
			Subtitle: fmt.Sprintf("You stayed focused for %d minutes.", minutes),
			Confetti: true,
		}
	default:
		return Celebration{
			Title:    "Nice work!",
			Emoji:    "✨",
			Subtitle: "Every focused minute counts.",
			Confetti: false,
		}
	}
}
