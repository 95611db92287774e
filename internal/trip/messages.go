package trip

import "fmt"

// Summary banter shown on the final screen. The %s pairs are the
// destination the user asked for and the one they actually got.
var summaryMessages = []string{
	"You tried to go to %s. You're now headed to %s. Enjoy!",
	"Plot twist level: Expert! %s -> %s. Your life is now a rom-com!",
	"Breaking news: your GPS is jealous of our chaos skills! Welcome to %s (sorry, %s)!",
	"Congratulations! You've been enrolled in our Accidental Adventure program.",
	"Your travel agent? That was us all along.",
}

// SummaryMessage picks a random congratulatory message for the summary
// screen. Messages without placeholders ignore the arguments.
func (g *Generator) SummaryMessage(original, actual string) string {
	msg := summaryMessages[g.rng.Intn(len(summaryMessages))]
	switch msg {
	case summaryMessages[0], summaryMessages[1]:
		return fmt.Sprintf(msg, original, actual)
	case summaryMessages[2]:
		return fmt.Sprintf(msg, actual, original)
	default:
		return msg
	}
}
