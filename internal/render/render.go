// Package render turns raids into chat text. It holds no state; platform
// adapters pick a Style and map a Card onto their own message type.
package render

import (
	"fmt"
	"strings"

	"github.com/diegoclair/raid-bot/internal/domain"
	"github.com/diegoclair/raid-bot/internal/domain/entity"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	CardColor    = 4437377
	mapsURL      = "https://www.google.com/maps/dir/Current+Location/"
	thumbnailURL = "https://rankedboost.com/wp-content/plugins/ice/pokemon-go/"
	fallbackURL  = "https://discordapp.com"
)

// Style holds the markup a platform uses.
type Style struct {
	Bold      func(string) string
	Underline func(string) string
	Code      func(string) string

	// attendee status markers
	LeaderArrived string
	Arrived       string
	Pending       string

	// faction name -> marker
	Factions map[string]string

	// prefix in front of commands in the join hint, e.g. "!" or "/raid "
	CommandPrefix string
}

var DiscordStyle = Style{
	Bold:          func(s string) string { return "**" + s + "**" },
	Underline:     func(s string) string { return "__" + s + "__" },
	Code:          func(s string) string { return "```" + s + "```" },
	LeaderArrived: "<:MasterBall:347218482078810112>",
	Arrived:       "<:PokeBall:347218482296782849>",
	Pending:       "<:PremierBall:347221891263496193>",
	Factions: map[string]string{
		domain.FactionMystic:   "<:mystic:346183029171159041>",
		domain.FactionValor:    "<:valor:346182738652561408>",
		domain.FactionInstinct: "<:instinct:346182737566105600>",
	},
	CommandPrefix: "!",
}

var SlackStyle = Style{
	Bold:          func(s string) string { return "*" + s + "*" },
	Underline:     func(s string) string { return s },
	Code:          func(s string) string { return "`" + s + "`" },
	LeaderArrived: ":crown:",
	Arrived:       ":white_check_mark:",
	Pending:       ":hourglass_flowing_sand:",
	Factions: map[string]string{
		domain.FactionMystic:   ":large_blue_circle:",
		domain.FactionValor:    ":red_circle:",
		domain.FactionInstinct: ":large_yellow_circle:",
	},
	CommandPrefix: "/raid ",
}

// Card is the detail view of a single raid.
type Card struct {
	Title        string
	Description  string
	URL          string
	ThumbnailURL string
	Color        int
}

// SubjectName title-cases a raid subject for display.
func SubjectName(subject string) string {
	return cases.Title(language.English).String(subject)
}

// Summary lists raids one after the other, two lines each.
func Summary(raids []*entity.Raid, style Style) string {
	if len(raids) == 0 {
		return "No active raids in this channel."
	}

	lines := make([]string, 0, len(raids)*2)
	for _, raid := range raids {
		start := "start time to be announced"
		if raid.StartTime != "" {
			start = "starting at " + raid.StartTime
		}

		line := fmt.Sprintf("%s raid %s. %d potential trainer(s).", raid.ID, start, raid.AttendeeCount())
		if raid.Gym != nil {
			line += " Located at " + raid.Gym.Name
		}

		lines = append(lines, style.Bold(style.Underline(SubjectName(raid.Subject))))
		lines = append(lines, line+"\n")
	}
	return strings.Join(lines, "\n")
}

// Detail builds the card shown for a raid, with one line per attendee.
func Detail(raid *entity.Raid, factions []entity.Faction, style Style) Card {
	subject := SubjectName(raid.Subject)

	endTime := orUnknown(raid.EndTime)
	startTime := orUnknown(raid.StartTime)
	gymName := domain.UnknownValue
	url := fallbackURL
	if raid.Gym != nil {
		gymName = raid.Gym.Name
		url = fmt.Sprintf("%s%v,%v", mapsURL, raid.Gym.Latitude, raid.Gym.Longitude)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Raid available until %s\n", endTime)
	fmt.Fprintf(&b, "Location %s\n\n", style.Bold(gymName))
	fmt.Fprintf(&b, "Join this raid by typing the command %s\n\n", style.Code(style.CommandPrefix+"join "+raid.ID))
	b.WriteString("Potential Trainers:\n")
	b.WriteString(attendeeList(raid, factions, style))
	fmt.Fprintf(&b, "\nTrainers: %s\n", style.Bold(fmt.Sprintf("%d total", raid.AttendeeCount())))
	fmt.Fprintf(&b, "Starting @ %s\n", style.Bold(startTime))

	return Card{
		Title:        "Level 5 Raid against " + subject,
		Description:  b.String(),
		URL:          url,
		ThumbnailURL: thumbnailURL + subject + "-Pokemon-Go.png",
		Color:        CardColor,
	}
}

func attendeeList(raid *entity.Raid, factions []entity.Faction, style Style) string {
	var b strings.Builder
	for i, a := range raid.Attendees {
		switch {
		case i == 0 && a.Arrived:
			b.WriteString(style.LeaderArrived)
		case a.Arrived:
			b.WriteString(style.Arrived)
		default:
			b.WriteString(style.Pending)
		}
		b.WriteString("  " + a.User.DisplayName)

		if a.Additional > 0 {
			fmt.Fprintf(&b, " +%d", a.Additional)
		}

		for _, f := range factions {
			if marker, ok := style.Factions[f.Name]; ok && f.Has(a.User) {
				b.WriteString(" " + marker)
				break
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func orUnknown(s string) string {
	if s == "" {
		return domain.UnknownValue
	}
	return s
}
