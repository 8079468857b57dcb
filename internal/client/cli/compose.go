package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/socialdeck/internal/client/models"
	"github.com/dmitrijs2005/socialdeck/internal/client/services"
	"github.com/dmitrijs2005/socialdeck/internal/client/session"
)

var counterStyles = map[models.CharLevel]lipgloss.Style{
	models.CharLevelNormal:  lipgloss.NewStyle().Faint(true),
	models.CharLevelWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")),
	models.CharLevelDanger:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444")),
}

// charCounter renders "n/500" colored by how close n is to the limit.
func charCounter(content string) string {
	n := models.CharCount(content)
	return counterStyles[models.CountLevel(n)].Render(fmt.Sprintf("%d/%d", n, models.MaxPostChars))
}

// Compose walks through the compose form and submits the post.
func (a *App) Compose(ctx context.Context) error {
	if _, ok := a.requireSession(ctx); !ok {
		return session.ErrInvalidSession
	}

	names, err := GetList(a.reader, "Networks (comma separated: mastodon, reddit, linkedin)", a.out)
	if err != nil {
		return err
	}
	networks := make([]models.Platform, 0, len(names))
	for _, n := range names {
		p, ok := models.ParsePlatform(n)
		if !ok {
			p = models.Platform(n)
		}
		networks = append(networks, p)
	}

	content, err := getMultiline(a.reader, "Post content", a.out)
	if err != nil {
		return err
	}
	if models.CharCount(content) > models.MaxPostChars {
		content = models.TruncateContent(content)
		a.notes.Warning(fmt.Sprintf("Content truncated to %d characters", models.MaxPostChars))
	}
	fmt.Fprintln(a.out, "Characters:", charCounter(content))

	mediaPath, err := getSimpleText(a.reader, "Image file to attach (empty for none)", a.out)
	if err != nil {
		return err
	}

	publish, err := getSimpleText(a.reader, "Publish option: now, queue or schedule [now]", a.out)
	if err != nil {
		return err
	}
	req := services.ComposeRequest{
		Content:   content,
		Networks:  networks,
		Publish:   models.PublishOption(strings.ToLower(publish)),
		MediaPath: mediaPath,
	}

	if req.Publish == models.PublishSchedule {
		if err := a.promptSchedule(ctx, &req); err != nil {
			return err
		}
	}

	if _, err := a.postService.Compose(ctx, req); err != nil {
		return a.fail(ctx, err, "Error publishing")
	}
	if req.Publish == "" || req.Publish == models.PublishNow {
		a.notes.Success("Post published successfully!")
	} else {
		a.notes.Success("Post scheduled successfully!")
	}
	return nil
}

// promptSchedule asks for the day and time of a scheduled post, listing
// the server's options when available.
func (a *App) promptSchedule(ctx context.Context, req *services.ComposeRequest) error {
	if opts, err := a.scheduleService.Options(ctx); err == nil {
		labels := make([]string, 0, len(opts.Hours))
		for _, h := range opts.Hours {
			labels = append(labels, h.Label)
		}
		if len(labels) > 0 {
			fmt.Fprintf(a.out, "Available times (%s): %s\n", opts.Timezone, strings.Join(labels, ", "))
		}
	}

	dayText, err := getSimpleText(a.reader, "Day of week", a.out)
	if err != nil {
		return err
	}
	if day, ok := models.ParseWeekday(dayText); ok {
		req.ScheduleDay = &day
	}
	req.ScheduleTime, err = getSimpleText(a.reader, "Time (HH:MM, 24h)", a.out)
	return err
}
