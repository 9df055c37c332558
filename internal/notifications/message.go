package notifications

import (
	"fmt"
	"strings"
	"time"

	events_service "github.com/SergeyKozhin/reminder-bot/internal/business/events"
	"github.com/SergeyKozhin/reminder-bot/internal/model"
	"github.com/SergeyKozhin/reminder-bot/internal/pkg/localtime"
)

func notificationText(e *model.Event, now time.Time, loc *time.Location) string {
	_, hour, minute := localtime.UTCToLocal(e.ScheduledAt, loc)

	var b strings.Builder
	fmt.Fprintf(&b, "⏰ Lembrete: %s\n🕒 %s\n📍 %s, %s", e.Title, localtime.FormatClock(hour, minute), e.City, e.Country)

	if e.Recurrence != model.RecurrenceOnce {
		// Skip past the minute being announced.
		next, ok, err := events_service.NextOccurrence(e, now.Truncate(time.Minute).Add(time.Minute), loc)
		if err == nil && ok {
			fmt.Fprintf(&b, "\n🔁 Próximo: %s", next.Format("02/01/2006 15:04"))
		}
	}

	return b.String()
}
