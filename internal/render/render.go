// Package render produces the user-facing text for plans, close
// reports, the backlog triage view, and the habit grid. Output is a
// pure function of its inputs; every view is golden-file tested.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/dayplan/internal/engine"
	"github.com/mesh-intelligence/dayplan/pkg/types"
)

// Plan renders a day's task list.
func Plan(date string, day *types.Day) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📌 План на %s\n", date)
	if day.Closed {
		b.WriteString("⚠️ День закрыт (история).\n")
		return b.String()
	}
	if len(day.Tasks) == 0 {
		b.WriteString("Пока задач нет.\n")
		return b.String()
	}
	for _, t := range day.Tasks {
		b.WriteString(taskLine(t))
	}
	return b.String()
}

// CloseReport renders the evening report for a closed day.
func CloseReport(res *engine.CloseResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🌙 Итог дня %s\n", res.Date)
	fmt.Fprintf(&b, "Сделано: %d/%d\n", res.DoneCount, res.TotalCount)

	b.WriteString("\n")
	if len(res.Done) == 0 {
		b.WriteString("✅ Выполнено: —\n")
	} else {
		b.WriteString("✅ Выполнено:\n")
		for _, t := range res.Done {
			fmt.Fprintf(&b, "✅ %d) %s\n", t.ID, t.Text)
		}
	}

	b.WriteString("\n")
	if len(res.NotDone) == 0 {
		b.WriteString("⬜ Не сделано: —\n")
	} else {
		b.WriteString("⬜ Не сделано (перенёс на завтра):\n")
		for _, t := range res.NotDone {
			fmt.Fprintf(&b, "⬜ %d) %s\n", t.ID, t.Text)
		}
	}

	if len(res.Demoted) > 0 {
		b.WriteString("\n🗂 Ушло в backlog:\n")
		for _, item := range res.Demoted {
			fmt.Fprintf(&b, "• %s (%s)\n", item.Text, carries(item.CarryCount))
		}
	}

	fmt.Fprintf(&b, "\n📌 Черновик на завтра (%s):\n", res.TomorrowDate)
	for _, t := range res.Tomorrow {
		fmt.Fprintf(&b, "⬜ %d) %s\n", t.ID, t.Text)
	}

	if res.HabitsTotal > 0 {
		fmt.Fprintf(&b, "\n📊 Привычки: %d/%d\n", res.HabitsDone, res.HabitsTotal)
	}
	return b.String()
}

// Backlog renders the triage view. Items older than ttlDays are
// flagged as overdue.
func Backlog(items []types.BacklogItem, now time.Time, ttlDays int) string {
	var b strings.Builder
	b.WriteString("🗂 Backlog\n")
	if len(items) == 0 {
		b.WriteString("Пусто.\n")
		return b.String()
	}
	for _, item := range items {
		fmt.Fprintf(&b, "%d) %s", item.ID, item.Text)
		if item.SourceDay != "" {
			fmt.Fprintf(&b, " — с %s", item.SourceDay)
		}
		if item.CarryCount > 0 {
			fmt.Fprintf(&b, " (%s)", carries(item.CarryCount))
		}
		if item.IsOverdue(now, ttlDays) {
			b.WriteString(" ⏰ просрочено")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// HabitGrid renders one row per habit for the given dates, usually a
// calendar month. States: ✓ done, ✗ missed, · not yet assessed.
func HabitGrid(r *types.UserRecord, dates []string) string {
	var b strings.Builder
	b.WriteString("📊 Привычки\n")
	if len(r.Habits) == 0 {
		b.WriteString("Привычки не настроены.\n")
		return b.String()
	}
	width := 0
	for _, h := range r.Habits {
		if n := len([]rune(h.Title)); n > width {
			width = n
		}
	}
	for _, h := range r.Habits {
		title := []rune(h.Title)
		b.WriteString(string(title))
		b.WriteString(strings.Repeat(" ", width-len(title)))
		b.WriteString("  ")
		for _, date := range dates {
			switch r.HabitState(date, h.Key) {
			case types.HabitDone:
				b.WriteString("✓")
			case types.HabitMissed:
				b.WriteString("✗")
			default:
				b.WriteString("·")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// MonthDates returns the ISO day keys of the month containing date, in
// order. Returns ErrInvalidDate on a malformed key.
func MonthDates(date string) ([]string, error) {
	t, err := time.Parse(types.DateFormat, date)
	if err != nil {
		return nil, types.ErrInvalidDate
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	var dates []string
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		dates = append(dates, types.DateOf(d))
	}
	return dates, nil
}

// MorningText is the scheduled morning reminder: today's plan.
func MorningText(date string, day *types.Day) string {
	return "☀️ Доброе утро! Вот план на сегодня.\n\n" + Plan(date, day)
}

// EveningText is the scheduled evening reminder: a nudge to close the
// day, with the running tally.
func EveningText(date string, day *types.Day) string {
	done := 0
	for _, t := range day.Tasks {
		if t.Done() {
			done++
		}
	}
	return fmt.Sprintf("🌙 Пора подвести итог дня %s.\nПока сделано: %d/%d.\n", date, done, len(day.Tasks))
}

// taskLine renders one plan entry with its status mark.
func taskLine(t types.Task) string {
	mark := "⬜"
	if t.Done() {
		mark = "✅"
	}
	return fmt.Sprintf("%s %d) %s\n", mark, t.ID, t.Text)
}

// carries pluralizes carry counts the Russian way.
func carries(n int) string {
	form := "переносов"
	switch {
	case n%100 >= 11 && n%100 <= 14:
		// teens keep the genitive plural
	case n%10 == 1:
		form = "перенос"
	case n%10 >= 2 && n%10 <= 4:
		form = "переноса"
	}
	return fmt.Sprintf("%d %s", n, form)
}
