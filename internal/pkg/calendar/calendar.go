// Package calendar is an inline-keyboard date picker. The user narrows down
// year, then month, then day; every tap comes back as callback data that
// Process turns into either the next keyboard or a picked date.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyKozhin/reminder-bot/internal/model"
)

type Step string

const (
	StepYear  Step = "y"
	StepMonth Step = "m"
	StepDay   Step = "d"
)

// StepNames are the prompts shown above each keyboard.
var StepNames = map[Step]string{
	StepYear:  "o ano",
	StepMonth: "o mês",
	StepDay:   "o dia",
}

const (
	prefix      = "cal"
	actSelect   = "s"
	actGoto     = "g"
	actNoop     = "n"
	yearsOnPage = 4
)

var ErrBadData = errors.New("calendar: malformed callback data")

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

var weekdays = [...]string{"Seg", "Ter", "Qua", "Qui", "Sex", "Sáb", "Dom"}

// Result of one tap. Exactly one of these holds: Done with Date set, Menu
// set for the next step, or neither when the tap was on a label.
type Result struct {
	Done bool
	Date time.Time
	Menu model.Menu
	Step Step
}

func IsCallback(data string) bool {
	return strings.HasPrefix(data, prefix+":")
}

// Start is the first keyboard: a page of years beginning with now's year.
func Start(now time.Time, loc *time.Location) (model.Menu, Step) {
	return yearMenu(now.In(loc).Year()), StepYear
}

func Process(data string, loc *time.Location) (Result, error) {
	parts := strings.Split(data, ":")
	if len(parts) != 6 || parts[0] != prefix {
		return Result{}, ErrBadData
	}

	act, step := parts[1], Step(parts[2])
	nums := make([]int, 3)
	for i, p := range parts[3:] {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Result{}, ErrBadData
		}
		nums[i] = n
	}
	y, m, d := nums[0], nums[1], nums[2]
	if m < 1 || m > 12 {
		return Result{}, ErrBadData
	}

	switch act {
	case actNoop:
		return Result{}, nil
	case actGoto:
		switch step {
		case StepYear:
			return Result{Menu: yearMenu(y), Step: StepYear}, nil
		case StepMonth:
			return Result{Menu: monthMenu(y), Step: StepMonth}, nil
		case StepDay:
			return Result{Menu: dayMenu(y, time.Month(m), loc), Step: StepDay}, nil
		}
	case actSelect:
		switch step {
		case StepYear:
			return Result{Menu: monthMenu(y), Step: StepMonth}, nil
		case StepMonth:
			return Result{Menu: dayMenu(y, time.Month(m), loc), Step: StepDay}, nil
		case StepDay:
			date := time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc)
			if date.Day() != d {
				return Result{}, ErrBadData
			}
			return Result{Done: true, Date: date}, nil
		}
	}

	return Result{}, ErrBadData
}

func encode(act string, step Step, y int, m time.Month, d int) string {
	return fmt.Sprintf("%s:%s:%s:%d:%d:%d", prefix, act, step, y, int(m), d)
}

func noop() string {
	return encode(actNoop, StepDay, 0, 1, 0)
}

func yearMenu(from int) model.Menu {
	var menu model.Menu

	row := make([]model.Button, 0, yearsOnPage)
	for y := from; y < from+yearsOnPage; y++ {
		row = append(row, model.Button{Text: strconv.Itoa(y), Data: encode(actSelect, StepYear, y, 1, 1)})
	}
	menu = append(menu, row)

	return append(menu, []model.Button{
		{Text: "«", Data: encode(actGoto, StepYear, from-yearsOnPage, 1, 1)},
		{Text: "»", Data: encode(actGoto, StepYear, from+yearsOnPage, 1, 1)},
	})
}

func monthMenu(year int) model.Menu {
	menu := model.Menu{{{Text: strconv.Itoa(year), Data: noop()}}}

	for m := time.January; m <= time.December; m += 3 {
		row := make([]model.Button, 0, 3)
		for i := time.Month(0); i < 3; i++ {
			row = append(row, model.Button{Text: monthNames[m+i-1], Data: encode(actSelect, StepMonth, year, m+i, 1)})
		}
		menu = append(menu, row)
	}

	return append(menu, []model.Button{
		{Text: "«", Data: encode(actGoto, StepMonth, year-1, 1, 1)},
		{Text: "»", Data: encode(actGoto, StepMonth, year+1, 1, 1)},
	})
}

func dayMenu(year int, month time.Month, loc *time.Location) model.Menu {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	menu := model.Menu{{{Text: fmt.Sprintf("%s %d", monthNames[month-1], year), Data: noop()}}}

	header := make([]model.Button, len(weekdays))
	for i, w := range weekdays {
		header[i] = model.Button{Text: w, Data: noop()}
	}
	menu = append(menu, header)

	// Monday-first column of the 1st.
	offset := (int(first.Weekday()) + 6) % 7

	row := make([]model.Button, 0, 7)
	for i := 0; i < offset; i++ {
		row = append(row, model.Button{Text: " ", Data: noop()})
	}
	for d := 1; d <= daysInMonth; d++ {
		row = append(row, model.Button{Text: strconv.Itoa(d), Data: encode(actSelect, StepDay, year, month, d)})
		if len(row) == 7 {
			menu = append(menu, row)
			row = make([]model.Button, 0, 7)
		}
	}
	if len(row) > 0 {
		for len(row) < 7 {
			row = append(row, model.Button{Text: " ", Data: noop()})
		}
		menu = append(menu, row)
	}

	prev := first.AddDate(0, -1, 0)
	next := first.AddDate(0, 1, 0)
	return append(menu, []model.Button{
		{Text: "«", Data: encode(actGoto, StepDay, prev.Year(), prev.Month(), 1)},
		{Text: "»", Data: encode(actGoto, StepDay, next.Year(), next.Month(), 1)},
	})
}
