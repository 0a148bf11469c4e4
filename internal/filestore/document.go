package filestore

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/sbilibin2017/habit-tracker/internal/models"
)

type document struct {
	Habits []habitEntry `json:"habits"`
}

type habitEntry struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Color          string  `json:"color"`
	CreatedDate    int64   `json:"createdDate"`
	CompletedDates dateSet `json:"completedDates"`
}

func (e habitEntry) view() models.HabitView {
	dates := make([]string, 0, len(e.CompletedDates))
	for _, d := range e.CompletedDates {
		dates = append(dates, d.String())
	}
	return models.HabitView{
		Name:           e.Name,
		Description:    e.Description,
		Color:          e.Color,
		CreatedDate:    e.CreatedDate,
		CompletedDates: dates,
	}
}

// dateSet is kept ascending. Older documents stored epoch milliseconds, so
// numbers are accepted on read and converted to UTC calendar days.
type dateSet []models.Date

func (s *dateSet) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	dates := make(dateSet, 0, len(raw))
	for _, item := range raw {
		var str string
		if err := json.Unmarshal(item, &str); err == nil {
			d, err := models.ParseDate(str)
			if err != nil {
				return err
			}
			dates = dates.add(d)
			continue
		}

		var ms int64
		if err := json.Unmarshal(item, &ms); err != nil {
			return fmt.Errorf("completed date %s is neither a date string nor epoch milliseconds", item)
		}
		dates = dates.add(models.DateFromUnixMilli(ms))
	}

	*s = dates
	return nil
}

func (s dateSet) MarshalJSON() ([]byte, error) {
	out := make([]string, 0, len(s))
	for _, d := range s {
		out = append(out, d.String())
	}
	return json.Marshal(out)
}

func (s dateSet) index(d models.Date) int {
	for i, existing := range s {
		if existing == d {
			return i
		}
	}
	return -1
}

// add inserts d keeping the set sorted; duplicates are ignored.
func (s dateSet) add(d models.Date) dateSet {
	if s.index(d) >= 0 {
		return s
	}
	s = append(s, d)
	sort.Slice(s, func(i, j int) bool { return s[i].Before(s[j]) })
	return s
}

func (s dateSet) remove(i int) dateSet {
	return append(s[:i], s[i+1:]...)
}
