package usecase

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"market_backend/internal/feature/calendar/domain/entity"
)

// EventStore はカレンダー全体の読み書きを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type EventStore interface {
	Load() (map[string][]entity.Event, error)
	Save(data map[string][]entity.Event) error
}

// CalendarUsecase は予定の参照・追加・削除のユースケースを定義します。
type CalendarUsecase struct {
	store EventStore
}

// NewCalendarUsecase はCalendarUsecaseの新しいインスタンスを生成します。
func NewCalendarUsecase(store EventStore) *CalendarUsecase {
	return &CalendarUsecase{store: store}
}

// Events は予定を返します。dateが指定されればその日のみ（予定が無ければ
// 空リスト付き）、monthが指定されればその月のみ、どちらも空なら全件です。
func (u *CalendarUsecase) Events(date, month string) (map[string][]entity.Event, error) {
	data, err := u.store.Load()
	if err != nil {
		return nil, err
	}

	if date != "" {
		events := data[date]
		if events == nil {
			events = []entity.Event{}
		}
		return map[string][]entity.Event{date: events}, nil
	}
	if month != "" {
		filtered := map[string][]entity.Event{}
		for d, events := range data {
			if strings.HasPrefix(d, month) {
				filtered[d] = events
			}
		}
		return filtered, nil
	}
	return data, nil
}

// Add は予定を追加して保存し、採番済みの予定を返します。
// 同じ日の予定は時刻昇順（時刻なしは末尾）に並べ直します。
func (u *CalendarUsecase) Add(date, title, timeOfDay, note string) (entity.Event, error) {
	if date == "" || title == "" {
		return entity.Event{}, ErrMissingFields
	}

	data, err := u.store.Load()
	if err != nil {
		return entity.Event{}, err
	}

	item := entity.Event{
		ID:    strconv.FormatInt(time.Now().UnixMilli(), 10),
		Title: title,
		Time:  timeOfDay,
		Note:  note,
	}
	events := append(data[date], item)

	sort.SliceStable(events, func(i, j int) bool {
		return sortKey(events[i].Time) < sortKey(events[j].Time)
	})
	data[date] = events

	if err := u.store.Save(data); err != nil {
		return entity.Event{}, err
	}
	return item, nil
}

// Delete は指定した日付・IDの予定を削除します。その日の予定が無くなった
// 場合は日付キーごと落とします。存在しないIDの削除は成功扱いです。
func (u *CalendarUsecase) Delete(date, eventID string) error {
	data, err := u.store.Load()
	if err != nil {
		return err
	}

	events := data[date]
	kept := events[:0]
	for _, e := range events {
		if e.ID != eventID {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(events) && len(events) > 0 {
		// 何も消えていなくても保存し直す必要はない
		return nil
	}

	if len(kept) > 0 {
		data[date] = kept
	} else {
		delete(data, date)
	}
	return u.store.Save(data)
}

// sortKey は時刻なしの予定を末尾に回すためのソートキーです。
func sortKey(t string) string {
	t = strings.TrimSpace(t)
	if t == "" {
		return "99:99"
	}
	return t
}
