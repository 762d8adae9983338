package get_available_slots

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// slotStep фиксированный шаг между началами соседних слотов внутри окна
const slotStep = domain.SlotStepMinutes * time.Minute

// ComputeInput данные, необходимые для чистого расчёта слотов на одну дату
type ComputeInput struct {
	Year     int
	Month    time.Month
	Day      int
	Location *time.Location

	Rules           []*domain.AvailabilityRule
	DurationMinutes int
	Settings        *domain.AvailabilitySettings // nil = настройки по умолчанию
	Commitments     []domain.Interval            // бронирования и занятые интервалы, UTC
	Now             time.Time
}

// ComputeSlots рассчитывает доступные слоты на дату:
// окна из правил -> кандидаты с шагом 15 минут -> фильтр конфликтов с буферами ->
// фильтр минимального времени до начала -> сортировка по началу.
// Функция чистая: результат зависит только от входных данных.
func ComputeSlots(in ComputeInput) []domain.Slot {
	// Длительность вне 1..MaxServiceDurationMinutes не помещается ни в одно окно,
	// а очень большие значения переполняют time.Duration
	if in.DurationMinutes <= 0 || in.DurationMinutes > domain.MaxServiceDurationMinutes {
		return []domain.Slot{}
	}

	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}

	settings := in.Settings
	if settings == nil {
		settings = domain.DefaultAvailabilitySettings(uuid.Nil)
	}

	windows := buildWindows(in.Year, in.Month, in.Day, loc, in.Rules)
	candidates := generateCandidates(windows, time.Duration(in.DurationMinutes)*time.Minute)
	candidates = filterConflicts(candidates, in.Commitments, settings.BufferBefore(), settings.BufferAfter())
	candidates = filterByNotice(candidates, in.Now, settings.MinNotice())

	return assembleSlots(candidates)
}

// buildWindows переводит каждое правило в абсолютный интервал UTC на указанную дату.
// Дата и время правила собираются в часовом поясе провайдера и только потом
// переводятся в UTC, поэтому окно может начинаться в другой календарный день по UTC.
func buildWindows(year int, month time.Month, day int, loc *time.Location, rules []*domain.AvailabilityRule) []domain.Interval {
	windows := make([]domain.Interval, 0, len(rules))

	for _, rule := range rules {
		if rule == nil || !rule.StartTime.IsBefore(rule.EndTime) {
			continue
		}

		start := rule.StartTime.On(year, month, day, loc)
		end := rule.EndTime.On(year, month, day, loc)

		window := domain.NewInterval(start, end)
		if window.IsEmpty() {
			continue
		}
		windows = append(windows, window)
	}

	return windows
}

// generateCandidates нарезает каждое окно на кандидатов длиной duration с шагом slotStep.
// Первый кандидат начинается ровно в начале окна; слот, заканчивающийся
// ровно в конце окна, допустим.
func generateCandidates(windows []domain.Interval, duration time.Duration) []domain.Slot {
	candidates := make([]domain.Slot, 0)
	if duration <= 0 {
		return candidates
	}

	for _, window := range windows {
		if window.Duration() < duration {
			continue
		}
		for start := window.Start; ; start = start.Add(slotStep) {
			candidate := domain.Slot{Start: start, End: start.Add(duration)}
			if !window.Contains(candidate.Interval()) {
				break
			}
			candidates = append(candidates, candidate)
		}
	}

	return candidates
}

// filterConflicts отбрасывает кандидатов, пересекающихся с занятостью,
// расширенной на буферы: [start - before, end + after).
// Касание границ (слот заканчивается ровно в начале буфера или начинается
// ровно в его конце) конфликтом не считается.
func filterConflicts(candidates []domain.Slot, commitments []domain.Interval, before, after time.Duration) []domain.Slot {
	if len(commitments) == 0 {
		return candidates
	}

	busy := make([]domain.Interval, len(commitments))
	for i, c := range commitments {
		busy[i] = c.Expand(before, after)
	}

	result := make([]domain.Slot, 0, len(candidates))
	for _, candidate := range candidates {
		if !overlapsAny(candidate.Interval(), busy) {
			result = append(result, candidate)
		}
	}

	return result
}

func overlapsAny(slot domain.Interval, busy []domain.Interval) bool {
	for _, b := range busy {
		if slot.Overlaps(b) {
			return true
		}
	}
	return false
}

// filterByNotice отбрасывает кандидатов, начинающихся раньше now + minNotice
func filterByNotice(candidates []domain.Slot, now time.Time, minNotice time.Duration) []domain.Slot {
	earliest := now.Add(minNotice)

	result := make([]domain.Slot, 0, len(candidates))
	for _, candidate := range candidates {
		if !candidate.Start.Before(earliest) {
			result = append(result, candidate)
		}
	}

	return result
}

// assembleSlots сортирует слоты по началу. Дубликаты от пересекающихся
// правил сохраняются и остаются соседними.
func assembleSlots(candidates []domain.Slot) []domain.Slot {
	slots := make([]domain.Slot, len(candidates))
	for i, c := range candidates {
		slots[i] = domain.Slot{Start: c.Start.UTC(), End: c.End.UTC()}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})

	return slots
}

// dayBounds возвращает [полночь даты, полночь следующего дня) в часовом поясе loc
func dayBounds(year int, month time.Month, day int, loc *time.Location) domain.Interval {
	start := time.Date(year, month, day, 0, 0, 0, 0, loc)
	end := time.Date(year, month, day+1, 0, 0, 0, 0, loc)
	return domain.NewInterval(start, end)
}

// weekdayIn возвращает день недели даты, как он наблюдается в часовом поясе loc
func weekdayIn(year int, month time.Month, day int, loc *time.Location) time.Weekday {
	return time.Date(year, month, day, 12, 0, 0, 0, loc).Weekday()
}

// toIntervals приводит бронирования и занятые интервалы к единому виду.
// Отменённые бронирования отбрасываются, даже если хранилище их вернуло.
func toIntervals(bookings []*domain.Booking, blocks []*domain.BusyBlock) []domain.Interval {
	intervals := make([]domain.Interval, 0, len(bookings)+len(blocks))

	for _, b := range bookings {
		if b == nil || !b.IsActive() {
			continue
		}
		intervals = append(intervals, b.Interval())
	}

	for _, b := range blocks {
		if b == nil {
			continue
		}
		intervals = append(intervals, b.Interval())
	}

	return intervals
}
