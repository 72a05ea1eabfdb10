package sequencer_test

import (
	"testing"
	"time"

	"go-ponto/internal/sequencer"

	"github.com/stretchr/testify/assert"
)

var saoPaulo = time.FixedZone("BRT", -3*60*60)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 10, hour, minute, 0, 0, saoPaulo)
}

func events(n int) []sequencer.Event {
	out := make([]sequencer.Event, n)
	for i := range out {
		out[i] = sequencer.Event{Timestamp: at(8+i, 0)}
	}
	return out
}

func TestDecide_KindByPosition(t *testing.T) {
	expected := []sequencer.EventKind{
		sequencer.ClockIn,
		sequencer.LunchOut,
		sequencer.LunchReturn,
		sequencer.ClockOut,
	}
	for n, want := range expected {
		for _, h := range []int{0, 3, 8, 12, 15, 19, 23} {
			now := at(h, 30)
			d := sequencer.Decide(events(n), now)
			assert.True(t, d.Accepted)
			assert.Equal(t, want, d.Kind)
			assert.Equal(t, now, d.Timestamp)
			assert.Equal(t, sequencer.MaxDailyEvents-n-1, d.Remaining)
			assert.NoError(t, d.Err())
		}
	}
}

func TestDecide_RejectsAtLimit(t *testing.T) {
	for _, n := range []int{4, 5, 9} {
		for h := 0; h < 24; h++ {
			d := sequencer.Decide(events(n), at(h, 0))
			assert.False(t, d.Accepted)
			assert.Equal(t, sequencer.ReasonDailyLimitReached, d.Reason)
			assert.Empty(t, d.Kind)
			assert.ErrorIs(t, d.Err(), sequencer.ErrDailyLimitReached)
		}
	}
}

func TestDecide_Pure(t *testing.T) {
	snapshot := events(2)
	now := at(14, 10)

	first := sequencer.Decide(snapshot, now)
	second := sequencer.Decide(snapshot, now)

	assert.Equal(t, first, second)
	assert.Len(t, snapshot, 2)
}

func TestDecide_IgnoresOrder(t *testing.T) {
	ordered := events(3)
	shuffled := []sequencer.Event{ordered[2], ordered[0], ordered[1]}
	now := at(18, 5)

	assert.Equal(t, sequencer.Decide(ordered, now), sequencer.Decide(shuffled, now))
}

func TestDecide_FullDayScenario(t *testing.T) {
	var day []sequencer.Event
	steps := []struct {
		now  time.Time
		want sequencer.EventKind
	}{
		{at(8, 0), sequencer.ClockIn},
		{at(12, 30), sequencer.LunchOut},
		{at(14, 10), sequencer.LunchReturn},
		{at(18, 5), sequencer.ClockOut},
	}

	for _, s := range steps {
		d := sequencer.Decide(day, s.now)
		assert.True(t, d.Accepted)
		assert.Equal(t, s.want, d.Kind)
		day = append(day, sequencer.Event{Kind: d.Kind, Timestamp: d.Timestamp})
	}

	fifth := sequencer.Decide(day, at(21, 0))
	assert.False(t, fifth.Accepted)
	assert.Equal(t, sequencer.ReasonDailyLimitReached, fifth.Reason)
}

func TestDecide_PostMidnightFirstMark(t *testing.T) {
	now := at(1, 0)

	d := sequencer.Decide(nil, now)
	assert.True(t, d.Accepted)
	assert.Equal(t, sequencer.ClockIn, d.Kind)

	assert.Equal(t, sequencer.ClockIn, sequencer.LabelForHour(now.Hour()))
	assert.True(t, sequencer.IsLateNight(now.Hour()))
}

func TestLabelForHour_Partition(t *testing.T) {
	windows := map[sequencer.EventKind][]int{}
	lateNight := 0
	for h := 0; h < 24; h++ {
		k := sequencer.LabelForHour(h)
		assert.True(t, k.Valid(), "hour %d", h)
		if sequencer.IsLateNight(h) {
			lateNight++
			assert.Equal(t, sequencer.ClockIn, k, "hour %d", h)
			continue
		}
		windows[k] = append(windows[k], h)
	}

	assert.Equal(t, []int{5, 6, 7, 8, 9, 10, 11}, windows[sequencer.ClockIn])
	assert.Equal(t, []int{12, 13}, windows[sequencer.LunchOut])
	assert.Equal(t, []int{14, 15, 16, 17}, windows[sequencer.LunchReturn])
	assert.Equal(t, []int{18, 19, 20, 21, 22}, windows[sequencer.ClockOut])
	assert.Equal(t, 6, lateNight)
}

func TestDayWindow(t *testing.T) {
	t.Run("local day not utc day", func(t *testing.T) {
		// 01:30 UTC on the 11th is still the 10th in Sao Paulo
		instant := time.Date(2026, 3, 11, 1, 30, 0, 0, time.UTC)
		start, end := sequencer.DayWindow(instant, saoPaulo)

		assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, saoPaulo), start)
		assert.Equal(t, 24*time.Hour, end.Sub(start))
		assert.Equal(t, "2026-03-10", sequencer.WorkDate(instant, saoPaulo).Format(sequencer.DateLayout))
	})

	t.Run("nil location falls back to local", func(t *testing.T) {
		start, end := sequencer.DayWindow(time.Now(), nil)
		assert.True(t, end.After(start))
	})
}

func TestEventKind_Label(t *testing.T) {
	assert.Equal(t, "Entrada", sequencer.ClockIn.Label())
	assert.Equal(t, "Saída Almoço", sequencer.LunchOut.Label())
	assert.Equal(t, "Retorno Almoço", sequencer.LunchReturn.Label())
	assert.Equal(t, "Saída", sequencer.ClockOut.Label())
	assert.False(t, sequencer.EventKind("BREAK").Valid())
	assert.Len(t, sequencer.Kinds(), sequencer.MaxDailyEvents)
}

func TestEventKind_ValidAndString(t *testing.T) {
	for _, k := range sequencer.Kinds() {
		assert.True(t, k.Valid())
		assert.Equal(t, string(k), k.String())
	}
	assert.Equal(t, "CLOCK_IN", sequencer.ClockIn.String())
}
