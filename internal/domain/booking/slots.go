package booking

import "time"

// Interval is a half-open busy window [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps runs the three-case intersection test between a candidate slot
// and a busy interval: slot start inside, slot end inside, or slot encloses
// the interval. Touching boundaries do not count as overlap.
func Overlaps(slotStart, slotEnd time.Time, busy Interval) bool {
	startsInside := !slotStart.Before(busy.Start) && slotStart.Before(busy.End)
	endsInside := slotEnd.After(busy.Start) && !slotEnd.After(busy.End)
	encloses := !slotStart.After(busy.Start) && !slotEnd.Before(busy.End)

	return startsInside || endsInside || encloses
}

// AvailableSlots walks candidate start times from open to close with a fixed
// step and keeps every slot whose [start, start+duration) window fits before
// closing time and collides with no busy interval. Pure and restartable:
// the result depends only on the inputs. Output is chronological.
func AvailableSlots(
	open time.Time,
	close time.Time,
	step time.Duration,
	duration time.Duration,
	busy []Interval,
) []string {

	slots := []string{}

	for cur := open; cur.Before(close); cur = cur.Add(step) {
		slotEnd := cur.Add(duration)
		if slotEnd.After(close) {
			break
		}

		conflict := false
		for _, b := range busy {
			if Overlaps(cur, slotEnd, b) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, cur.Format("15:04"))
		}
	}

	return slots
}
