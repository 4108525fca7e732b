package entities

import "time"

// MinimalAge is the minimal age allowed to use the service.
const MinimalAge = 18

// BirthdateLayout is the wire format of birthdates.
const BirthdateLayout = "2006-01-02"

// Age returns count of complete years elapsed from birthdate at now.
// Birthday of February 29 counts as occurred on March 1 in non-leap years.
func Age(birthdate, now time.Time) int {
	by, bm, bd := birthdate.Date()
	ny, nm, nd := now.In(birthdate.Location()).Date()

	age := ny - by
	if nm < bm || (nm == bm && nd < bd) {
		age--
	}

	return age
}

// ParseBirthdate parses birthdate in YYYY-MM-DD format.
func ParseBirthdate(s string) (time.Time, error) {
	return time.Parse(BirthdateLayout, s)
}
