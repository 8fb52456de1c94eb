package dateutil

import (
	"time"
)

// Age calculates the age in whole years at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// BirthDateForAge returns the latest birth date giving the requested age at
// atDate.
func BirthDateForAge(age int, atDate time.Time) time.Time {
	return atDate.AddDate(-age, 0, 0)
}
