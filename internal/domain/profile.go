package domain

import (
	"fmt"
	"time"

	"github.com/mutualfundportal/portal/pkg/dateutil"
)

// DOBLayout is the date of birth format accepted in profiles.
const DOBLayout = "2006-01-02"

// BasicInfo is the portfolio holder's profile collected before any
// calculator runs.
type BasicInfo struct {
	Name          string `json:"name" yaml:"name"`
	Occupation    string `json:"occupation" yaml:"occupation"`
	DOB           string `json:"dob,omitempty" yaml:"dob,omitempty"`
	Age           int    `json:"age,omitempty" yaml:"age,omitempty"`
	Gender        string `json:"gender,omitempty" yaml:"gender,omitempty"`
	MaritalStatus string `json:"maritalStatus,omitempty" yaml:"marital_status,omitempty"`
	Dependents    int    `json:"dependents,omitempty" yaml:"dependents,omitempty"`
}

// IsEmpty reports whether no profile has been entered.
func (b BasicInfo) IsEmpty() bool { return b.Name == "" }

// CurrentAge returns the explicit age when set, otherwise the age derived
// from DOB at the given date. An empty profile yields 0.
func (b BasicInfo) CurrentAge(at time.Time) (int, error) {
	if b.Age > MaxAge {
		return 0, fmt.Errorf("age %d is above %d", b.Age, MaxAge)
	}
	if b.Age > 0 {
		return b.Age, nil
	}
	if b.DOB == "" {
		return 0, nil
	}
	dob, err := time.Parse(DOBLayout, b.DOB)
	if err != nil {
		return 0, fmt.Errorf("invalid date of birth %q: %w", b.DOB, err)
	}
	if dob.After(at) {
		return 0, fmt.Errorf("date of birth %s is in the future", b.DOB)
	}
	if age := dateutil.Age(dob, at); age <= MaxAge {
		return age, nil
	}
	return 0, fmt.Errorf("date of birth %s gives an age above %d", b.DOB, MaxAge)
}
