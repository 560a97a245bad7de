package helpers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// DateLayout is the layout of date query parameters.
const DateLayout = "2006-01-02"

// ParseDateParam reads a YYYY-MM-DD query parameter in loc. A missing
// parameter returns ok false and no error.
func ParseDateParam(r *http.Request, name string, loc *time.Location) (t time.Time, ok bool, err error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return time.Time{}, false, nil
	}
	t, err = time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%s must be YYYY-MM-DD", name)
	}
	return t, true, nil
}

// ParseBoolParam reads a boolean query parameter. A missing parameter
// returns ok false and no error.
func ParseBoolParam(r *http.Request, name string) (v bool, ok bool, err error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return false, false, nil
	}
	v, err = strconv.ParseBool(s)
	if err != nil {
		return false, false, fmt.Errorf("%s must be true or false", name)
	}
	return v, true, nil
}
