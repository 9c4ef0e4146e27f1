package finder

import "github.com/ziadkadry99/kitchen-finder/internal/kitchen"

// View is the display state of the search results region.
type View struct {
	Location string
	Loading  bool
	Error    string
	Kitchens []kitchen.Kitchen
}

// Begin marks a fetch for location as pending.
func (v *View) Begin(location string) {
	v.Location = location
	v.Loading = true
	v.Error = ""
}

// Succeed replaces the listed kitchens with the result of the latest fetch.
func (v *View) Succeed(kitchens []kitchen.Kitchen) {
	v.Loading = false
	v.Error = ""
	v.Kitchens = kitchens
}

// Fail records err as the visible message. The grid is emptied so it never
// shows results that belong to an older location.
func (v *View) Fail(err error) {
	v.Loading = false
	v.Error = err.Error()
	v.Kitchens = nil
}
