package inventory

import (
	"github.com/jinzhu/copier"
)

// Clone deep-copies the snapshot so a mutation can be discarded wholesale on
// failure without touching the fetched document.
func (s *HotelSnapshot) Clone() (*HotelSnapshot, error) {
	out := &HotelSnapshot{}
	if err := copier.CopyWithOption(out, s, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return out, nil
}

// Clone deep-copies the snapshot, including the per-class records behind
// pointers.
func (s *AirlineSnapshot) Clone() (*AirlineSnapshot, error) {
	out := &AirlineSnapshot{}
	if err := copier.CopyWithOption(out, s, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return out, nil
}
