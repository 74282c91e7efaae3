package domain

// Vendor models an external maintenance provider. Vendors have no
// availability gate and no workload counter.
type Vendor struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	Specializations []string
	HourlyRate      float64
	ResponseTime    string
	Rating          float64
}

// Clone returns a copy with no shared slices.
func (v *Vendor) Clone() *Vendor {
	if v == nil {
		return nil
	}
	out := *v
	if v.Specializations != nil {
		out.Specializations = make([]string, len(v.Specializations))
		copy(out.Specializations, v.Specializations)
	}
	return &out
}
