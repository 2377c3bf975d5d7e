package domain

import (
	"fmt"
	"time"
)

// Options are the three independently toggleable flags on an entry.
type Options struct {
	TransportFee bool `json:"transportFee"`
	Nomination   bool `json:"nomination"`
	NoShow       bool `json:"noShow"`
}

// Set updates one flag by name.
func (o *Options) Set(opt Option, on bool) error {
	switch opt {
	case OptionTransportFee:
		o.TransportFee = on
	case OptionNomination:
		o.Nomination = on
	case OptionNoShow:
		o.NoShow = on
	default:
		return fmt.Errorf("unknown option %q", opt)
	}
	return nil
}

// Get reads one flag by name.
func (o Options) Get(opt Option) bool {
	switch opt {
	case OptionTransportFee:
		return o.TransportFee
	case OptionNomination:
		return o.Nomination
	case OptionNoShow:
		return o.NoShow
	}
	return false
}

// Entry is one computed result in the ledger. The elapsed and unit fields
// are denormalized: they hold a snapshot computed under the settings active
// at creation or last time edit, and the unit counts can additionally be
// overridden by hand afterwards.
//
// SisterID and Sister are set only on entries created in pro mode; the
// serialized shape omits them in simple mode.
type Entry struct {
	ID        string  `json:"id"`
	Number    int     `json:"number"`
	Date      string  `json:"date"`
	StoreInfo string  `json:"storeInfo"`
	SisterID  string  `json:"sisterId,omitempty"`
	Sister    *Sister `json:"sister,omitempty"`

	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`

	Hours        int `json:"hours"`
	Minutes      int `json:"minutes"`
	TotalMinutes int `json:"totalMinutes"`

	FullUnitCount int `json:"fullUnitCount"`
	HalfUnitCount int `json:"halfUnitCount"`

	Options Options `json:"options"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// DateLayout is the human-readable composed date shown next to each entry.
const DateLayout = "2006/01/02 15:04"
