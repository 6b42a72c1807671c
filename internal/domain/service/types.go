package service

import (
	"fmt"

	"barbershop-booking/internal/pkg/errs"
)

var ErrInvalidServiceKind = errs.New("invalid service kind")

// Kind identifies one of the base services offered by the shop.
type Kind string

const (
	KindHaircut           Kind = "haircut"
	KindBeardTrim         Kind = "beard-trim"
	KindHairTreatment     Kind = "hair-treatment"
	KindPremiumExperience Kind = "premium-experience"
	KindGroomPackage      Kind = "groom-package"
	KindColoring          Kind = "coloring"
)

// Extra identifies an add-on that can be stacked on top of a base service.
type Extra string

const (
	ExtraBeard        Extra = "beard"
	ExtraFacialMask   Extra = "facial-mask"
	ExtraPremiumWash  Extra = "premium-wash"
	ExtraScalpMassage Extra = "scalp-massage"
)

type offering struct {
	label    string
	price    int
	duration int
}

func (k Kind) offering() (offering, bool) {
	switch k {
	case KindHaircut:
		return offering{label: "Haircut", price: 22000, duration: 30}, true
	case KindBeardTrim:
		return offering{label: "Beard Trim", price: 10000, duration: 20}, true
	case KindHairTreatment:
		return offering{label: "Hair Treatment", price: 25000, duration: 45}, true
	case KindPremiumExperience:
		return offering{label: "Premium Experience", price: 30000, duration: 60}, true
	case KindGroomPackage:
		return offering{label: "Groom Package", price: 90000, duration: 90}, true
	case KindColoring:
		return offering{label: "Coloring", price: 40000, duration: 75}, true
	default:
		return offering{}, false
	}
}

func (e Extra) offering() (offering, bool) {
	switch e {
	case ExtraBeard:
		return offering{label: "Beard Trim", price: 10000, duration: 20}, true
	case ExtraFacialMask:
		return offering{label: "Facial Mask", price: 15000, duration: 15}, true
	case ExtraPremiumWash:
		return offering{label: "Premium Wash", price: 8000, duration: 10}, true
	case ExtraScalpMassage:
		return offering{label: "Scalp Massage", price: 12000, duration: 15}, true
	default:
		return offering{}, false
	}
}

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	_, ok := k.offering()
	return ok
}

func (k Kind) Description() string {
	o, _ := k.offering()
	return o.label
}

func (k Kind) Price() int {
	o, _ := k.offering()
	return o.price
}

func (k Kind) Duration() int {
	o, _ := k.offering()
	return o.duration
}

func (e Extra) String() string { return string(e) }

func (e Extra) IsValid() bool {
	_, ok := e.offering()
	return ok
}

func (e Extra) Label() string {
	o, _ := e.offering()
	return o.label
}

// Suffix is what the extra appends to the description of the service it wraps.
func (e Extra) Suffix() string {
	if !e.IsValid() {
		return ""
	}
	return " + " + e.Label()
}

func (e Extra) Price() int {
	o, _ := e.offering()
	return o.price
}

func (e Extra) Duration() int {
	o, _ := e.offering()
	return o.duration
}

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidServiceKind, s)
	}
	return k, nil
}

// ParseExtra reports whether s names a known add-on. Unknown add-ons are
// skipped during pricing rather than rejected.
func ParseExtra(s string) (Extra, bool) {
	e := Extra(s)
	return e, e.IsValid()
}

// Kinds lists the base services in catalog order.
func Kinds() []Kind {
	return []Kind{
		KindHaircut,
		KindBeardTrim,
		KindHairTreatment,
		KindPremiumExperience,
		KindGroomPackage,
		KindColoring,
	}
}

// Extras lists the add-ons in catalog order.
func Extras() []Extra {
	return []Extra{
		ExtraBeard,
		ExtraFacialMask,
		ExtraPremiumWash,
		ExtraScalpMassage,
	}
}
