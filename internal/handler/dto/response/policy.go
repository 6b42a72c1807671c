package response

import (
	"barbershop-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type PolicyResponse struct {
	OpeningTime             string  `json:"openingTime"`
	ClosingTime             string  `json:"closingTime"`
	CancellationNotice      string  `json:"cancellationNotice"`
	CancellationPolicyText  string  `json:"cancellationPolicyText"`
	MidweekDiscountFraction float64 `json:"midweekDiscountFraction"`
}

func FromPolicyView(v *queries.PolicyView) (*PolicyResponse, error) {
	res := &PolicyResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}
