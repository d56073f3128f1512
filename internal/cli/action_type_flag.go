package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/carestock/internal/domain"
	"github.com/spf13/pflag"
)

var actionTypeAliases = map[string]domain.ActionType{
	"po":        domain.ActionPurchaseOrder,
	"purchase":  domain.ActionPurchaseOrder,
	"transfer":  domain.ActionTransferred,
	"delivered": domain.ActionDelivered,
	"partner":   domain.ActionPartnerSupport,
	"ngo":       domain.ActionPartnerSupport,
	"other":     domain.ActionOther,
}

// actionTypeValue is a pflag.Value accepting an action type by its full
// label or a short alias.
type actionTypeValue domain.ActionType

var _ pflag.Value = (*actionTypeValue)(nil)

func newActionTypeValue(def domain.ActionType) *actionTypeValue {
	v := actionTypeValue(def)
	return &v
}

func (v *actionTypeValue) String() string { return string(*v) }

func (v *actionTypeValue) Set(s string) error {
	s = strings.TrimSpace(s)
	if t, ok := actionTypeAliases[strings.ToLower(s)]; ok {
		*v = actionTypeValue(t)
		return nil
	}
	for _, t := range domain.ActionTypes {
		if strings.EqualFold(s, string(t)) {
			*v = actionTypeValue(t)
			return nil
		}
	}
	return fmt.Errorf("must be one of po, transfer, delivered, partner, other")
}

func (v *actionTypeValue) Type() string { return "action" }
