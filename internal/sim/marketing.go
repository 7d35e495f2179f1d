package sim

import (
	"math"
	"strconv"

	"github.com/napolitain/chip-tycoon/internal/models"
)

// LaunchCampaign buys a marketing campaign for a product line, raising its
// brand awareness for the campaign's duration.
func (e *Engine) LaunchCampaign(prev models.GameState, campaignID string, product models.ProductType) (models.GameState, []Event) {
	if !product.Valid() {
		return reject(prev, KindLaunchCampaign, ReasonInvalid)
	}
	camp, ok := e.content.Campaign(campaignID)
	if !ok {
		return reject(prev, KindLaunchCampaign, ReasonUnknownID)
	}
	if prev.Money < camp.Cost {
		return reject(prev, KindLaunchCampaign, ReasonInsufficientFunds)
	}

	next := prev.Clone()
	next.Money -= camp.Cost
	next.BrandAwareness[product] = math.Min(MaxBrandAwareness, next.BrandAwareness[product]+camp.AwarenessBoost)
	next.ActiveCampaigns = append(next.ActiveCampaigns, models.ActiveCampaign{
		CampaignID:    camp.ID,
		Product:       product,
		DaysRemaining: camp.Duration,
	})
	next.AddLog("campaign_launched", models.SeverityInfo, camp.Name, string(product), strconv.Itoa(camp.Duration))
	return next, []Event{{Kind: KindLaunchCampaign, Product: product, Subject: camp.ID, Money: -camp.Cost}}
}

// DismissEvent applies the pending world event's effect and clears it
func (e *Engine) DismissEvent(prev models.GameState) (models.GameState, []Event) {
	if prev.PendingEventID == "" {
		return reject(prev, KindDismissEvent, ReasonNothingPending)
	}
	def, ok := e.content.Event(prev.PendingEventID)
	if !ok {
		next := prev.Clone()
		next.PendingEventID = ""
		return next, []Event{{
			Kind:    KindDismissEvent,
			Failed:  true,
			Reason:  ReasonConfig,
			Subject: prev.PendingEventID,
			Err:     &models.ConfigError{Table: "events", Key: prev.PendingEventID, Msg: "unknown event"},
		}}
	}

	next := def.Evaluate(prev).Apply(prev)
	next.PendingEventID = ""
	next.AddLog("event_resolved", models.SeverityInfo, def.Name)
	return next, []Event{{
		Kind:       KindDismissEvent,
		Subject:    def.ID,
		Money:      next.Money - prev.Money,
		RP:         next.RP - prev.RP,
		Reputation: next.Reputation - prev.Reputation,
	}}
}
