// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pricing holds the static plan catalog behind the Upgrade panel.
package pricing

import "math"

// BillingCycle selects monthly or yearly pricing.
type BillingCycle int

const (
	Monthly BillingCycle = iota
	Yearly
)

// YearlyDiscount is the fraction of the monthly price charged per month
// on annual billing.
const YearlyDiscount = 0.8

// String returns the cycle label shown on the billing toggle.
func (b BillingCycle) String() string {
	if b == Yearly {
		return "Yearly"
	}
	return "Monthly"
}

// Toggle returns the other billing cycle.
func (b BillingCycle) Toggle() BillingCycle {
	if b == Monthly {
		return Yearly
	}
	return Monthly
}

// Feature is one line on a plan card.
type Feature struct {
	Name     string
	Included bool
}

// Plan is one subscription tier.
type Plan struct {
	Name         string
	MonthlyPrice int // dollars per month
	PriceLabel   string
	Description  string
	Features     []Feature
	CTA          string
	Popular      bool
}

// PriceFor returns the effective monthly price in dollars for a cycle.
// Yearly billing rounds the discounted price to the nearest dollar.
func (p Plan) PriceFor(cycle BillingCycle) int {
	if cycle == Yearly {
		return int(math.Round(float64(p.MonthlyPrice) * YearlyDiscount))
	}
	return p.MonthlyPrice
}

// Plans returns the plan catalog in display order.
func Plans() []Plan {
	return []Plan{
		{
			Name:         "Free",
			MonthlyPrice: 0,
			Description:  "For individuals getting started",
			Features: []Feature{
				{"Basic chat", true},
				{"5 messages/day", true},
				{"Standard models", true},
				{"Code library (10 snippets)", true},
				{"1 Project", true},
				{"Community support", true},
				{"VOX Learn", false},
				{"Priority support", false},
				{"API access", false},
			},
			CTA: "Current Plan",
		},
		{
			Name:         "Pro",
			MonthlyPrice: 19,
			Description:  "For professionals and creators",
			Features: []Feature{
				{"Unlimited chat", true},
				{"Unlimited messages", true},
				{"All models including PRO", true},
				{"Unlimited code snippets", true},
				{"10 Projects", true},
				{"Priority support", true},
				{"VOX Learn", true},
				{"Deep research", true},
				{"API access", false},
			},
			CTA:     "Upgrade to Pro",
			Popular: true,
		},
		{
			Name:         "Explorer",
			MonthlyPrice: 59,
			Description:  "For teams and power users",
			Features: []Feature{
				{"Everything in Pro", true},
				{"Early access to new features", true},
				{"Advanced analytics", true},
				{"Unlimited projects", true},
				{"Team collaboration", true},
				{"Custom integrations", true},
				{"API access (10k calls/mo)", true},
				{"Dedicated support", true},
				{"Custom model fine-tuning", false},
			},
			CTA: "Upgrade to Explorer",
		},
		{
			Name:         "Enterprise",
			MonthlyPrice: 2000,
			PriceLabel:   "Starting at",
			Description:  "For organizations at scale",
			Features: []Feature{
				{"Everything in Explorer", true},
				{"Unlimited API calls", true},
				{"Custom model fine-tuning", true},
				{"SSO & SAML", true},
				{"Advanced security", true},
				{"SLA guarantee", true},
				{"Dedicated account manager", true},
				{"On-premise deployment", true},
				{"Custom contracts", true},
			},
			CTA: "Contact Sales",
		},
	}
}
