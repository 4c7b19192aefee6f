package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"grocery-api/models"
)

// PricingCalculator computes the money breakdown for an order.
// All arithmetic runs in decimal and each output term is rounded to
// two places, so the stored total always equals the sum of the stored
// parts exactly.
type PricingCalculator struct {
	TaxRate     float64
	DeliveryFee float64
}

// NewPricingCalculator returns a calculator for a region's tax rate and
// flat delivery fee.
func NewPricingCalculator(taxRate, deliveryFee float64) *PricingCalculator {
	return &PricingCalculator{TaxRate: taxRate, DeliveryFee: deliveryFee}
}

// Calculate prices a validated set of line items. The discount must
// already be validated (promo checks happen elsewhere); it is clamped
// here so the total can never go negative.
//
// Tax applies only to the delivery fee and lines flagged taxable:
// groceries are exempt under the regional sales-tax rules, so the rate
// is applied to the taxable base, never the full subtotal.
func (pc *PricingCalculator) Calculate(items []models.OrderItem, tip, discount float64, promoCode string) (models.Pricing, error) {
	if len(items) == 0 {
		return models.Pricing{}, ErrEmptyOrder
	}
	if tip < 0 {
		return models.Pricing{}, fmt.Errorf("%w: tip cannot be negative", ErrValidation)
	}
	if discount < 0 {
		return models.Pricing{}, fmt.Errorf("%w: discount cannot be negative", ErrValidation)
	}

	fee := decimal.NewFromFloat(pc.DeliveryFee)
	subtotal := decimal.Zero
	taxableBase := fee
	for _, item := range items {
		if item.Quantity <= 0 {
			return models.Pricing{}, fmt.Errorf("%w: quantity must be positive for %q", ErrValidation, item.Name)
		}
		if item.UnitPrice < 0 {
			return models.Pricing{}, fmt.Errorf("%w: negative price for %q", ErrValidation, item.Name)
		}
		line := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
		if item.Taxable {
			taxableBase = taxableBase.Add(line)
		}
	}

	subtotal = subtotal.Round(2)
	tipDec := decimal.NewFromFloat(tip).Round(2)
	tax := taxableBase.Mul(decimal.NewFromFloat(pc.TaxRate)).Round(2)

	preDiscount := subtotal.Add(fee).Add(tipDec).Add(tax)
	discDec := decimal.NewFromFloat(discount).Round(2)
	if discDec.GreaterThan(preDiscount) {
		discDec = preDiscount
	}
	total := preDiscount.Sub(discDec)

	p := models.Pricing{
		Subtotal:    subtotal.InexactFloat64(),
		DeliveryFee: fee.Round(2).InexactFloat64(),
		Tip:         tipDec.InexactFloat64(),
		Tax:         tax.InexactFloat64(),
		Discount:    discDec.InexactFloat64(),
		PromoCode:   promoCode,
		Total:       total.InexactFloat64(),
	}
	return p, nil
}
