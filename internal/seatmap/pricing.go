package seatmap

// RowPrice assigns an event-specific price to one physical row of a
// section. At most one entry should exist per row; when authoring
// slips and duplicates appear, the first match wins rather than
// erroring.
type RowPrice struct {
	Row        int    `json:"row"`
	PriceCents uint32 `json:"price_cents"`
}

// SectionPricing overrides a section's pricing for one event. Capacity
// is an optional override of the section's general-admission capacity;
// zero means no override.
type SectionPricing struct {
	SectionID         string     `json:"section_id"`
	DefaultPriceCents uint32     `json:"default_price_cents"`
	Capacity          int        `json:"capacity,omitempty"`
	UsesRowPricing    bool       `json:"uses_row_pricing"`
	RowPricing        []RowPrice `json:"row_pricing,omitempty"`
}

// EventPricing is the per-event override hierarchy, supplied read-only
// once per event. When UsesSectionPricing is false the whole structure
// is ignored and every unit resolves to its section's static default.
type EventPricing struct {
	UsesSectionPricing bool             `json:"uses_section_pricing"`
	Sections           []SectionPricing `json:"sections,omitempty"`
}

// sectionEntry returns the override entry for a section, if any.
func (p *EventPricing) sectionEntry(sectionID string) *SectionPricing {
	if p == nil {
		return nil
	}
	for i := range p.Sections {
		if p.Sections[i].SectionID == sectionID {
			return &p.Sections[i]
		}
	}
	return nil
}

// PriceOf resolves the price in cents for a unit of the given section.
// physRow is the 1-based physical row for numbered seats; pass 0 for
// general-admission units so the row branch is never taken.
//
// Resolution order, first match wins:
//  1. event row override, when the event uses section pricing, the
//     matched section entry uses row pricing and a physical row was
//     supplied;
//  2. the section entry's event default;
//  3. the section's static default price.
func PriceOf(s *Section, physRow int, pricing *EventPricing) uint32 {
	if pricing != nil && pricing.UsesSectionPricing {
		if entry := pricing.sectionEntry(s.ID); entry != nil {
			if entry.UsesRowPricing && physRow > 0 {
				for _, rp := range entry.RowPricing {
					if rp.Row == physRow {
						return rp.PriceCents
					}
				}
			}
			return entry.DefaultPriceCents
		}
	}
	return s.DefaultPriceCents
}
