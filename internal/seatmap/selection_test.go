package seatmap_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entradas/seatmap/internal/seatmap"
)

func emptySnap() seatmap.Snapshot {
	return seatmap.NewSnapshot(nil, nil, nil)
}

func TestToggle_AddThenRemove(t *testing.T) {
	e := stadiumEngine(t, nil)

	sel, err := e.Toggle(seatmap.NumberedSeat("tribuna-norte", 2, 4), nil, emptySnap(), 6)
	require.NoError(t, err)
	require.Len(t, sel, 1)
	assert.Equal(t, "tribuna-norte-2-4", sel[0].ID)
	assert.Equal(t, "Tribuna Norte", sel[0].SectionName)
	assert.Equal(t, uint32(4000), sel[0].PriceCents)

	sel2, err := e.Toggle(seatmap.NumberedSeat("tribuna-norte", 2, 4), sel, emptySnap(), 6)
	require.NoError(t, err)
	assert.Empty(t, sel2)
	// The input selection is untouched.
	assert.Len(t, sel, 1)
}

// Toggling a selected unit off and on again re-resolves the price at
// the moment of re-addition.
func TestToggle_ReAddRepricesFresh(t *testing.T) {
	v, err := seatmap.ParseVenue(stadiumRaw())
	require.NoError(t, err)

	cheap := seatmap.New(v, nil)
	sel, err := cheap.Toggle(seatmap.NumberedSeat("tribuna-norte", 1, 1), nil, emptySnap(), 6)
	require.NoError(t, err)
	assert.Equal(t, uint32(4000), sel[0].PriceCents)

	// Pricing data changed mid-session; held entries keep their price.
	pricing := &seatmap.EventPricing{
		UsesSectionPricing: true,
		Sections: []seatmap.SectionPricing{
			{SectionID: "tribuna-norte", DefaultPriceCents: 8000},
		},
	}
	pricey := seatmap.New(v, pricing)
	assert.Equal(t, uint32(4000), sel[0].PriceCents)

	// Remove and re-add: the new entry picks up the fresh price.
	sel, err = pricey.Toggle(seatmap.NumberedSeat("tribuna-norte", 1, 1), sel, emptySnap(), 6)
	require.NoError(t, err)
	require.Empty(t, sel)
	sel, err = pricey.Toggle(seatmap.NumberedSeat("tribuna-norte", 1, 1), sel, emptySnap(), 6)
	require.NoError(t, err)
	assert.Equal(t, uint32(8000), sel[0].PriceCents)
}

func TestToggle_RejectsOccupiedAndBlocked(t *testing.T) {
	e := stadiumEngine(t, nil)

	snap := seatmap.NewSnapshot(
		[]string{"tribuna-norte-1-1"},
		[]string{"tribuna-norte-1-2"},
		[]string{"tribuna-sur"},
	)

	_, err := e.Toggle(seatmap.NumberedSeat("tribuna-norte", 1, 1), nil, snap, 6)
	assert.ErrorIs(t, err, seatmap.ErrUnavailable)

	_, err = e.Toggle(seatmap.NumberedSeat("tribuna-norte", 1, 2), nil, snap, 6)
	assert.ErrorIs(t, err, seatmap.ErrUnavailable)

	// Section-level block covers every seat in it.
	_, err = e.Toggle(seatmap.NumberedSeat("tribuna-sur", 3, 3), nil, snap, 6)
	assert.ErrorIs(t, err, seatmap.ErrUnavailable)
}

// Removal is always permitted, even when the unit has since become
// occupied or its section blocked.
func TestToggle_RemovalUnconditional(t *testing.T) {
	e := stadiumEngine(t, nil)

	sel, err := e.Toggle(seatmap.NumberedSeat("tribuna-norte", 1, 1), nil, emptySnap(), 6)
	require.NoError(t, err)

	snap := seatmap.NewSnapshot([]string{"tribuna-norte-1-1"}, nil, []string{"tribuna-norte"})
	sel, err = e.Toggle(seatmap.NumberedSeat("tribuna-norte", 1, 1), sel, snap, 6)
	require.NoError(t, err)
	assert.Empty(t, sel)
}

func TestToggle_LimitReached(t *testing.T) {
	e := stadiumEngine(t, nil)

	var sel seatmap.Selection
	var err error
	for seat := 1; seat <= 2; seat++ {
		sel, err = e.Toggle(seatmap.NumberedSeat("tribuna-norte", 1, seat), sel, emptySnap(), 2)
		require.NoError(t, err)
	}

	_, err = e.Toggle(seatmap.NumberedSeat("tribuna-norte", 1, 3), sel, emptySnap(), 2)
	assert.ErrorIs(t, err, seatmap.ErrLimitReached)

	// Removal still works at the limit.
	sel, err = e.Toggle(seatmap.NumberedSeat("tribuna-norte", 1, 1), sel, emptySnap(), 2)
	require.NoError(t, err)
	assert.Len(t, sel, 1)
}

func TestToggle_GeneralAdmission(t *testing.T) {
	e := stadiumEngine(t, nil)

	sel, err := e.Toggle(seatmap.GeneralAdmissionUnit("pista"), nil, emptySnap(), 6)
	require.NoError(t, err)
	require.Len(t, sel, 1)
	assert.Equal(t, "ga-1", sel[0].ID)
	assert.True(t, sel[0].GeneralAdmission)
	assert.Equal(t, uint32(6000), sel[0].PriceCents)

	// A second add gets its own instance id.
	sel, err = e.Toggle(seatmap.GeneralAdmissionUnit("pista"), sel, emptySnap(), 6)
	require.NoError(t, err)
	require.Len(t, sel, 2)
	assert.Equal(t, "ga-2", sel[1].ID)

	// Toggling by instance id removes exactly that entry.
	unit := seatmap.GeneralAdmissionUnit("pista")
	unit.InstanceID = "ga-1"
	sel, err = e.Toggle(unit, sel, emptySnap(), 6)
	require.NoError(t, err)
	require.Len(t, sel, 1)
	assert.Equal(t, "ga-2", sel[0].ID)
}

// Capacity accounting: 500 capacity, 3 occupied leaves 497; adds
// succeed until occupied+selected reaches the cap.
func TestToggle_GeneralAdmissionCapacity(t *testing.T) {
	v, err := seatmap.ParseVenue(seatmap.RawVenue{
		ID: "v", Name: "V", Type: "concert",
		Sections: []seatmap.RawSection{
			{ID: "pista", Name: "Pista", HasNumberedSeats: false, TotalCapacity: 5, DefaultPriceCents: 6000},
		},
	})
	require.NoError(t, err)
	e := seatmap.New(v, nil, seatmap.WithInstanceIDs(seqInstanceIDs()))

	snap := seatmap.NewSnapshot([]string{"pista-1-1", "pista-1-2", "pista-1-3"}, nil, nil)

	var sel seatmap.Selection
	for i := 0; i < 2; i++ {
		sel, err = e.Toggle(seatmap.GeneralAdmissionUnit("pista"), sel, snap, 10)
		require.NoError(t, err, fmt.Sprintf("add %d should fit", i+1))
	}

	// occupied(3) + selected(2) == capacity(5): the next add fails.
	_, err = e.Toggle(seatmap.GeneralAdmissionUnit("pista"), sel, snap, 10)
	assert.ErrorIs(t, err, seatmap.ErrCapacityExceeded)
}

func TestToggle_GeneralAdmissionBlockedSection(t *testing.T) {
	e := stadiumEngine(t, nil)

	snap := seatmap.NewSnapshot(nil, nil, []string{"pista"})
	_, err := e.Toggle(seatmap.GeneralAdmissionUnit("pista"), nil, snap, 6)
	assert.ErrorIs(t, err, seatmap.ErrUnavailable)
}

func TestToggle_UnitKindMismatch(t *testing.T) {
	e := stadiumEngine(t, nil)

	_, err := e.Toggle(seatmap.GeneralAdmissionUnit("tribuna-norte"), nil, emptySnap(), 6)
	assert.ErrorIs(t, err, seatmap.ErrValidation)

	_, err = e.Toggle(seatmap.NumberedSeat("pista", 1, 1), nil, emptySnap(), 6)
	assert.ErrorIs(t, err, seatmap.ErrValidation)

	_, err = e.Toggle(seatmap.NumberedSeat("no-such", 1, 1), nil, emptySnap(), 6)
	assert.ErrorIs(t, err, seatmap.ErrUnknownSection)
}

func TestToggle_OutOfGridSeat(t *testing.T) {
	e := stadiumEngine(t, nil)

	_, err := e.Toggle(seatmap.NumberedSeat("tribuna-norte", 6, 1), nil, emptySnap(), 6)
	assert.ErrorIs(t, err, seatmap.ErrValidation)

	_, err = e.Toggle(seatmap.NumberedSeat("tribuna-norte", 1, 11), nil, emptySnap(), 6)
	assert.ErrorIs(t, err, seatmap.ErrValidation)
}

func TestSelection_Helpers(t *testing.T) {
	sel := seatmap.Selection{
		{ID: "a-1-1", SectionID: "a", PriceCents: 1000},
		{ID: "a-1-2", SectionID: "a", PriceCents: 1500},
		{ID: "ga-1", SectionID: "pista", PriceCents: 6000, GeneralAdmission: true},
	}
	assert.True(t, sel.Contains("a-1-2"))
	assert.False(t, sel.Contains("a-1-3"))
	assert.Equal(t, 2, sel.CountInSection("a"))
	assert.Equal(t, 1, sel.CountInSection("pista"))
	assert.Equal(t, uint64(8500), sel.TotalCents())
}
