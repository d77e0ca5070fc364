package seatmap_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entradas/seatmap/internal/seatmap"
)

// seqInstanceIDs returns a deterministic instance-id generator.
func seqInstanceIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("ga-%d", n)
	}
}

func stadiumEngine(t *testing.T, pricing *seatmap.EventPricing) *seatmap.Engine {
	t.Helper()
	v, err := seatmap.ParseVenue(stadiumRaw())
	require.NoError(t, err)
	return seatmap.New(v, pricing, seatmap.WithInstanceIDs(seqInstanceIDs()))
}

func TestClassify_StatePriority(t *testing.T) {
	e := stadiumEngine(t, nil)

	// tribuna-norte is ascending, so render (0,0) is seat 1-1.
	id := "tribuna-norte-1-1"

	cases := []struct {
		name string
		snap seatmap.Snapshot
		sel  seatmap.Selection
		want seatmap.SeatState
	}{
		{"available", seatmap.NewSnapshot(nil, nil, nil), nil, seatmap.StateAvailable},
		{"occupied", seatmap.NewSnapshot([]string{id}, nil, nil), nil, seatmap.StateOccupied},
		{"seat blocked", seatmap.NewSnapshot(nil, []string{id}, nil), nil, seatmap.StateBlocked},
		{"section blocked", seatmap.NewSnapshot(nil, nil, []string{"tribuna-norte"}), nil, seatmap.StateBlocked},
		{"selected", seatmap.NewSnapshot(nil, nil, nil), seatmap.Selection{{ID: id, SectionID: "tribuna-norte"}}, seatmap.StateSelected},
		// Occupied beats blocked when a seat is in both sets.
		{"occupied beats blocked", seatmap.NewSnapshot([]string{id}, []string{id}, nil), nil, seatmap.StateOccupied},
		// Occupied beats selected (a stale selection after a refresh).
		{"occupied beats selected", seatmap.NewSnapshot([]string{id}, nil, nil), seatmap.Selection{{ID: id, SectionID: "tribuna-norte"}}, seatmap.StateOccupied},
		// Blocked beats selected.
		{"blocked beats selected", seatmap.NewSnapshot(nil, []string{id}, nil), seatmap.Selection{{ID: id, SectionID: "tribuna-norte"}}, seatmap.StateBlocked},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.Classify("tribuna-norte", 0, 0, tc.snap, tc.sel)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.State)
			assert.Equal(t, id, got.CanonicalID)
		})
	}
}

// Scenario from the storefront: Stadium-A south stand, 5x10 at 50.00.
// Render cell (0,0) is physical seat 5-1 and available when no
// occupancy is supplied.
func TestClassify_SouthStandScenario(t *testing.T) {
	v, err := seatmap.ParseVenue(seatmap.RawVenue{
		ID: "stadium-a", Name: "Stadium A", Type: "stadium",
		Sections: []seatmap.RawSection{
			{ID: "tribuna-sur", Name: "Tribuna Sur", Position: "south", HasNumberedSeats: true, Rows: 5, SeatsPerRow: 10, DefaultPriceCents: 5000},
		},
	})
	require.NoError(t, err)
	e := seatmap.New(v, nil)

	got, err := e.Classify("tribuna-sur", 0, 0, seatmap.NewSnapshot(nil, nil, nil), nil)
	require.NoError(t, err)
	assert.Equal(t, "tribuna-sur-5-1", got.CanonicalID)
	assert.Equal(t, 5, got.PhysicalRow)
	assert.Equal(t, 1, got.PhysicalSeat)
	assert.Equal(t, uint32(5000), got.PriceCents)
	assert.Equal(t, seatmap.StateAvailable, got.State)

	sel, err := e.Toggle(seatmap.NumberedSeat("tribuna-sur", 5, 1), nil, seatmap.NewSnapshot(nil, nil, nil), 6)
	require.NoError(t, err)
	require.Len(t, sel, 1)
	assert.Equal(t, "tribuna-sur-5-1", sel[0].ID)
	assert.Equal(t, uint32(5000), sel[0].PriceCents)
}

func TestClassify_Errors(t *testing.T) {
	e := stadiumEngine(t, nil)
	snap := seatmap.NewSnapshot(nil, nil, nil)

	_, err := e.Classify("no-such-section", 0, 0, snap, nil)
	assert.ErrorIs(t, err, seatmap.ErrUnknownSection)

	_, err = e.Classify("pista", 0, 0, snap, nil)
	assert.ErrorIs(t, err, seatmap.ErrValidation)

	_, err = e.Classify("tribuna-norte", 5, 0, snap, nil)
	assert.ErrorIs(t, err, seatmap.ErrValidation)
}

func TestRemainingCapacity(t *testing.T) {
	e := stadiumEngine(t, nil)

	// 500 capacity, 3 occupied general-admission entries.
	snap := seatmap.NewSnapshot([]string{"pista-1-1", "pista-1-2", "pista-1-3"}, nil, nil)
	remaining, err := e.RemainingCapacity("pista", snap)
	require.NoError(t, err)
	assert.Equal(t, 497, remaining)

	// Occupancy beyond capacity floors at zero.
	over := make([]string, 0, 501)
	for i := 0; i < 501; i++ {
		over = append(over, fmt.Sprintf("pista-1-%d", i+1))
	}
	remaining, err = e.RemainingCapacity("pista", seatmap.NewSnapshot(over, nil, nil))
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)

	_, err = e.RemainingCapacity("tribuna-norte", snap)
	assert.ErrorIs(t, err, seatmap.ErrValidation)

	_, err = e.RemainingCapacity("nope", snap)
	assert.ErrorIs(t, err, seatmap.ErrUnknownSection)
}

// Occupied entries of a section whose id merely extends another
// section's id must not count toward the shorter section's capacity:
// "general-..." entries are not "gen-..." entries.
func TestRemainingCapacity_PrefixIsolation(t *testing.T) {
	v, err := seatmap.ParseVenue(seatmap.RawVenue{
		ID: "v", Name: "V", Type: "concert",
		Sections: []seatmap.RawSection{
			{ID: "gen", Name: "Zona Gen", HasNumberedSeats: false, TotalCapacity: 100, DefaultPriceCents: 100},
			{ID: "general", Name: "Zona General", HasNumberedSeats: false, TotalCapacity: 100, DefaultPriceCents: 100},
		},
	})
	require.NoError(t, err)
	e := seatmap.New(v, nil)

	snap := seatmap.NewSnapshot([]string{"general-uno", "general-dos"}, nil, nil)
	remaining, err := e.RemainingCapacity("gen", snap)
	require.NoError(t, err)
	assert.Equal(t, 100, remaining)

	remaining, err = e.RemainingCapacity("general", snap)
	require.NoError(t, err)
	assert.Equal(t, 98, remaining)
}

func TestGeneralAdmissionState(t *testing.T) {
	e := stadiumEngine(t, nil)

	state, err := e.GeneralAdmissionState("pista", "", emptySnap(), nil)
	require.NoError(t, err)
	assert.Equal(t, seatmap.StateAvailable, state)

	state, err = e.GeneralAdmissionState("pista", "", seatmap.NewSnapshot(nil, nil, []string{"pista"}), nil)
	require.NoError(t, err)
	assert.Equal(t, seatmap.StateBlocked, state)

	sel := seatmap.Selection{{ID: "ga-7", SectionID: "pista", GeneralAdmission: true}}
	state, err = e.GeneralAdmissionState("pista", "ga-7", emptySnap(), sel)
	require.NoError(t, err)
	assert.Equal(t, seatmap.StateSelected, state)

	// Sold out: derived blocking without an explicit block entry.
	full := make([]string, 0, 500)
	for i := 0; i < 500; i++ {
		full = append(full, fmt.Sprintf("pista-%d", i+1))
	}
	state, err = e.GeneralAdmissionState("pista", "", seatmap.NewSnapshot(full, nil, nil), nil)
	require.NoError(t, err)
	assert.Equal(t, seatmap.StateBlocked, state)

	_, err = e.GeneralAdmissionState("tribuna-norte", "", emptySnap(), nil)
	assert.ErrorIs(t, err, seatmap.ErrValidation)
}

func TestStateOf(t *testing.T) {
	e := stadiumEngine(t, nil)

	// Numbered units address physical coordinates directly.
	state, err := e.StateOf(seatmap.NumberedSeat("tribuna-norte", 1, 1), seatmap.NewSnapshot([]string{"tribuna-norte-1-1"}, nil, nil), nil)
	require.NoError(t, err)
	assert.Equal(t, seatmap.StateOccupied, state)

	state, err = e.StateOf(seatmap.NumberedSeat("tribuna-norte", 2, 3), emptySnap(), nil)
	require.NoError(t, err)
	assert.Equal(t, seatmap.StateAvailable, state)

	// General-admission units dispatch by instance id.
	sel := seatmap.Selection{{ID: "ga-9", SectionID: "pista", GeneralAdmission: true}}
	unit := seatmap.GeneralAdmissionUnit("pista")
	unit.InstanceID = "ga-9"
	state, err = e.StateOf(unit, emptySnap(), sel)
	require.NoError(t, err)
	assert.Equal(t, seatmap.StateSelected, state)

	_, err = e.StateOf(seatmap.NumberedSeat("tribuna-norte", 99, 1), emptySnap(), nil)
	assert.ErrorIs(t, err, seatmap.ErrValidation)
	_, err = e.StateOf(seatmap.NumberedSeat("pista", 1, 1), emptySnap(), nil)
	assert.ErrorIs(t, err, seatmap.ErrValidation)
	_, err = e.StateOf(seatmap.NumberedSeat("ghost", 1, 1), emptySnap(), nil)
	assert.ErrorIs(t, err, seatmap.ErrUnknownSection)
}

func TestRemainingCapacity_EventOverride(t *testing.T) {
	pricing := &seatmap.EventPricing{
		UsesSectionPricing: true,
		Sections: []seatmap.SectionPricing{
			{SectionID: "pista", DefaultPriceCents: 7000, Capacity: 200},
		},
	}
	e := stadiumEngine(t, pricing)

	remaining, err := e.RemainingCapacity("pista", seatmap.NewSnapshot([]string{"pista-1-1"}, nil, nil))
	require.NoError(t, err)
	assert.Equal(t, 199, remaining)
}
