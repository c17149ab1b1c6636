package reservations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestResolveFilters(t *testing.T) {
	vehicles := []VehicleRow{
		{ID: "v1", BranchID: strPtr("b1"), ClassCode: "ECON", DisplayName: "Golf #1"},
		{ID: "v2", BranchID: strPtr("b1"), ClassCode: "SUV", DisplayName: "Q3"},
		{ID: "v3", BranchID: strPtr("b2"), ClassCode: "ECON", DisplayName: "Golf #2"},
		{ID: "v4", BranchID: nil, ClassCode: "ECON", DisplayName: "Unassigned"},
	}

	out := Resolve(vehicles, nil, Filters{PickupBranch: "b1", ClassCode: "ECON"})
	require.Len(t, out, 1)
	assert.Equal(t, "v1", out[0].VehicleID)
	assert.Equal(t, 1, out[0].Score)
	assert.Equal(t, "Available", out[0].Notes)
}

func TestResolveDropsBusyVehicles(t *testing.T) {
	vehicles := []VehicleRow{
		{ID: "v1", BranchID: strPtr("b1"), ClassCode: "ECON"},
		{ID: "v2", BranchID: strPtr("b1"), ClassCode: "ECON"},
	}
	busy := map[string]struct{}{"v1": {}}

	out := Resolve(vehicles, busy, Filters{})
	require.Len(t, out, 1)
	assert.Equal(t, "v2", out[0].VehicleID)
}

func TestResolveKeepsInputOrder(t *testing.T) {
	vehicles := []VehicleRow{
		{ID: "z", ClassCode: "ECON"},
		{ID: "a", ClassCode: "ECON"},
		{ID: "m", ClassCode: "ECON"},
	}
	out := Resolve(vehicles, nil, Filters{})
	require.Len(t, out, 3)
	assert.Equal(t, "z", out[0].VehicleID)
	assert.Equal(t, "a", out[1].VehicleID)
	assert.Equal(t, "m", out[2].VehicleID)
}

func TestResolveEmptyInput(t *testing.T) {
	out := Resolve(nil, nil, Filters{})
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestOverlaps(t *testing.T) {
	at := func(h int) time.Time {
		return time.Date(2026, time.March, 10, h, 0, 0, 0, time.UTC)
	}

	cases := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"partial overlap", at(10), at(14), at(12), at(16), true},
		{"contained", at(10), at(18), at(12), at(14), true},
		{"containing", at(12), at(14), at(10), at(18), true},
		{"identical", at(10), at(14), at(10), at(14), true},
		{"touching at end counts as conflict", at(10), at(12), at(12), at(14), true},
		{"touching at start counts as conflict", at(12), at(14), at(10), at(12), true},
		{"disjoint before", at(8), at(9), at(12), at(14), false},
		{"disjoint after", at(15), at(17), at(12), at(14), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.s1, tc.e1, tc.s2, tc.e2))
			assert.Equal(t, tc.want, Overlaps(tc.s2, tc.e2, tc.s1, tc.e1), "пересечение симметрично")
		})
	}
}
