package service_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/roadtrip-planner/internal/service"
)

func names(ns ...string) map[string]bool {
	set := make(map[string]bool, len(ns))
	for _, n := range ns {
		set[n] = true
	}
	return set
}

func TestUniqueName_FreeBase_ReturnedUnchanged(t *testing.T) {
	got := service.UniqueName("Trip", names("Beach Week", "Lake Run"))

	assert.Equal(t, "Trip", got)
}

func TestUniqueName_TakenBase_GetsSuffixOne(t *testing.T) {
	got := service.UniqueName("Trip", names("Trip"))

	assert.Equal(t, "Trip (1)", got)
}

func TestUniqueName_TakenBaseAndSuffix_Increments(t *testing.T) {
	got := service.UniqueName("Trip", names("Trip", "Trip (1)"))

	assert.Equal(t, "Trip (2)", got)
}

// TestUniqueName_SkipsOverHoles verifies the search is strictly sequential
// from 1 — the first free counter wins even when later suffixes are taken.
func TestUniqueName_SkipsOverHoles(t *testing.T) {
	got := service.UniqueName("Trip", names("Trip", "Trip (2)"))

	assert.Equal(t, "Trip (1)", got)
}

// TestUniqueName_ResultNeverInExisting runs the resolver against a dense
// block of taken suffixes and checks the invariant that the result is never
// a member of the existing set.
func TestUniqueName_ResultNeverInExisting(t *testing.T) {
	existing := names("Trip")
	for i := 1; i <= 50; i++ {
		existing[fmt.Sprintf("Trip (%d)", i)] = true
	}

	got := service.UniqueName("Trip", existing)

	assert.False(t, existing[got])
	assert.Equal(t, "Trip (51)", got)
}

func TestUniqueName_EmptyExisting(t *testing.T) {
	got := service.UniqueName("Trip", map[string]bool{})

	assert.Equal(t, "Trip", got)
}
