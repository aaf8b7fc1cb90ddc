package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClaimWorkflow walks the full pitch lifecycle: submission, editorial
// approval with team targets, a contested claim, slot bookkeeping and the
// aggregated view.
func TestClaimWorkflow(t *testing.T) {
	writingTeam := addTeam(t, "Writing")
	photoTeam := addTeam(t, "Photography")

	author := createUser(t, "Pat", "Author", "pat.author@e2e.test")
	userA := createUser(t, "Alex", "First", "alex.first@e2e.test")
	userB := createUser(t, "Blake", "Second", "blake.second@e2e.test")

	pitchId := createPitch(t, "Claim Workflow Story", author)

	// claims before approval are rejected
	resp, body := doJSON(t, http.MethodPut, "/pitch/"+pitchId+"/submitClaim", map[string]interface{}{
		"user_id": userA,
		"teams":   []string{writingTeam},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(body))

	approvePitch(t, pitchId, []map[string]interface{}{
		{"team_id": writingTeam, "target": 1},
		{"team_id": photoTeam, "target": 1},
	})

	// both users claim the single writing slot
	resp, _ = doJSON(t, http.MethodPut, "/pitch/"+pitchId+"/submitClaim", map[string]interface{}{
		"user_id": userA,
		"teams":   []string{writingTeam},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPut, "/pitch/"+pitchId+"/submitClaim", map[string]interface{}{
		"user_id": userB,
		"teams":   []string{writingTeam},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// duplicate claim from the same user is rejected
	resp, body = doJSON(t, http.MethodPut, "/pitch/"+pitchId+"/submitClaim", map[string]interface{}{
		"user_id": userA,
		"teams":   []string{photoTeam},
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_CLAIM", errorCode(body))

	// first approval wins the slot
	resp, body = doJSON(t, http.MethodPut, "/pitch/"+pitchId+"/approveClaim", map[string]interface{}{
		"user_id": userA,
		"team_id": writingTeam,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pitch := body["pitch"].(map[string]interface{})
	assert.Equal(t, "UNCLAIMED", pitch["assignment_status"])

	// second approval hits a full slot, the pending claim survives
	resp, body = doJSON(t, http.MethodPut, "/pitch/"+pitchId+"/approveClaim", map[string]interface{}{
		"user_id": userB,
		"team_id": writingTeam,
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "SLOT_UNAVAILABLE", errorCode(body))

	// declining the losing claim is idempotent
	for i := 0; i < 2; i++ {
		resp, _ = doJSON(t, http.MethodPut, "/pitch/"+pitchId+"/declineClaim", map[string]interface{}{
			"user_id": userB,
			"team_id": writingTeam,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	// shrinking the photo slot to zero and filling writing marks the pitch claimed
	resp, body = doJSON(t, http.MethodPut, "/pitch/"+pitchId+"/teamTarget", map[string]interface{}{
		"team_id": photoTeam,
		"target":  0,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pitch = body["pitch"].(map[string]interface{})
	assert.Equal(t, "CLAIMED", pitch["assignment_status"])

	// target below the assigned count is rejected
	resp, body = doJSON(t, http.MethodPut, "/pitch/"+pitchId+"/teamTarget", map[string]interface{}{
		"team_id": writingTeam,
		"target":  0,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(body))

	// aggregated view resolves names
	resp, body = doJSON(t, http.MethodGet, "/pitch/"+pitchId+"/aggregate", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	aggregated := body["aggregated"].(map[string]interface{})
	authorObj := aggregated["author"].(map[string]interface{})
	assert.Equal(t, "Pat", authorObj["first_name"])
	byTeam := aggregated["contributors_by_team"].([]interface{})
	require.Len(t, byTeam, 1)
	group := byTeam[0].(map[string]interface{})
	assert.Equal(t, "Writing", group["team_name"])

	// removing the contributor reopens the slot
	resp, body = doJSON(t, http.MethodPut, "/pitch/"+pitchId+"/removeContributor", map[string]interface{}{
		"user_id": userA,
		"team_id": writingTeam,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pitch = body["pitch"].(map[string]interface{})
	assert.Equal(t, "UNCLAIMED", pitch["assignment_status"])
}

func TestPitchReview_DeclineAndFilters(t *testing.T) {
	author := createUser(t, "Dana", "Reviewer", "dana.reviewer@e2e.test")

	declined := createPitch(t, "Declined Story", author)
	resp, body := doJSON(t, http.MethodPost, "/pitch/decline", map[string]interface{}{
		"pitch_id": declined,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pitch := body["pitch"].(map[string]interface{})
	assert.Equal(t, "DECLINED", pitch["status"])

	resp, body = doJSON(t, http.MethodGet, "/pitch?status=DECLINED", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pitches := body["pitches"].([]interface{})
	found := false
	for _, raw := range pitches {
		p := raw.(map[string]interface{})
		assert.Equal(t, "DECLINED", p["status"])
		if p["pitch_id"] == declined {
			found = true
		}
	}
	assert.True(t, found, "declined pitch must appear in the DECLINED listing")
}

func TestPitch_NotFoundAndValidation(t *testing.T) {
	resp, body := doJSON(t, http.MethodPost, "/pitch/approve", map[string]interface{}{
		"pitch_id": "00000000-0000-0000-0000-000000000000",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(body))

	resp, body = doJSON(t, http.MethodPost, "/pitch/create", map[string]interface{}{
		"title": "",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_INPUT", errorCode(body))
}

func errorCode(body map[string]interface{}) string {
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		return ""
	}
	code, _ := errObj["code"].(string)
	return code
}
