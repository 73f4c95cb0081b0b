package e2e

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Smoke Tests
// =============================================================================

// TestE2E_HealthCheck verifies the server is running and responding.
func TestE2E_HealthCheck(t *testing.T) {
	baseURL := startServer(t)

	resp := httpGet(t, baseURL+"/health")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestE2E_ReadyCheck verifies the server is ready (database connected).
func TestE2E_ReadyCheck(t *testing.T) {
	baseURL := startServer(t)

	resp := httpGet(t, baseURL+"/ready")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestE2E_HostLifecycle walks a host through create, fetch, rename, delete.
func TestE2E_HostLifecycle(t *testing.T) {
	baseURL := startServer(t)
	hostname := uniqueHostname()

	// Create
	resp := httpPost(t, baseURL+"/api/v1/hosts", map[string]string{"hostname": hostname})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/api/v1/hosts/"+hostname, resp.Header.Get("Location"))
	created := decode(t, resp)
	assert.Equal(t, hostname, created["hostname"])

	// Duplicate create is a conflict
	resp = httpPost(t, baseURL+"/api/v1/hosts", map[string]string{"hostname": hostname})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Fetch composite view
	resp = httpGet(t, baseURL+"/api/v1/hosts/"+hostname)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	view := decode(t, resp)
	assert.Equal(t, hostname, view["hostname"])
	assert.Equal(t, "", view["lastEvent"])
	assert.Equal(t, []any{}, view["labors"])

	// Rename
	renamed := uniqueHostname()
	resp = httpPut(t, baseURL+"/api/v1/hosts/"+hostname, map[string]string{"hostname": renamed})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = httpGet(t, baseURL+"/api/v1/hosts/"+hostname)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Delete
	resp = httpDelete(t, baseURL+"/api/v1/hosts/"+renamed)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	deleted := decode(t, resp)
	assert.Equal(t, fmt.Sprintf("Host %s deleted.", renamed), deleted["message"])

	resp = httpGet(t, baseURL+"/api/v1/hosts/"+renamed)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// TestE2E_EventFlow reports events against a host and checks they surface in
// both the host and event-type composite views.
func TestE2E_EventFlow(t *testing.T) {
	baseURL := startServer(t)
	hostname := uniqueHostname()

	resp := httpPost(t, baseURL+"/api/v1/hosts", map[string]string{"hostname": hostname})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = httpPost(t, baseURL+"/api/v1/eventtypes", map[string]string{
		"category":    "system-reboot",
		"state":       "required",
		"description": "System requires a reboot.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	et := decode(t, resp)
	etID := int64(et["id"].(float64))

	resp = httpPost(t, baseURL+"/api/v1/events", map[string]any{
		"hostname":    hostname,
		"eventTypeId": etID,
		"user":        "ops",
		"note":        "kernel update",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	event := decode(t, resp)
	assert.Equal(t, float64(etID), event["eventTypeId"])
	assert.NotEmpty(t, event["timestamp"])

	// Host view carries the event and a non-empty lastEvent.
	resp = httpGet(t, baseURL+"/api/v1/hosts/"+hostname+"?expand=events")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	hostView := decode(t, resp)
	events := hostView["events"].([]any)
	require.Len(t, events, 1)
	full := events[0].(map[string]any)
	assert.Equal(t, "kernel update", full["note"])
	assert.Equal(t, full["timestamp"], hostView["lastEvent"])

	// Event-type view carries the event as a reference.
	resp = httpGet(t, fmt.Sprintf("%s/api/v1/eventtypes/%d", baseURL, etID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	etView := decode(t, resp)
	refs := etView["events"].([]any)
	require.Len(t, refs, 1)
	ref := refs[0].(map[string]any)
	assert.Len(t, ref, 2)
	assert.Contains(t, ref, "href")
}

// TestE2E_EventTypeDeleteDeclined confirms delete is acknowledged but not
// performed.
func TestE2E_EventTypeDeleteDeclined(t *testing.T) {
	baseURL := startServer(t)

	resp := httpPost(t, baseURL+"/api/v1/eventtypes", map[string]string{
		"category":    "system-audit",
		"state":       "required",
		"description": "System requires an audit.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	et := decode(t, resp)
	etID := int64(et["id"].(float64))

	resp = httpDelete(t, fmt.Sprintf("%s/api/v1/eventtypes/%d", baseURL, etID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "Not supported.", body["message"])

	// Still there.
	resp = httpGet(t, fmt.Sprintf("%s/api/v1/eventtypes/%d", baseURL, etID))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

// TestE2E_PaginationWindow checks one window governs every relation in a
// composite response while totals stay absolute.
func TestE2E_PaginationWindow(t *testing.T) {
	baseURL := startServer(t)
	hostname := uniqueHostname()

	resp := httpPost(t, baseURL+"/api/v1/hosts", map[string]string{"hostname": hostname})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = httpPost(t, baseURL+"/api/v1/eventtypes", map[string]string{
		"category":    "system-reboot",
		"state":       "required",
		"description": "System requires a reboot.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	et := decode(t, resp)
	etID := int64(et["id"].(float64))

	for i := 0; i < 5; i++ {
		resp = httpPost(t, baseURL+"/api/v1/events", map[string]any{
			"hostname":    hostname,
			"eventTypeId": etID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp = httpGet(t, baseURL+"/api/v1/hosts/"+hostname+"?limit=2")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	view := decode(t, resp)
	assert.Equal(t, float64(2), view["limit"])
	assert.Len(t, view["events"].([]any), 2)
	// lastEvent still reflects the newest of all five.
	assert.NotEqual(t, "", view["lastEvent"])

	resp = httpGet(t, baseURL+"/api/v1/events?limit=3")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode(t, resp)
	assert.Equal(t, float64(5), list["totalEvents"])
	assert.Len(t, list["events"].([]any), 3)
}
