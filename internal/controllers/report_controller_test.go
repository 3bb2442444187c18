package controllers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nagorik_desk/internal/config"
	"nagorik_desk/internal/models"
)

func postReport(t *testing.T, r *gin.Engine, token string, fields map[string]string, images ...string) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := reportForm(t, fields, images...)
	req := httptest.NewRequest(http.MethodPost, "/api/reports", body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateReport(t *testing.T) {
	r := setupTest(t)
	sector := createSector(t, "Health")
	user, token := createUser(t, "citizen@x.com", models.RoleEndUser)

	fields := func(desc string) map[string]string {
		return map[string]string{
			"sectorId":    fmt.Sprint(sector.ID),
			"subsectorId": fmt.Sprint(sector.Subsectors[0].ID),
			"description": desc,
		}
	}

	t.Run("requires auth", func(t *testing.T) {
		w := postReport(t, r, "", fields("no session"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing description", func(t *testing.T) {
		f := fields("")
		w := postReport(t, r, token, f)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unparseable sector id", func(t *testing.T) {
		f := fields("broken pump")
		f["sectorId"] = "abc"
		w := postReport(t, r, token, f)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("creates pending report owned by caller", func(t *testing.T) {
		w := postReport(t, r, token, fields("No beds in the district hospital"))
		require.Equal(t, http.StatusCreated, w.Code)

		var report models.Report
		require.NoError(t, config.DB.Where("description = ?", "No beds in the district hospital").First(&report).Error)
		assert.Equal(t, models.StatusPending, report.Status)
		assert.Equal(t, user.ID, report.UserID)
		assert.Equal(t, sector.ID, report.SectorID)
	})

	t.Run("stores images as url references", func(t *testing.T) {
		w := postReport(t, r, token, fields("Leaking roof in ward 3"), "roof.jpg", "wall.png")
		require.Equal(t, http.StatusCreated, w.Code)

		var report models.Report
		require.NoError(t, config.DB.Preload("Images").
			Where("description = ?", "Leaking roof in ward 3").First(&report).Error)
		require.Len(t, report.Images, 2)
		for _, img := range report.Images {
			assert.True(t, strings.HasPrefix(img.URL, "/uploads/"), "got %q", img.URL)
			assert.NotContains(t, img.URL, "base64")
		}
	})
}

func TestCreateReportRecomputesSummary(t *testing.T) {
	r := setupTest(t)
	sector := createSector(t, "Transport")
	user, token := createUser(t, "citizen@x.com", models.RoleEndUser)

	// Three pre-existing reports in the sector.
	for i := 0; i < 3; i++ {
		require.NoError(t, config.DB.Create(&models.Report{
			Description: fmt.Sprintf("pothole %d", i),
			Status:      models.StatusPending,
			UserID:      user.ID,
			SectorID:    sector.ID,
			SubsectorID: sector.Subsectors[0].ID,
		}).Error)
	}

	w := postReport(t, r, token, map[string]string{
		"sectorId":    fmt.Sprint(sector.ID),
		"subsectorId": fmt.Sprint(sector.Subsectors[0].ID),
		"description": "bridge closed",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var summaries []models.ProblemSummary
	require.NoError(t, config.DB.Where("sector_id = ?", sector.ID).Find(&summaries).Error)
	require.Len(t, summaries, 1, "exactly one summary row per sector")

	// Full recompute, not an increment, and the summarizer is unreachable in
	// tests so the raw concatenated text comes back.
	assert.Equal(t, 4, summaries[0].Problems)
	assert.Contains(t, summaries[0].Summary, "pothole 0")
	assert.Contains(t, summaries[0].Summary, "bridge closed")

	// A second report in the same sector overwrites the row.
	w = postReport(t, r, token, map[string]string{
		"sectorId":    fmt.Sprint(sector.ID),
		"subsectorId": fmt.Sprint(sector.Subsectors[0].ID),
		"description": "ferry ghat flooded",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	require.NoError(t, config.DB.Where("sector_id = ?", sector.ID).Find(&summaries).Error)
	require.Len(t, summaries, 1)
	assert.Equal(t, 5, summaries[0].Problems)
}

func TestListUserReportsIsolation(t *testing.T) {
	r := setupTest(t)
	sector := createSector(t, "Utilities")
	userA, tokenA := createUser(t, "a@x.com", models.RoleEndUser)
	userB, tokenB := createUser(t, "b@x.com", models.RoleEndUser)

	require.NoError(t, config.DB.Create(&models.Report{
		Description: "no water in block A", UserID: userA.ID,
		SectorID: sector.ID, SubsectorID: sector.Subsectors[0].ID,
		Status: models.StatusPending,
	}).Error)
	require.NoError(t, config.DB.Create(&models.Report{
		Description: "power cut in block B", UserID: userB.ID,
		SectorID: sector.ID, SubsectorID: sector.Subsectors[0].ID,
		Status: models.StatusPending,
	}).Error)

	var body struct {
		Data []models.Report `json:"data"`
	}

	w := doJSON(r, http.MethodGet, "/api/reports/user", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "no water in block A", body.Data[0].Description)

	w = doJSON(r, http.MethodGet, "/api/reports/user", tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "power cut in block B", body.Data[0].Description)
}

func TestListSectorReports(t *testing.T) {
	r := setupTest(t)
	sector := createSector(t, "Education")
	user, userToken := createUser(t, "citizen@x.com", models.RoleEndUser)
	_, adminToken := createUser(t, "admin@x.com", models.RoleSectorAdmin)

	for desc, status := range map[string]string{
		"broken benches": models.StatusPending,
		"no textbooks":   models.StatusUnderReview,
		"fixed roof":     models.StatusResolved,
		"rejected rumor": models.StatusRejected,
	} {
		require.NoError(t, config.DB.Create(&models.Report{
			Description: desc, Status: status, UserID: user.ID,
			SectorID: sector.ID, SubsectorID: sector.Subsectors[0].ID,
		}).Error)
	}

	t.Run("end user is rejected", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/reports/sector", userToken, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("only open statuses in queue", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/reports/sector", adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data []models.Report `json:"data"`
		}
		decode(t, w, &body)
		require.Len(t, body.Data, 2)
		for _, report := range body.Data {
			assert.Contains(t, []string{models.StatusPending, models.StatusUnderReview}, report.Status)
			assert.Equal(t, "citizen@x.com", report.User.Email)
			assert.Equal(t, "Education", report.Sector.Name)
		}
	})
}

func TestUpdateReportStatus(t *testing.T) {
	r := setupTest(t)
	sector := createSector(t, "Health")
	user, userToken := createUser(t, "citizen@x.com", models.RoleEndUser)
	_, adminToken := createUser(t, "admin@x.com", models.RoleSectorAdmin)

	report := models.Report{
		Description: "ambulance shortage", Status: models.StatusPending,
		UserID: user.ID, SectorID: sector.ID, SubsectorID: sector.Subsectors[0].ID,
	}
	require.NoError(t, config.DB.Create(&report).Error)
	path := fmt.Sprintf("/api/reports/%d/status", report.ID)

	reload := func() models.Report {
		var got models.Report
		require.NoError(t, config.DB.First(&got, report.ID).Error)
		return got
	}

	t.Run("non sector admin gets 401 and no change", func(t *testing.T) {
		w := doJSON(r, http.MethodPatch, path, userToken, map[string]string{"status": models.StatusResolved})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, models.StatusPending, reload().Status)
	})

	t.Run("invalid status gets 400 and no change", func(t *testing.T) {
		w := doJSON(r, http.MethodPatch, path, adminToken, map[string]string{"status": "REJECTED"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, models.StatusPending, reload().Status)
	})

	t.Run("unknown report gets 404", func(t *testing.T) {
		w := doJSON(r, http.MethodPatch, "/api/reports/99999/status", adminToken,
			map[string]string{"status": models.StatusResolved})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unparseable id gets 400", func(t *testing.T) {
		w := doJSON(r, http.MethodPatch, "/api/reports/abc/status", adminToken,
			map[string]string{"status": models.StatusResolved})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("admin resolves report", func(t *testing.T) {
		w := doJSON(r, http.MethodPatch, path, adminToken, map[string]string{"status": models.StatusResolved})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, models.StatusResolved, reload().Status)

		var body struct {
			Report models.Report `json:"report"`
		}
		decode(t, w, &body)
		assert.Equal(t, "Health", body.Report.Sector.Name)
		assert.Equal(t, "citizen@x.com", body.Report.User.Email)
	})
}
