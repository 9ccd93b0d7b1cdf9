package rest_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"asdscreen/internal/cache"
	"asdscreen/internal/ml"
	"asdscreen/internal/model"
	"asdscreen/internal/report"
	"asdscreen/internal/risk"
	"asdscreen/internal/service"
	"asdscreen/internal/transport/rest"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the full stack with demo model artifacts, no
// external store (degraded mode) and an uncompressed PDF renderer so
// response bodies are assertable.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	modelsDir := t.TempDir()
	uploadsDir := t.TempDir()
	require.NoError(t, ml.WriteDemoArtifacts(modelsDir))

	predictor, err := ml.Load(modelsDir)
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	renderer := report.NewPDFRenderer(uploadsDir)
	renderer.Compress = false
	renderer.Now = func() time.Time {
		return time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)
	}

	container := &rest.Container{
		AssessmentService: service.NewAssessmentService(predictor, nil, cache.NewAssessmentCache(), log),
		MediaService:      service.NewMediaService(uploadsDir, log),
		MetricsService:    service.NewMetricsService(modelsDir, log),
		Renderer:          renderer,
		Log:               log,
	}

	srv := httptest.NewServer(rest.NewRouter(container))
	t.Cleanup(srv.Close)
	return srv
}

func assessBody(imageFilename string) string {
	body := map[string]interface{}{
		"demographic": map[string]interface{}{
			"name": "Alex", "age": 25, "gender": 0, "ethnicity": 1,
			"country": "Canada", "jaundice": 0, "family_history": 0,
			"respondent": "Self",
		},
		"behavioral": map[string]interface{}{
			"a1_score": 1, "a2_score": 1, "a3_score": 1, "a4_score": 1, "a5_score": 1,
			"a6_score": 1, "a7_score": 1, "a8_score": 1, "a9_score": 1, "a10_score": 1,
		},
	}
	if imageFilename != "" {
		body["image_filename"] = imageFilename
	}
	data, _ := json.Marshal(body)
	return string(data)
}

func createAssessment(t *testing.T, srv *httptest.Server, body string) model.Assessment {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/assess", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var a model.Assessment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&a))
	return a
}

func TestRootEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["message"])
}

func TestCreateAssessmentAllPositiveAnswers(t *testing.T) {
	srv := newTestServer(t)

	a := createAssessment(t, srv, assessBody(""))

	assert.NotEmpty(t, a.ID)
	assert.False(t, a.Timestamp.IsZero())
	assert.Empty(t, a.ImageFilename)

	// The tier must agree with the returned probability under the
	// fixed thresholds, whatever the model says exactly.
	assert.Equal(t, string(risk.Classify(a.Probability)), a.RiskLevel)
	assert.GreaterOrEqual(t, a.Probability, 0.0)
	assert.LessOrEqual(t, a.Probability, 1.0)
}

func TestCreateAssessmentValidation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed body", "{not json"},
		{"missing demographic", `{"behavioral": {"a1_score": 1}}`},
		{"missing behavioral", `{"demographic": {"age": 25}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/assess", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestGetAssessment(t *testing.T) {
	srv := newTestServer(t)
	created := createAssessment(t, srv, assessBody(""))

	resp, err := http.Get(srv.URL + "/api/assessments/" + created.ID)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got model.Assessment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.RiskLevel, got.RiskLevel)
}

func TestGetAssessmentNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/assessments/no-such-id")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListAssessmentsNewestFirst(t *testing.T) {
	srv := newTestServer(t)
	first := createAssessment(t, srv, assessBody(""))
	second := createAssessment(t, srv, assessBody(""))

	resp, err := http.Get(srv.URL + "/api/assessments")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []model.Assessment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 2)
	ids := []string{list[0].ID, list[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
	assert.False(t, list[0].Timestamp.Before(list[1].Timestamp))
}

func TestDownloadReport(t *testing.T) {
	srv := newTestServer(t)
	created := createAssessment(t, srv, assessBody(""))

	resp, err := http.Get(srv.URL + "/api/assessments/" + created.ID + "/report")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "ASD_Assessment_Report_"+created.ID+".pdf")

	doc, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(doc, []byte("%PDF")))

	for _, q := range report.Questions {
		assert.Contains(t, string(doc), q.Label)
	}
	assert.Contains(t, string(doc), created.RiskLevel)
	assert.Contains(t, string(doc), "IMPORTANT MEDICAL DISCLAIMER")
}

func TestDownloadReportUnknownID(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/assessments/never-created/report")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestUploadImageAndAssess(t *testing.T) {
	srv := newTestServer(t)

	// A real 1x1 PNG so the renderer can embed it.
	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 1, 1))))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "photo.png")
	require.NoError(t, err)
	_, err = part.Write(img.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/api/upload-image", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var uploaded map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&uploaded))
	assert.Equal(t, "success", uploaded["status"])
	require.NotEmpty(t, uploaded["filename"])
	assert.NotEqual(t, "photo.png", uploaded["filename"])
	assert.True(t, strings.HasSuffix(uploaded["filename"], ".png"))

	created := createAssessment(t, srv, assessBody(uploaded["filename"]))
	assert.Equal(t, uploaded["filename"], created.ImageFilename)

	reportResp, err := http.Get(srv.URL + "/api/assessments/" + created.ID + "/report")
	require.NoError(t, err)
	defer reportResp.Body.Close()
	assert.Equal(t, http.StatusOK, reportResp.StatusCode)
}

func TestModelMetricsWithoutFiles(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/model-metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var metrics map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&metrics))
	assert.Nil(t, metrics["questionnaire"])
	assert.Nil(t, metrics["image"])
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
