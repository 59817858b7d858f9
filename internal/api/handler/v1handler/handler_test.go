package v1handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"estimator/internal/api/handler/v1handler"
	"estimator/internal/estimator"
	mockestimator "estimator/internal/estimator/mock"
	"estimator/pkg/blobstore"
	"estimator/pkg/docstore/boltstore"
	"estimator/pkg/domain"
	"estimator/pkg/logger"
	"estimator/pkg/orders"
	"estimator/pkg/serrors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.TestEnvironment)
	os.Exit(m.Run())
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	res := h.NewError(context.Background(), errors.New("boom"))
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	res := h.NewError(context.Background(), serrors.ErrNotFound)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_WrappedSemanticError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	err := fmt.Errorf("could not upload part: %w", serrors.With(serrors.ErrBadRequest, "only .step and .stp files are accepted"))
	res := h.NewError(context.Background(), err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "only .step and .stp files are accepted", res.Response.Message)
}

func TestNewError_DeadlineExceeded(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	res := h.NewError(context.Background(), context.DeadlineExceeded)
	require.Equal(t, http.StatusGatewayTimeout, res.StatusCode)
	require.Equal(t, serrors.ErrTimeout.Error(), res.Response.Code)
}

func TestNewError_InternalKind_GeneratesInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	res := h.NewError(context.Background(), serrors.KindOnly(serrors.ErrInternal))
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestDecodeMaterialInput(t *testing.T) {
	input, err := v1handler.DecodeMaterialInput([]byte(
		`{"code":"c45","name":"Steel","density_g_cm3":7.85,"price_per_kg":1.4,"allowance_mm":null,"extra":[1,2]}`))
	require.NoError(t, err)
	require.Equal(t, "c45", input.Code)
	require.InDelta(t, 7.85, input.DensityGCm3, 1e-9)
	require.Nil(t, input.AllowanceMM)

	input, err = v1handler.DecodeMaterialInput([]byte(`{"code":"c45","allowance_mm":2.5}`))
	require.NoError(t, err)
	require.NotNil(t, input.AllowanceMM)
	require.InDelta(t, 2.5, *input.AllowanceMM, 1e-9)

	_, err = v1handler.DecodeMaterialInput([]byte(`{"code":12}`))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

type apiFixture struct {
	est  *mockestimator.MockEstimator
	desk *orders.Desk
	srv  *httptest.Server
}

func newAPIFixture(t *testing.T, opts v1handler.Options, sec *v1handler.SecHandler) *apiFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	store, err := boltstore.Open(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	f := &apiFixture{
		est:  mockestimator.NewMockEstimator(ctrl),
		desk: orders.NewDesk(store),
	}

	mux := http.NewServeMux()
	v1handler.New(v1handler.Deps{Estimator: f.est, Orders: f.desk}, opts).Register(mux, sec)
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)

	return f
}

func (f *apiFixture) do(t *testing.T, method, path string, body io.Reader, contentType string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, f.srv.URL+v1handler.Prefix+path, body)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	res, err := f.srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = res.Body.Close() })

	return res
}

func decodeBody[T any](t *testing.T, res *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&v))

	return v
}

func uploadForm(t *testing.T, filename string, data []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t, v1handler.Options{}, nil)

	res := f.do(t, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, map[string]string{"status": "ok"}, decodeBody[map[string]string](t, res))
}

func TestMaterials(t *testing.T) {
	f := newAPIFixture(t, v1handler.Options{}, nil)

	f.est.EXPECT().Materials(gomock.Any()).Return([]domain.Material{
		{ID: 1, Code: "AISI-1040", Name: "Carbon steel", DensityGCm3: 7.85, PricePerKg: 1.2, AllowanceMM: 3},
	}, nil)
	res := f.do(t, http.MethodGet, "/materials", nil, "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	materials := decodeBody[[]domain.Material](t, res)
	require.Len(t, materials, 1)
	require.Equal(t, "AISI-1040", materials[0].Code)

	f.est.EXPECT().CreateMaterial(gomock.Any(), domain.MaterialInput{
		Code: "c45", Name: "Steel", DensityGCm3: 7.85, PricePerKg: 1.4,
	}).Return(&domain.Material{ID: 2, Code: "C45", Name: "Steel", DensityGCm3: 7.85, PricePerKg: 1.4, AllowanceMM: 3}, nil)
	res = f.do(t, http.MethodPost, "/materials",
		strings.NewReader(`{"code":"c45","name":"Steel","density_g_cm3":7.85,"price_per_kg":1.4}`), "application/json")
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.Equal(t, "C45", decodeBody[domain.Material](t, res).Code)

	f.est.EXPECT().CreateMaterial(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrConflict, "material code already exists"))
	res = f.do(t, http.MethodPost, "/materials",
		strings.NewReader(`{"code":"c45","name":"Steel","density_g_cm3":7.85,"price_per_kg":1.4}`), "application/json")
	require.Equal(t, http.StatusConflict, res.StatusCode)
	apiErr := decodeBody[v1handler.Error](t, res)
	require.Equal(t, "CONFLICT", apiErr.Code)
	require.Equal(t, "material code already exists", apiErr.Message)

	res = f.do(t, http.MethodPost, "/materials", strings.NewReader(`{"code":`), "application/json")
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestMachineProfiles(t *testing.T) {
	f := newAPIFixture(t, v1handler.Options{}, nil)

	f.est.EXPECT().MachineProfiles(gomock.Any()).Return(domain.DefaultMachineProfiles(), nil)
	res := f.do(t, http.MethodGet, "/machine-profiles", nil, "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	profiles := decodeBody[[]domain.MachineProfile](t, res)
	require.Len(t, profiles, len(domain.DefaultMachineProfiles()))
	require.Equal(t, "auto", profiles[0].ID)
}

func TestUploadPart(t *testing.T) {
	f := newAPIFixture(t, v1handler.Options{MaxUploadBytes: 1 << 20}, nil)

	data := []byte("ISO-10303-21;")
	f.est.EXPECT().Upload(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input estimator.UploadInput) (*domain.UploadResult, error) {
			require.Equal(t, "shaft.step", input.Filename)
			require.Equal(t, data, input.Data)
			require.Equal(t, domain.MaterialID(3), input.MaterialID)
			require.Equal(t, "vmc_3axis", input.MachineProfileID)

			return &domain.UploadResult{PartID: "p1", JobID: "j1", Status: domain.JobStatusQueued}, nil
		})

	body, ct := uploadForm(t, "shaft.step", data, map[string]string{"material_id": "3", "machine_profile": "vmc_3axis"})
	res := f.do(t, http.MethodPost, "/parts/upload", body, ct)
	require.Equal(t, http.StatusAccepted, res.StatusCode)
	result := decodeBody[domain.UploadResult](t, res)
	require.Equal(t, domain.PartID("p1"), result.PartID)
	require.Equal(t, domain.JobID("j1"), result.JobID)
	require.Equal(t, domain.JobStatusQueued, result.Status)
}

func TestUploadPart_InvalidForm(t *testing.T) {
	f := newAPIFixture(t, v1handler.Options{MaxUploadBytes: 1 << 20}, nil)

	body, ct := uploadForm(t, "", nil, map[string]string{"material_id": "3"})
	res := f.do(t, http.MethodPost, "/parts/upload", body, ct)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, "file is required", decodeBody[v1handler.Error](t, res).Message)

	body, ct = uploadForm(t, "shaft.step", []byte("x"), map[string]string{"material_id": "abc"})
	res = f.do(t, http.MethodPost, "/parts/upload", body, ct)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, "material_id must be an integer", decodeBody[v1handler.Error](t, res).Message)
}

func TestUploadPart_TooLarge(t *testing.T) {
	f := newAPIFixture(t, v1handler.Options{MaxUploadBytes: 16}, nil)

	body, ct := uploadForm(t, "big.step", bytes.Repeat([]byte("x"), 2<<20), map[string]string{"material_id": "1"})
	res := f.do(t, http.MethodPost, "/parts/upload", body, ct)
	require.Equal(t, http.StatusRequestEntityTooLarge, res.StatusCode)
	require.Equal(t, "TOO_LARGE", decodeBody[v1handler.Error](t, res).Code)
}

func TestParts(t *testing.T) {
	f := newAPIFixture(t, v1handler.Options{}, nil)

	f.est.EXPECT().Parts(gomock.Any()).Return([]domain.PartSummary{
		{ID: "p1", Filename: "shaft.step", Status: domain.PartStatusCompleted, MaterialID: 1},
	}, nil)
	res := f.do(t, http.MethodGet, "/parts", nil, "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, decodeBody[[]domain.PartSummary](t, res), 1)

	f.est.EXPECT().Part(gomock.Any(), domain.PartID("p1")).Return(&domain.Part{
		PartSummary: domain.PartSummary{ID: "p1", Filename: "shaft.step", Status: domain.PartStatusCompleted},
	}, nil)
	res = f.do(t, http.MethodGet, "/parts/p1", nil, "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "shaft.step", decodeBody[domain.Part](t, res).Filename)

	f.est.EXPECT().Part(gomock.Any(), domain.PartID("missing")).
		Return(nil, serrors.With(serrors.ErrNotFound, "part not found"))
	res = f.do(t, http.MethodGet, "/parts/missing", nil, "")
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Equal(t, v1handler.Error{Code: "NOT_FOUND", Message: "part not found"}, decodeBody[v1handler.Error](t, res))

	f.est.EXPECT().DeletePart(gomock.Any(), domain.PartID("p1")).Return(nil)
	res = f.do(t, http.MethodDelete, "/parts/p1", nil, "")
	require.Equal(t, http.StatusNoContent, res.StatusCode)
}

func TestPartFiles(t *testing.T) {
	f := newAPIFixture(t, v1handler.Options{}, nil)

	f.est.EXPECT().PartModel(gomock.Any(), domain.PartID("p1")).Return(&blobstore.Object{
		Data:        []byte(`{"asset":{"version":"2.0"}}`),
		ContentType: "model/gltf+json",
	}, nil)
	res := f.do(t, http.MethodGet, "/parts/p1/model?v=123", nil, "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "model/gltf+json", res.Header.Get("Content-Type"))
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"asset":{"version":"2.0"}}`, string(body))

	f.est.EXPECT().PartModel(gomock.Any(), domain.PartID("p2")).
		Return(nil, serrors.With(serrors.ErrNotFound, "model not generated yet"))
	res = f.do(t, http.MethodGet, "/parts/p2/model", nil, "")
	require.Equal(t, http.StatusNotFound, res.StatusCode)

	f.est.EXPECT().PartRaw(gomock.Any(), domain.PartID("p1")).Return(&estimator.RawFile{
		Filename: "shaft.step",
		Object:   blobstore.Object{Data: []byte("ISO-10303-21;"), ContentType: "application/step"},
	}, nil)
	res = f.do(t, http.MethodGet, "/parts/p1/raw", nil, "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/step", res.Header.Get("Content-Type"))
	require.Equal(t, `attachment; filename=shaft.step`, res.Header.Get("Content-Disposition"))
}

func TestJob(t *testing.T) {
	f := newAPIFixture(t, v1handler.Options{}, nil)

	f.est.EXPECT().Job(gomock.Any(), domain.JobID("j1")).Return(&domain.AnalysisJob{
		ID: "j1", PartID: "p1", Status: domain.JobStatusCompleted,
	}, nil)
	res := f.do(t, http.MethodGet, "/jobs/j1", nil, "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	job := decodeBody[domain.AnalysisJob](t, res)
	require.Equal(t, domain.JobStatusCompleted, job.Status)
	require.Equal(t, domain.PartID("p1"), job.PartID)
}

func TestOrders(t *testing.T) {
	f := newAPIFixture(t, v1handler.Options{}, nil)

	res := f.do(t, http.MethodPost, "/orders",
		strings.NewReader(`{"customer":" Acme ","product":"Flange","qty":0,"due":"2026-04-01"}`), "application/json")
	require.Equal(t, http.StatusCreated, res.StatusCode)
	order := decodeBody[domain.Order](t, res)
	require.Equal(t, "Acme", order.Customer)
	require.Equal(t, 1, order.Qty)

	res = f.do(t, http.MethodPost, "/orders", strings.NewReader(`{"customer":"","product":"x"}`), "application/json")
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	res = f.do(t, http.MethodGet, "/orders", nil, "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, decodeBody[[]domain.Order](t, res), 1)

	res = f.do(t, http.MethodPost, "/orders/"+order.ID+"/convert", nil, "")
	require.Equal(t, http.StatusCreated, res.StatusCode)
	work := decodeBody[domain.WorkOrder](t, res)
	require.Equal(t, domain.WorkOrderOpen, work.Status)
	require.True(t, strings.HasPrefix(work.Ref, "WE-"))

	res = f.do(t, http.MethodGet, "/orders", nil, "")
	require.Empty(t, decodeBody[[]domain.Order](t, res))

	res = f.do(t, http.MethodPost, "/work-orders/"+work.ID+"/complete", nil, "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, domain.WorkOrderCompleted, decodeBody[domain.WorkOrder](t, res).Status)

	res = f.do(t, http.MethodGet, "/work-orders", nil, "")
	require.Len(t, decodeBody[[]domain.WorkOrder](t, res), 1)

	res = f.do(t, http.MethodDelete, "/work-orders/"+work.ID, nil, "")
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	res = f.do(t, http.MethodDelete, "/work-orders/"+work.ID, nil, "")
	require.Equal(t, http.StatusNotFound, res.StatusCode)

	res = f.do(t, http.MethodPost, "/orders", strings.NewReader(`{"customer":"B","product":"Shaft","qty":2}`), "application/json")
	require.Equal(t, http.StatusCreated, res.StatusCode)
	res = f.do(t, http.MethodDelete, "/orders", nil, "")
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	res = f.do(t, http.MethodGet, "/orders", nil, "")
	require.Empty(t, decodeBody[[]domain.Order](t, res))
}
