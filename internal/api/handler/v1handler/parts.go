package v1handler

import (
	"errors"
	"estimator/internal/estimator"
	"estimator/pkg/domain"
	"estimator/pkg/serrors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
)

const (
	// multipartOverhead is allowed on top of the file limit for the form
	// boundaries and the other fields.
	multipartOverhead = 1 << 20
	multipartMemory   = 32 << 20
)

// ListParts returns a summary of every uploaded part.
func (h *Handler) ListParts(w http.ResponseWriter, r *http.Request) {
	parts, err := h.deps.Estimator.Parts(r.Context())
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, parts)
}

// UploadPart accepts a multipart form with the STEP file in "file", the
// material in "material_id" and an optional "machine_profile".
func (h *Handler) UploadPart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.options.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.options.MaxUploadBytes+multipartOverhead)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.writeError(ctx, w, serrors.With(serrors.ErrTooLarge, "uploaded file exceeds %d bytes", h.options.MaxUploadBytes))

			return
		}
		h.writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid multipart form"))

		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	materialID, err := strconv.ParseInt(strings.TrimSpace(r.FormValue("material_id")), 10, 64)
	if err != nil {
		h.writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "material_id must be an integer"))

		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "file is required"))

		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		h.writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "could not read uploaded file"))

		return
	}

	result, err := h.deps.Estimator.Upload(ctx, estimator.UploadInput{
		Filename:         header.Filename,
		ContentType:      header.Header.Get("Content-Type"),
		Data:             data,
		MaterialID:       domain.MaterialID(materialID),
		MachineProfileID: strings.TrimSpace(r.FormValue("machine_profile")),
	})
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusAccepted, result)
}

// GetPart returns a part with its analysis results.
func (h *Handler) GetPart(w http.ResponseWriter, r *http.Request) {
	part, err := h.deps.Estimator.Part(r.Context(), domain.PartID(r.PathValue("id")))
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, part)
}

// DeletePart deletes a part together with its stored files.
func (h *Handler) DeletePart(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Estimator.DeletePart(r.Context(), domain.PartID(r.PathValue("id"))); err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetPartModel serves the preview model. The v query parameter only busts
// client caches; the response itself is never cached.
func (h *Handler) GetPartModel(w http.ResponseWriter, r *http.Request) {
	obj, err := h.deps.Estimator.PartModel(r.Context(), domain.PartID(r.PathValue("id")))
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	w.Header().Set("Content-Type", obj.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(obj.Data)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(obj.Data)
}

// GetPartRaw serves the uploaded STEP file as an attachment.
func (h *Handler) GetPartRaw(w http.ResponseWriter, r *http.Request) {
	raw, err := h.deps.Estimator.PartRaw(r.Context(), domain.PartID(r.PathValue("id")))
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	w.Header().Set("Content-Type", raw.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(raw.Data)))
	w.Header().Set("Content-Disposition",
		mime.FormatMediaType("attachment", map[string]string{"filename": raw.Filename}))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw.Data)
}

// GetJob returns an analysis job by ID.
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.deps.Estimator.Job(r.Context(), domain.JobID(r.PathValue("id")))
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, job)
}
