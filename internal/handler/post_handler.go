package handler

import (
	"net/http"

	"go-content-api/internal/model"
	"go-content-api/internal/service"
)

type PostHandler struct {
	service *service.PostService
	pages   Pagination
}

func NewPostHandler(service *service.PostService, pages Pagination) *PostHandler {
	return &PostHandler{service: service, pages: pages}
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.List(r.Context(), h.pages.Parse(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, posts)
}

func (h *PostHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "userId", "Invalid user ID")
	if err != nil {
		writeError(w, err)
		return
	}

	posts, err := h.service.ListByUser(r.Context(), userID, h.pages.Parse(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, posts)
}

func (h *PostHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	posts, err := h.service.ListByUser(r.Context(), userID, h.pages.Parse(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, posts)
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.ContentRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, err)
		return
	}

	post, err := h.service.Create(r.Context(), userID, payload.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, post)
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	postID, err := idParam(r, "postId", "Invalid post ID")
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.ContentRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, err)
		return
	}

	post, err := h.service.Update(r.Context(), postID, userID, payload.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, post)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	postID, err := idParam(r, "postId", "Invalid post ID")
	if err != nil {
		writeError(w, err)
		return
	}

	msg, err := h.service.Delete(r.Context(), postID, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, msg)
}
