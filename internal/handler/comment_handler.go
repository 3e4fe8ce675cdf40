package handler

import (
	"net/http"

	"go-content-api/internal/model"
	"go-content-api/internal/service"
)

type CommentHandler struct {
	service *service.CommentService
	pages   Pagination
}

func NewCommentHandler(service *service.CommentService, pages Pagination) *CommentHandler {
	return &CommentHandler{service: service, pages: pages}
}

func (h *CommentHandler) ListByPost(w http.ResponseWriter, r *http.Request) {
	postID, err := idParam(r, "postId", "Invalid post ID")
	if err != nil {
		writeError(w, err)
		return
	}

	comments, err := h.service.ListByPost(r.Context(), postID, h.pages.Parse(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, comments)
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	comment, err := h.service.Create(r.Context(), postID, userID, payload.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, comment)
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	commentID, err := idParam(r, "commentId", "Invalid comment ID")
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.ContentRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, err)
		return
	}

	comment, err := h.service.Update(r.Context(), commentID, userID, payload.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, comment)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	commentID, err := idParam(r, "commentId", "Invalid comment ID")
	if err != nil {
		writeError(w, err)
		return
	}

	msg, err := h.service.Delete(r.Context(), commentID, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, msg)
}
