package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"health-tracker/internal/delivery/http/middleware"
	"health-tracker/internal/domain/entity"
	"health-tracker/pkg/response"
	"health-tracker/pkg/validator"

	"github.com/gorilla/mux"
)

var errInvalidID = errors.New("invalid id")

// currentUser writes 401 and returns false when the request is not authenticated
func currentUser(w http.ResponseWriter, r *http.Request) (uint, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return 0, false
	}
	return userID, true
}

func pathID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

// decodeAndValidate writes the 400/422 response itself and returns false on failure
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}
	if err := v.Validate(req); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}
	return true
}

func pageFromQuery(r *http.Request) entity.Page {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit == 0 {
		limit, _ = strconv.Atoi(q.Get("per_page"))
	}
	return entity.Page{Page: page, Limit: limit}.Normalize()
}

func queryInt(r *http.Request, name string, fallback int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return fallback
	}
	return value
}

func queryBool(r *http.Request, name string, fallback bool) bool {
	value, err := strconv.ParseBool(r.URL.Query().Get(name))
	if err != nil {
		return fallback
	}
	return value
}
